// Package wizard implements the guided configuration flow that accumulates
// a BuildSpec. The machine is pure state plus transition logic; it knows
// nothing about storage or presentation.
package wizard

import (
	"fmt"
	"strings"
)

// DisplayMode is the placement choice of wizard step 4.
type DisplayMode string

const (
	DisplayModeFloor DisplayMode = "Floor"
	DisplayModeWall  DisplayMode = "Wall"
)

// BuildSpec is the wizard output handed to the downstream checkout step.
// Every field starts empty; fields are populated strictly in wizard order.
type BuildSpec struct {
	CollectType    string      `json:"collectType"`
	CountTier      string      `json:"countTier"`
	DisplayMode    DisplayMode `json:"displayMode"`
	Style          string      `json:"style"`
	SelectedOption string      `json:"selectedOption"`
	SelectedAddons []string    `json:"selectedAddons"`
}

// NewBuildSpec returns the documented all-empty default.
func NewBuildSpec() BuildSpec {
	return BuildSpec{SelectedAddons: []string{}}
}

// HasAddon reports whether the accessory id is currently attached.
func (b BuildSpec) HasAddon(id string) bool {
	for _, a := range b.SelectedAddons {
		if a == id {
			return true
		}
	}
	return false
}

// ConfigString serializes the choices for the embedded preview surface.
// It is empty until a recommendation has been selected.
func (b BuildSpec) ConfigString() string {
	if b.SelectedOption == "" {
		return ""
	}
	return fmt.Sprintf("%s / %s / %s", b.CollectType, b.CountTier, b.DisplayMode)
}

// clone returns a deep copy so callers cannot alias the machine's state.
func (b BuildSpec) clone() BuildSpec {
	c := b
	c.SelectedAddons = append([]string{}, b.SelectedAddons...)
	return c
}

func (b BuildSpec) String() string {
	return fmt.Sprintf("collect=%s tier=%s mode=%s option=%s addons=[%s]",
		b.CollectType, b.CountTier, b.DisplayMode, b.SelectedOption,
		strings.Join(b.SelectedAddons, ","))
}
