package wizard

import (
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/catalog"
	"github.com/dmitrijs2005/showcase/internal/common"
)

// Step numbers the wizard stations. StepRecommend is terminal for this
// machine; the downstream checkout is out of scope.
type Step int

const (
	StepIdle      Step = 0 // not entered
	StepIntro     Step = 1
	StepCollect   Step = 2 // collect type chosen (or pending confirmation)
	StepCount     Step = 3
	StepDisplay   Step = 4
	StepRecommend Step = 5 // recommendation selection + accessory attachment
)

// Machine drives the multi-step configuration wizard. All transitions are
// synchronous; a rejected transition leaves both the step and the BuildSpec
// untouched.
type Machine struct {
	step Step
	spec BuildSpec
}

// New returns a machine at StepIdle with the default BuildSpec.
func New() *Machine {
	return &Machine{step: StepIdle, spec: NewBuildSpec()}
}

// Step returns the current step number.
func (m *Machine) Step() Step {
	return m.step
}

// Spec returns a copy of the accumulated BuildSpec.
func (m *Machine) Spec() BuildSpec {
	return m.spec.clone()
}

// IntakeSelect is the external intake shortcut: it sets the collect type and
// jumps directly to StepCollect, skipping the intro.
func (m *Machine) IntakeSelect(collectType string) error {
	if !catalog.ValidCollectType(collectType) {
		return fmt.Errorf("%w: collect type %q", common.ErrUnknownChoice, collectType)
	}
	m.spec.CollectType = collectType
	m.step = StepCollect
	return nil
}

// Start advances from the intro to the collect step without changing fields.
func (m *Machine) Start() error {
	if m.step != StepIntro {
		return fmt.Errorf("%w: start requires step %d, at %d", common.ErrInvalidTransition, StepIntro, m.step)
	}
	m.step = StepCollect
	return nil
}

// Confirm advances from the collect step once a collect type is set. Without
// one the transition is rejected and the machine holds at StepCollect.
func (m *Machine) Confirm() error {
	if m.step != StepCollect {
		return fmt.Errorf("%w: confirm requires step %d, at %d", common.ErrInvalidTransition, StepCollect, m.step)
	}
	if m.spec.CollectType == "" {
		return fmt.Errorf("%w: confirm requires a collect type", common.ErrInvalidTransition)
	}
	m.step = StepCount
	return nil
}

// Change clears the collect type and holds at StepCollect; it does not step
// back to the intro.
func (m *Machine) Change() error {
	if m.step != StepCollect {
		return fmt.Errorf("%w: change requires step %d, at %d", common.ErrInvalidTransition, StepCollect, m.step)
	}
	m.spec.CollectType = ""
	return nil
}

// ChooseCountTier records one of the four fixed sizing tiers and advances.
func (m *Machine) ChooseCountTier(tier string) error {
	if m.step != StepCount {
		return fmt.Errorf("%w: count tier requires step %d, at %d", common.ErrInvalidTransition, StepCount, m.step)
	}
	if !catalog.ValidCountTier(tier) {
		return fmt.Errorf("%w: count tier %q", common.ErrUnknownChoice, tier)
	}
	m.spec.CountTier = tier
	m.step = StepDisplay
	return nil
}

// ChooseDisplayMode records one of the two fixed display modes and advances
// to the terminal step.
func (m *Machine) ChooseDisplayMode(mode DisplayMode) error {
	if m.step != StepDisplay {
		return fmt.Errorf("%w: display mode requires step %d, at %d", common.ErrInvalidTransition, StepDisplay, m.step)
	}
	if mode != DisplayModeFloor && mode != DisplayModeWall {
		return fmt.Errorf("%w: display mode %q", common.ErrUnknownChoice, mode)
	}
	m.spec.DisplayMode = mode
	m.step = StepRecommend
	return nil
}

// SelectOption records the chosen recommendation. Re-selecting the same name
// is a no-op; a different name replaces the previous choice.
func (m *Machine) SelectOption(name string) error {
	if m.step < StepRecommend {
		return fmt.Errorf("%w: option selection requires step %d, at %d", common.ErrInvalidTransition, StepRecommend, m.step)
	}
	if !catalog.ValidRecommendation(name) {
		return fmt.Errorf("%w: recommendation %q", common.ErrUnknownChoice, name)
	}
	m.spec.SelectedOption = name
	return nil
}

// ToggleAddon flips membership of the accessory id: attached ids are
// removed, absent ids attached.
func (m *Machine) ToggleAddon(id string) error {
	if m.step < StepRecommend {
		return fmt.Errorf("%w: accessories require step %d, at %d", common.ErrInvalidTransition, StepRecommend, m.step)
	}
	if _, ok := catalog.AddonByID(id); !ok {
		return fmt.Errorf("%w: accessory %q", common.ErrUnknownChoice, id)
	}
	for i, a := range m.spec.SelectedAddons {
		if a == id {
			m.spec.SelectedAddons = append(m.spec.SelectedAddons[:i], m.spec.SelectedAddons[i+1:]...)
			return nil
		}
	}
	m.spec.SelectedAddons = append(m.spec.SelectedAddons, id)
	return nil
}

// Restart resets the BuildSpec to its default in one step and returns to the
// intro. It is available at any step before the terminal one.
func (m *Machine) Restart() error {
	if m.step >= StepRecommend {
		return fmt.Errorf("%w: restart is unavailable at step %d", common.ErrInvalidTransition, m.step)
	}
	m.spec = NewBuildSpec()
	m.step = StepIntro
	return nil
}

// DisplayStep clamps the step number to the four labelled build stations
// for progress display.
func (m *Machine) DisplayStep() int {
	if m.step > StepDisplay {
		return int(StepDisplay)
	}
	return int(m.step)
}
