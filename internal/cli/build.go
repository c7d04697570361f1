package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/showcase/internal/app"
	"github.com/dmitrijs2005/showcase/internal/catalog"
	"github.com/dmitrijs2005/showcase/internal/wizard"
)

// Build enters the wizard. From outside it resets to the intro; at the intro
// it performs the explicit start action.
func (a *App) Build(ctx context.Context) error {
	switch a.controller.Wizard().Step() {
	case wizard.StepIdle:
		if err := a.controller.OnWizardAction(app.ActionRestart, ""); err != nil {
			log.Println(err.Error())
			return err
		}
		concierge("I'll guide you through 4 simple choices to generate your display solution.")
		concierge("Type 'build' to start, or jump in with 'intake <type>'.")
	case wizard.StepIntro:
		if err := a.controller.OnWizardAction(app.ActionStart, ""); err != nil {
			log.Println(err.Error())
			return err
		}
		concierge("What are you collecting? Use 'intake <type>', then 'confirm'.")
	default:
		a.renderProgress()
	}
	return nil
}

// Intake handles the concierge shortcut: it records the collect type and
// jumps straight to the confirmation step.
func (a *App) Intake(ctx context.Context, collectType string) error {
	if err := a.controller.OnIntakeSelect(collectType); err != nil {
		log.Println(err.Error())
		return err
	}
	visitor("%s", collectType)
	concierge("Got it — we'll tailor sizing and modules for %s. Type 'confirm' to continue.", collectType)
	return nil
}

// Confirm locks in the collect type and moves on to sizing.
func (a *App) Confirm(ctx context.Context) error {
	if err := a.controller.OnWizardAction(app.ActionConfirm, ""); err != nil {
		log.Println(err.Error())
		return err
	}
	concierge("How many items do you want to display?")
	for i, tier := range catalog.CountTiers {
		fmt.Printf("    size %d — %s\n", i+1, tier)
	}
	return nil
}

// Change clears the collect type so a different one can be taken in.
func (a *App) Change(ctx context.Context) error {
	if err := a.controller.OnWizardAction(app.ActionChange, ""); err != nil {
		log.Println(err.Error())
		return err
	}
	concierge("No problem. What are you collecting? Use 'intake <type>'.")
	return nil
}

// Size records the count tier; the choice is either an 1-based index or the
// full tier label.
func (a *App) Size(ctx context.Context, choice string) error {
	tier := choice
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(catalog.CountTiers) {
		tier = catalog.CountTiers[n-1]
	}
	if err := a.controller.OnWizardAction(app.ActionCountTier, tier); err != nil {
		log.Println(err.Error())
		return err
	}
	visitor("About %s items.", tier)
	concierge("Got it. How do you want to place it? 'mode floor' or 'mode wall'.")
	return nil
}

// Mode records the display mode and reveals the recommendations.
func (a *App) Mode(ctx context.Context, mode string) error {
	var dm wizard.DisplayMode
	switch strings.ToLower(mode) {
	case "floor":
		dm = wizard.DisplayModeFloor
	case "wall":
		dm = wizard.DisplayModeWall
	default:
		dm = wizard.DisplayMode(mode)
	}
	if err := a.controller.OnWizardAction(app.ActionDisplayMode, string(dm)); err != nil {
		log.Println(err.Error())
		return err
	}
	concierge("I've generated %d optimal configurations for your collection:", len(catalog.Recommendations))
	for _, name := range catalog.Recommendations {
		fmt.Printf("    pick %s\n", name)
	}
	return nil
}

// Pick selects a recommendation template.
func (a *App) Pick(ctx context.Context, name string) error {
	if err := a.controller.OnWizardAction(app.ActionSelectOption, name); err != nil {
		log.Println(err.Error())
		return err
	}
	spec := a.controller.Wizard().Spec()
	visitor("Selected %s (%s capacity, %s).", name, spec.CountTier, spec.DisplayMode)
	concierge("Accessories available:")
	for _, ad := range catalog.Addons {
		fmt.Printf("    addon %s — %s (%s)\n", ad.ID, ad.Name, ad.Price)
	}
	return nil
}

// Addon toggles an accessory on the build.
func (a *App) Addon(ctx context.Context, id string) error {
	if err := a.controller.OnWizardAction(app.ActionToggleAddon, id); err != nil {
		log.Println(err.Error())
		return err
	}
	if a.controller.Wizard().Spec().HasAddon(id) {
		fmt.Printf("Attached %s.\n", id)
	} else {
		fmt.Printf("Removed %s.\n", id)
	}
	return nil
}

// RestartBuild resets the wizard back to the intro.
func (a *App) RestartBuild(ctx context.Context) error {
	if err := a.controller.OnWizardAction(app.ActionRestart, ""); err != nil {
		log.Println(err.Error())
		return err
	}
	concierge("Starting over. Type 'build' to begin.")
	return nil
}

// Preview prints the configuration string handed to the 3D preview surface.
func (a *App) Preview(ctx context.Context) error {
	cs := a.controller.Wizard().Spec().ConfigString()
	if cs == "" {
		fmt.Println("Locked — select a template first.")
		return nil
	}
	fmt.Printf("Configuration: %s\n", cs)
	return nil
}

// Order is the checkout placeholder; nothing is processed.
func (a *App) Order(ctx context.Context) error {
	fmt.Println("Order initiated. This is a placeholder for the checkout flow.")
	return nil
}
