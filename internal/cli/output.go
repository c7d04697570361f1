package cli

import (
	"fmt"

	"github.com/dmitrijs2005/showcase/internal/catalog"
	"github.com/dmitrijs2005/showcase/internal/wizard"
	"github.com/fatih/color"
)

var (
	conciergeColor = color.New(color.FgCyan)
	visitorColor   = color.New(color.FgGreen)
	stepDoneColor  = color.New(color.FgHiBlack)
	stepHereColor  = color.New(color.FgHiBlue, color.Bold)
)

// concierge prints a system-side chat bubble.
func concierge(format string, args ...any) {
	conciergeColor.Printf("  [concierge] "+format+"\n", args...)
}

// visitor prints the user-side chat bubble echoing a choice back.
func visitor(format string, args ...any) {
	visitorColor.Printf("  [you] "+format+"\n", args...)
}

// renderProgress draws the four-station progress strip for the current
// wizard step. Outside the wizard it prints nothing.
func (a *App) renderProgress() {
	m := a.controller.Wizard()
	if m.Step() == wizard.StepIdle {
		return
	}

	current := m.DisplayStep()
	fmt.Print("  ")
	for i, s := range catalog.BuildSteps {
		if i > 0 {
			fmt.Print(" — ")
		}
		switch {
		case s.ID == current:
			stepHereColor.Printf("[%d %s]", s.ID, s.Label)
		case s.ID < current:
			stepDoneColor.Printf("[%d %s ✓]", s.ID, s.Label)
		default:
			fmt.Printf("[%d %s]", s.ID, s.Label)
		}
	}
	fmt.Printf("  step %d/4\n", current)
}
