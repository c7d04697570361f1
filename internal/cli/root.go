package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// Root prints the welcome banner and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the showcase configurator (type 'help' for commands)")
	concierge("Let's find the perfect setup for you. What do you collect?")
	concierge("Choose with: intake LEGO | Mini Figures | HotWheels | Other")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
