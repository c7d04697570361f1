package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Posts(ctx context.Context) error
	Build(ctx context.Context) error
	Intake(ctx context.Context, collectType string) error
	Confirm(ctx context.Context) error
	Change(ctx context.Context) error
	Size(ctx context.Context, choice string) error
	Mode(ctx context.Context, mode string) error
	Pick(ctx context.Context, name string) error
	Addon(ctx context.Context, id string) error
	RestartBuild(ctx context.Context) error
	Preview(ctx context.Context) error
	Order(ctx context.Context) error
	Users(ctx context.Context) error
	Ban(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
}

// runREPL starts a simple read-eval-print loop for the showcase demo.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		payload := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "posts":
			_ = a.Posts(ctx)

		case "build":
			_ = a.Build(ctx)

		case "intake":
			_ = a.Intake(ctx, payload)

		case "confirm":
			_ = a.Confirm(ctx)

		case "change":
			_ = a.Change(ctx)

		case "size":
			_ = a.Size(ctx, payload)

		case "mode":
			_ = a.Mode(ctx, payload)

		case "pick":
			_ = a.Pick(ctx, payload)

		case "addon":
			_ = a.Addon(ctx, payload)

		case "restart":
			_ = a.RestartBuild(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "order":
			_ = a.Order(ctx)

		case "users":
			_ = a.Users(ctx)

		case "ban":
			_ = a.Ban(ctx, payload)

		case "delpost":
			_ = a.DeletePost(ctx, payload)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Wizard: build, intake <type>, confirm, change, size <1-4>, mode floor|wall, pick <name>, addon <id>, restart, preview, order")
	printlnFn("Explore: posts")
	if a.isLoggedIn() {
		printlnFn("Account: whoami, logout, exit")
	} else {
		printlnFn("Account: login, register, exit")
	}
	if a.isAdmin() {
		printlnFn("Admin: users, ban <userId>, delpost <postId>")
	}
}
