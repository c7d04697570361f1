package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls    []string
	payloads []string
}

func (f *fakeExec) record(name, payload string) error {
	f.calls = append(f.calls, name)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", "")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", "") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", "")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", "") }
func (f *fakeExec) Posts(ctx context.Context) error  { return f.record("posts", "") }
func (f *fakeExec) Build(ctx context.Context) error  { return f.record("build", "") }
func (f *fakeExec) Intake(ctx context.Context, collectType string) error {
	return f.record("intake", collectType)
}
func (f *fakeExec) Confirm(ctx context.Context) error { return f.record("confirm", "") }
func (f *fakeExec) Change(ctx context.Context) error  { return f.record("change", "") }
func (f *fakeExec) Size(ctx context.Context, choice string) error {
	return f.record("size", choice)
}
func (f *fakeExec) Mode(ctx context.Context, mode string) error { return f.record("mode", mode) }
func (f *fakeExec) Pick(ctx context.Context, name string) error { return f.record("pick", name) }
func (f *fakeExec) Addon(ctx context.Context, id string) error  { return f.record("addon", id) }
func (f *fakeExec) RestartBuild(ctx context.Context) error      { return f.record("restart", "") }
func (f *fakeExec) Preview(ctx context.Context) error           { return f.record("preview", "") }
func (f *fakeExec) Order(ctx context.Context) error             { return f.record("order", "") }
func (f *fakeExec) Users(ctx context.Context) error             { return f.record("users", "") }
func (f *fakeExec) Ban(ctx context.Context, id string) error    { return f.record("ban", id) }
func (f *fakeExec) DeletePost(ctx context.Context, id string) error {
	return f.record("delpost", id)
}

func TestRunREPL_WizardFlowAndExit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"build",
		"intake Mini Figures",
		"confirm",
		"size 10-30 (Medium)",
		"mode wall",
		"pick Gallery Grid",
		"addon led",
		"",
		"nonsense",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantCalls := []string{"build", "intake", "confirm", "size", "mode", "pick", "addon"}
	if len(exec.calls) != len(wantCalls) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, wantCalls)
	}
	for i, want := range wantCalls {
		if exec.calls[i] != want {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want, exec.calls)
		}
	}
}

func TestRunREPL_MultiWordPayloadJoined(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("intake Mini Figures\npick Modular Tower\nquit\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if exec.payloads[0] != "Mini Figures" {
		t.Fatalf("intake payload = %q", exec.payloads[0])
	}
	if exec.payloads[1] != "Modular Tower" {
		t.Fatalf("pick payload = %q", exec.payloads[1])
	}
}

func TestRunREPL_AuthCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("register\nlogin\nwhoami\nban u1\ndelpost 2\nlogout\nexit\n")
	exec := &fakeExec{admin: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := []string{"register", "login", "whoami", "ban", "delpost", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v", exec.calls)
	}
}

func TestRunREPL_EOFTerminates(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("no calls expected, got %+v", exec.calls)
	}
}
