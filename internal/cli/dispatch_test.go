package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

// newDispatcher returns a dispatcher over a fresh counter-id session, with
// an empty config directory so the user's config.toml is never read.
func newDispatcher(t *testing.T) (*cli.Dispatcher, *int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	calls := 0
	d := cli.NewDispatcher(commands.DefaultRegistry, testutil.SessionFactory(testutil.NewSession(), &calls))
	return d, &calls
}

func run(d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = d.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	d, _ := newDispatcher(t)

	_, stderr, code := run(d, "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	d, _ := newDispatcher(t)

	_, stderr, code := run(d, "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	d, calls := newDispatcher(t)

	stdout, stderr, code := run(d, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
	if *calls != 0 {
		t.Errorf("help should not create a session, factory called %d times", *calls)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	d, _ := newDispatcher(t)

	stdout, stderr, code := run(d, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	d, _ := newDispatcher(t)

	_, stderr, code := run(d, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	d, _ := newDispatcher(t)

	_, stderr, code := run(d, "list", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_SessionReusedAcrossCommands(t *testing.T) {
	d, calls := newDispatcher(t)

	run(d, "add", "Buy", "milk")
	run(d, "add", "Walk", "dog")
	stdout, _, code := run(d, "list")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ] Buy milk\n   2  [ ] Walk dog\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if *calls != 1 {
		t.Errorf("expected one session, factory called %d times", *calls)
	}
	if d.Session() == nil {
		t.Error("expected dispatcher to hold the session")
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	d, _ := newDispatcher(t)

	stdout, stderr, code := run(d, "add", "--quiet", "Buy", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	d, _ := newDispatcher(t)

	stdout, stderr, code := run(d, "add", "--debug", "A")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "added 1\n" {
		t.Errorf("expected 'added 1\\n', got %q", stdout)
	}
	if !strings.Contains(stderr, "session started") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestDispatcher_InvalidConfig(t *testing.T) {
	d, calls := newDispatcher(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(`id_strategy = "uuid"`), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, stderr, code := run(d, "list", "--config", dir)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr, "error: ") || !strings.Contains(stderr, "id_strategy") {
		t.Errorf("expected config error naming id_strategy, got %q", stderr)
	}
	if *calls != 0 {
		t.Errorf("session should not be created with a bad config, factory called %d times", *calls)
	}
}

func TestDispatcher_SessionFactoryError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	factory := func(*config.Config, *log.Logger) (service.Service, error) {
		return nil, errors.New("boom")
	}
	d := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(d, "list")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr != "error: session: boom\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_NoFactory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	d := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(d, "count")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr != "error: session: no session factory configured\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
