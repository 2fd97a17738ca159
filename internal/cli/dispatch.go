// Package cli parses command lines and dispatches them to commands against
// a single task session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
)

// SessionFactory creates the task session from config.
// Used to inject the task list implementation during dispatch.
type SessionFactory func(cfg *config.Config, logger *log.Logger) (service.Service, error)

// ErrNoSessionFactory is returned when a command needs a session but the
// dispatcher was built without a factory.
var ErrNoSessionFactory = errors.New("no session factory configured")

// commonFlags are accepted by every command and by the shell.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
}

// Dispatcher handles command-line parsing and dispatch.
// It owns the session: the first command that needs one creates it, and
// every later command in the same process reuses it.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory
	in       io.Reader

	defaults commonFlags
	configs  map[string]*config.Config
	logger   *log.Logger
	// sessionLogger is the session-tagged child handed to the factory.
	// It carries its own level, so it is switched alongside logger.
	sessionLogger *log.Logger
	session       service.Service
}

// NewDispatcher creates a new dispatcher with the given registry and session factory.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		in:       os.Stdin,
		configs:  make(map[string]*config.Config),
	}
}

// SetInput sets the reader the shell reads lines from. Defaults to os.Stdin.
func (d *Dispatcher) SetInput(r io.Reader) {
	d.in = r
}

// Session returns the session created so far, or nil.
func (d *Dispatcher) Session() service.Service {
	return d.session
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> interactive shell
	if len(args) == 0 {
		return d.runShell(ctx, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == "shell" {
		return d.startShell(ctx, args[1:], out, errOut)
	}

	return d.dispatch(ctx, args, out, errOut)
}

// dispatch runs one command line (name followed by flags and arguments).
func (d *Dispatcher) dispatch(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(args[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs)

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := d.config(d.merge(common))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	logger := d.log(errOut, cfg.Debug)
	d.setDebug(cfg.Debug)
	logger.Debug("dispatch", "command", cmd.Name(), "args", len(positionalArgs))

	var svc service.Service
	if cmd.NeedsSession() {
		svc, err = d.sessionFor(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: session: %v\n", err)
			return exitcode.ConfigError
		}
	}

	return cmd.Run(ctx, cfg, svc, positionalArgs, out, errOut)
}

// merge applies the shell-level defaults under the flags of one command line.
func (d *Dispatcher) merge(f commonFlags) commonFlags {
	if f.configDir == "" {
		f.configDir = d.defaults.configDir
	}
	f.quiet = f.quiet || d.defaults.quiet
	f.debug = f.debug || d.defaults.debug
	return f
}

// config loads the configuration for a directory once per process and
// returns a copy with the command-line overrides applied.
func (d *Dispatcher) config(f commonFlags) (*config.Config, error) {
	base, ok := d.configs[f.configDir]
	if !ok {
		var err error
		base, err = config.Load(f.configDir)
		if err != nil {
			return nil, err
		}
		d.configs[f.configDir] = base
	}

	cfg := *base
	cfg.Quiet = cfg.Quiet || f.quiet
	cfg.Debug = cfg.Debug || f.debug
	return &cfg, nil
}

func (d *Dispatcher) log(errOut io.Writer, debug bool) *log.Logger {
	if d.logger == nil {
		d.logger = logging.New(errOut, logging.Options{Debug: debug})
	}
	return d.logger
}

// setDebug applies the level of the current command line to both loggers.
func (d *Dispatcher) setDebug(debug bool) {
	if d.logger != nil {
		logging.SetDebug(d.logger, debug)
	}
	if d.sessionLogger != nil {
		logging.SetDebug(d.sessionLogger, debug)
	}
}

func (d *Dispatcher) sessionFor(cfg *config.Config) (service.Service, error) {
	if d.session != nil {
		return d.session, nil
	}
	if d.factory == nil {
		return nil, ErrNoSessionFactory
	}

	logger, id := logging.WithSession(d.logger)
	svc, err := d.factory(cfg, logger)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("session started", "session", id, "id_strategy", cfg.IDStrategy)
	d.sessionLogger = logger
	d.session = svc
	return svc, nil
}

// flagErrorMessage maps flag package errors to the CLI's messages.
func flagErrorMessage(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "unknown flag: " + flagName
	}

	return errStr
}
