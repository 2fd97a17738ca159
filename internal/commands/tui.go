package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/ui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd implements the tui command.
type TUICmd struct {
	hideCompleted bool
}

func (c *TUICmd) Name() string       { return "tui" }
func (c *TUICmd) Aliases() []string  { return nil }
func (c *TUICmd) Synopsis() string   { return "Open the full-screen task list" }
func (c *TUICmd) Usage() string      { return "todo tui [--hide-completed]" }
func (c *TUICmd) NeedsSession() bool { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.hideCompleted, "hide-completed", false, "")
}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	opts := ui.Options{
		HideCompleted: c.hideCompleted || cfg.TUI.HideCompleted,
	}
	if err := ui.Run(ctx, svc, out, opts); err != nil {
		if errors.Is(err, ui.ErrTTYRequired) {
			fmt.Fprintln(errOut, "error: tui requires a terminal")
			return exitcode.UserError
		}
		if errors.Is(err, context.Canceled) {
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
