package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&CountCmd{})
}

// CountCmd implements the count command.
type CountCmd struct{}

func (c *CountCmd) Name() string       { return "count" }
func (c *CountCmd) Aliases() []string  { return nil }
func (c *CountCmd) Synopsis() string   { return "Print remaining and total task counts" }
func (c *CountCmd) Usage() string      { return "todo count" }
func (c *CountCmd) NeedsSession() bool { return true }

func (c *CountCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CountCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	output.FormatCounts(out, svc.Remaining(), svc.Total())
	return exitcode.Success
}
