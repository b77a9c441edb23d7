package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage/renderer"
	"github.com/google/subcommands"
)

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	scenarioFlags
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the full amortization schedule of a loan" }
func (*scheduleCmd) Usage() string {
	return `mortgage schedule (-f <file> [-select <path>] | -sample <name>) [-method <method>] [-html | -json]

  Displays every payment of the loan with its principal and interest,
  the amounts paid to date, the segments and the totals.
`
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.RenderSchedule)
}
