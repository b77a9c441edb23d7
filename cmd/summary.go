package cmd

import (
	"context"
	"flag"

	"github.com/etnz/mortgage/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	scenarioFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the segments and totals of a loan" }
func (*summaryCmd) Usage() string {
	return `mortgage summary (-f <file> [-select <path>] | -sample <name>) [-method <method>] [-html | -json]

  Displays the loan, its segments and totals, without the payments.
`
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(renderer.RenderSummary)
}
