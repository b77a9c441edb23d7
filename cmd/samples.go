package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/mortgage/samples"
	"github.com/google/subcommands"
)

type samplesCmd struct {
	show string
}

func (*samplesCmd) Name() string     { return "samples" }
func (*samplesCmd) Synopsis() string { return "list built-in sample scenarios" }
func (*samplesCmd) Usage() string {
	return `mortgage samples [-show <name>]

  Lists the built-in samples, or prints the scenario file of one of them.
`
}

func (c *samplesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.show, "show", "", "print the scenario file of a sample")
}

func (c *samplesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.show != "" {
		content, err := samples.Source(c.show)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		os.Stdout.Write(content)
		return subcommands.ExitSuccess
	}

	for _, name := range samples.Names() {
		s, err := samples.Load(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading sample: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%-18s %s\n", name, s.Name)
	}
	return subcommands.ExitSuccess
}
