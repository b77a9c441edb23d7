// Package cmd implements the CLI application to compute mortgage schedules.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&scheduleCmd{}, "schedules")
	c.Register(&summaryCmd{}, "schedules")
	c.Register(&samplesCmd{}, "schedules")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML configuration file. Defaults to $HOME/.mortgage.yaml if it exists.")

// printMarkdown prints markdown to the terminal according to the configured render style.
func printMarkdown(md string) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		cfg = DefaultConfig()
	}

	var opts []glamour.TermRendererOption
	switch cfg.Render.Style {
	case StyleRaw:
		fmt.Print(md)
		return
	case StyleAuto, "":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(cfg.Render.Style))
	}
	opts = append(opts, glamour.WithWordWrap(cfg.Render.Width))

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating markdown renderer: %v\n", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
