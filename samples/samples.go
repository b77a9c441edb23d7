// Package samples embeds ready to use scenario files.
//
// They reproduce a Beijing bank mortgage under both bank repayment methods
// and a housing provident fund loan, with real rate histories.
package samples

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/etnz/mortgage"
)

//go:embed *.yaml
var files embed.FS

// Names returns the names of the samples, sorted.
func Names() []string {
	entries, err := fs.Glob(files, "*.yaml")
	if err != nil {
		panic(err) // the pattern is constant
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Source returns the scenario file of a sample.
func Source(name string) ([]byte, error) {
	content, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("sample %q not found (available: %s)", name, strings.Join(Names(), ", "))
	}
	return content, nil
}

// Load decodes a sample scenario.
func Load(name string) (*mortgage.Scenario, error) {
	content, err := Source(name)
	if err != nil {
		return nil, err
	}
	s, err := mortgage.DecodeScenario(bytes.NewReader(content), mortgage.YAML, "")
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", name, err)
	}
	return s, nil
}
