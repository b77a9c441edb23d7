package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed *.md
var templates embed.FS

// RenderSchedule renders the full schedule, period by period, to a markdown string.
func RenderSchedule(s *Schedule) string {
	partials := map[string]string{
		"schedule_title":    "schedule_title.md",
		"schedule_segments": "schedule_segments.md",
		"schedule_periods":  "schedule_periods.md",
		"schedule_totals":   "schedule_totals.md",
	}
	return renderTemplate("schedule", "schedule.md", partials, s)
}

// RenderSummary renders the schedule without its periods.
func RenderSummary(s *Schedule) string {
	partials := map[string]string{
		"schedule_title":    "schedule_title.md",
		"schedule_segments": "schedule_segments.md",
		"schedule_totals":   "schedule_totals.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// HTML converts markdown produced by this package to an HTML fragment.
func HTML(markdown string) (string, error) {
	var b bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &b); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return b.String(), nil
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
