package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code block kinds that are executed by TestCodeBlocks.
//
//	bash setup    starts a new working directory, then runs
//	bash run      runs and records its output
//	console check compares the last recorded output
//	bash check    runs, a non zero exit status fails the test
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// binDir holds the mortgage binary built by TestMain.
var binDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "mortgage-docs")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "mortgage"), "../mortgage/")
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build mortgage: %v\n%s", err, out)
		os.RemoveAll(dir)
		os.Exit(1)
	}
	binDir = dir
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestTopics(t *testing.T) {
	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(string(content), -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	slices.Sort(listed)

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(listed, topics) {
		t.Errorf("topics listed in readme.md = %v want %v", listed, topics)
	}
}

func TestGetTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(topics, ","); got != "configuration,methods,scenario" {
		t.Errorf("GetAllTopics() = %s want configuration,methods,scenario", got)
	}

	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Configuration", "# Repayment methods", "# Scenario files"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(\"*\") does not contain %q", title)
		}
	}
	if _, err := GetTopics("methods", "mortgage"); err == nil {
		t.Errorf("GetTopics() with an unknown topic expected an error")
	}
}

// TestCodeBlocks runs the shell examples of every topic and of the README
// against the mortgage binary.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			home := t.TempDir() // no user configuration file
			env := append(os.Environ(),
				fmt.Sprintf("PATH=%s%c%s", binDir, os.PathListSeparator, os.Getenv("PATH")),
				"HOME="+home,
				"MORTGAGE_RENDER_STYLE=raw")
			dir, last := home, ""
			for _, b := range codeBlocks(t, file) {
				if b.kind == consoleCheck {
					if got, want := strings.TrimSpace(last), strings.TrimSpace(b.content); got != want {
						t.Errorf("%s:%d: output = \n%s\nwant\n%s", file, b.line, got, want)
					}
					continue
				}
				if b.kind == bashSetup {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.content)
				cmd.Dir, cmd.Env = dir, env
				out, err := cmd.CombinedOutput()
				if b.kind == bashRun {
					last = string(out)
				}
				if err == nil {
					continue
				}
				if b.kind == bashCheck {
					t.Errorf("%s:%d: check failed: %v\n%s", file, b.line, err, out)
					continue
				}
				t.Fatalf("%s:%d: %s failed: %v\n%s", file, b.line, b.kind, err, out)
			}
		})
	}
}

type codeBlock struct {
	kind    string
	content string
	line    int
}

// codeBlocks returns the executable fenced code blocks of a markdown file.
func codeBlocks(t *testing.T, file string) []codeBlock {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var blocks []codeBlock
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		switch kind {
		case bashSetup, bashRun, consoleCheck, bashCheck:
		default:
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			content.Write(line.Value(source))
		}
		blocks = append(blocks, codeBlock{
			kind:    kind,
			content: content.String(),
			line:    bytes.Count(source[:fcb.Info.Segment.Start], []byte{'\n'}) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
