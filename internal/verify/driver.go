package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/expect"
	"github.com/cypher0n3/docs-as-code-tools/internal/lintout"
)

// Driver verifies single fixture files against their expectations by
// invoking the linter once per file.
type Driver struct {
	// Cmd is the linter invocation, e.g. from LocateLinter.
	Cmd []string

	// Root is the working directory for linter invocations. Fixture
	// paths are labelled relative to it, matching the path prefix the
	// linter uses on its own diagnostic lines.
	Root string

	// Expectations is the optional external expectation document. When
	// it lists a fixture (by filename) it wins over the fixture's own
	// inline block or front matter.
	Expectations expect.Doc

	// Runner executes the linter; nil means DefaultRunner.
	Runner LintRunner
}

// VerifyFile runs one verification: load expectations, invoke the
// linter, parse its output, and compare. The returned Set is the loaded
// expectation (zero on load failure), usable for progress reporting.
//
// Failures are typed: malformed expectations come back as plain wrapped
// errors, process spawn problems as *ToolError, and behavioural
// divergence as *AssertionError.
func (d *Driver) VerifyFile(path string) (expect.Set, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return expect.Set{}, fmt.Errorf("reading fixture: %w", err)
	}

	label, err := d.label(path)
	if err != nil {
		return expect.Set{}, err
	}

	set, err := d.loadExpectations(source, label, filepath.Base(path))
	if err != nil {
		return expect.Set{}, err
	}

	runner := d.Runner
	if runner == nil {
		runner = DefaultRunner
	}

	args := append(append([]string{}, d.Cmd...), label)
	stdout, stderr, exitCode, err := runner.Run(args, d.Root)
	if err != nil {
		return set, &ToolError{Cmd: args, Err: err}
	}

	combined := CombineOutput(stdout, stderr)
	actual := lintout.Parse(combined, label)

	return set, Compare(label, set, exitCode, combined, actual)
}

// label returns the path string the linter will prefix diagnostics
// with: relative to Root when possible, in slash form.
func (d *Driver) label(path string) (string, error) {
	if d.Root == "" {
		return filepath.ToSlash(path), nil
	}
	rel, err := filepath.Rel(d.Root, path)
	if err != nil {
		return "", fmt.Errorf("labelling fixture %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// loadExpectations resolves the expectation source for a fixture:
// external document entry, then inline fenced block, then front matter.
func (d *Driver) loadExpectations(source []byte, label, name string) (expect.Set, error) {
	if d.Expectations != nil && d.Expectations.Has(name) {
		return d.Expectations.ForFixture(name)
	}

	if expect.HasInlineBlock(source) {
		return expect.ParseInline(source, label)
	}

	if set, ok, err := expect.FromFrontMatter(source, label); ok || err != nil {
		return set, err
	}

	if d.Expectations != nil {
		return expect.Set{}, fmt.Errorf("no expectations for %s", name)
	}
	// Reported through ParseInline so the error names the block marker.
	return expect.ParseInline(source, label)
}

// CombineOutput joins captured stdout and stderr into one blob, stdout
// first, with a separating newline when both are non-empty. The result
// is trimmed of surrounding whitespace.
func CombineOutput(stdout, stderr string) string {
	combined := stdout
	if stdout != "" && stderr != "" {
		combined += "\n"
	}
	combined += stderr
	return strings.TrimSpace(combined)
}
