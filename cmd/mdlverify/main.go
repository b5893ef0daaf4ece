// Command mdlverify runs markdownlint-cli2 over fixture documents and
// checks the diagnostics it reports against the expectations declared
// for each fixture.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/cypher0n3/docs-as-code-tools/internal/expect"
	"github.com/cypher0n3/docs-as-code-tools/internal/log"
	"github.com/cypher0n3/docs-as-code-tools/internal/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mdlverify", flag.ContinueOnError)
	var (
		verbose      bool
		root         string
		fixturesDir  string
		expectations string
		linter       string
	)

	fs.BoolVarP(&verbose, "verbose", "v", false, "Print per-fixture progress to stderr")
	fs.StringVarP(&root, "root", "r", ".", "Repository root; linter runs here and fixture labels are relative to it")
	fs.StringVarP(&fixturesDir, "fixtures", "d", "", "Fixture directory (default <root>/md_test_files)")
	fs.StringVarP(&expectations, "expectations", "e", "", "External expectations YAML (default <fixtures>/expected_errors.yml when present)")
	fs.StringVar(&linter, "linter", "", "Linter command override, e.g. \"npx markdownlint-cli2\"")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mdlverify [flags] [fixtures...]\n\n"+
			"Verify markdownlint fixture expectations.\n\n"+
			"With no fixture arguments, verifies positive*.md then negative_*.md\n"+
			"from the fixture directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fixturesDir == "" {
		fixturesDir = filepath.Join(root, "md_test_files")
	}

	files, err := fixtureFiles(fs.Args(), fixturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdlverify: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "mdlverify: no fixtures found in %s\n", fixturesDir)
		return 2
	}

	doc, err := loadExpectations(expectations, fixturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdlverify: %v\n", err)
		return 2
	}

	cmd := verify.LocateLinter(root)
	if linter != "" {
		cmd = strings.Fields(linter)
	}

	suite := &verify.Suite{
		Driver: &verify.Driver{
			Cmd:          cmd,
			Root:         root,
			Expectations: doc,
		},
		Files: files,
		Log:   &log.Logger{Enabled: verbose, W: os.Stderr},
	}

	failures := suite.Run()
	if len(failures) > 0 {
		verify.WriteReport(os.Stderr, failures)
		return 1
	}
	verify.WriteReport(os.Stdout, failures)
	return 0
}

// fixtureFiles resolves the fixture list: explicit arguments (validated
// for positive-before-negative ordering) or directory discovery.
func fixtureFiles(args []string, fixturesDir string) ([]string, error) {
	if len(args) > 0 {
		return verify.OrderFixtures(args)
	}
	return verify.ListFixtures(fixturesDir)
}

// loadExpectations loads the external expectation document when one was
// requested or the conventional file exists. A nil document means each
// fixture carries its own expectations inline.
func loadExpectations(path, fixturesDir string) (expect.Doc, error) {
	if path == "" {
		candidate := filepath.Join(fixturesDir, "expected_errors.yml")
		if _, err := os.Stat(candidate); err != nil {
			return nil, nil
		}
		path = candidate
	}
	return expect.Load(path)
}
