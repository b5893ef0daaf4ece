package verify

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/log"
)

// Failure records one fixture that did not verify, preserving which
// file the error came from.
type Failure struct {
	File string
	Err  error
}

// Suite verifies a set of fixture files sequentially, aggregating
// failures so one broken fixture does not stop the rest.
type Suite struct {
	Driver *Driver
	Files  []string

	// Log receives per-fixture progress lines when verbose mode is on.
	Log *log.Logger
}

// Run verifies every fixture in order and returns the recorded
// failures. Malformed-expectation errors, assertion failures, and tooling
// errors are all caught and recorded uniformly.
func (s *Suite) Run() []Failure {
	var failures []Failure

	for _, path := range s.Files {
		set, err := s.Driver.VerifyFile(path)

		status := "ok"
		if err != nil {
			failures = append(failures, Failure{File: path, Err: err})
			status = "FAIL"
		}
		if s.Log != nil {
			s.Log.Printf("Verifying %s (expect %d errors) ... %s",
				filepath.Base(path), set.Total, status)
		}
	}

	return failures
}

// WriteReport writes the consolidated failure report, or the success
// message when failures is empty.
func WriteReport(w io.Writer, failures []Failure) {
	if len(failures) == 0 {
		fmt.Fprintln(w, "All markdownlint fixture expectations matched.")
		return
	}

	fmt.Fprintf(w, "markdownlint fixture verification failed (%d file(s)):\n\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "%s\n\n", strings.TrimRight(f.Err.Error(), "\n"))
	}
}
