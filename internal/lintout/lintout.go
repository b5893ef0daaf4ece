// Package lintout parses markdownlint-cli2 textual output into diagnostics.
package lintout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/diag"
)

// diagLine matches one diagnostic line in the shape
// <path>:<line>[:<column>] [error ]<rule> <message...>
// The rule token is taken up to the next whitespace, so composite
// identifiers such as MD001/heading-increment stay intact. A rule token
// with nothing after it does not count as a diagnostic: markdownlint
// always prints a message, so a bare trailing token is noise.
var diagLine = regexp.MustCompile(`^[^:]+:(\d+)(?::(\d+))?\s+(?:error\s+)?(\S+)\s+(.*)$`)

// Parse extracts the diagnostics for one file from combined linter
// output. Only lines whose prefix is exactly label+":" are considered;
// everything else (other files, banners, summaries) is discarded. A line
// with the right prefix that does not match the diagnostic shape is
// skipped as non-diagnostic noise, not an error.
func Parse(output, label string) []diag.Record {
	var records []diag.Record
	prefix := label + ":"
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		m := diagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ln, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		col := 0
		if m[2] != "" {
			col, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		records = append(records, diag.Record{
			Line:    ln,
			Rule:    m[3],
			Column:  col,
			Message: strings.TrimSpace(m[4]),
		})
	}
	return records
}
