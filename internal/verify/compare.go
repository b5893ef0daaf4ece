package verify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/diag"
	"github.com/cypher0n3/docs-as-code-tools/internal/expect"
)

// Compare asserts that the linter's observed behaviour for one fixture
// matches its expectations. Checks run in a fixed order and the first
// failing check stops and reports:
//
//  1. exit-code policy: zero expected errors iff zero exit code
//  2. total diagnostic count
//  3. per-(line, rule) counts, summed over columns
//  4. per-(line, rule, column) count sufficiency where a column is pinned
//  5. message_contains substring containment
//
// label is the path string the linter prefixes its diagnostic lines
// with; combined is the full captured output, embedded in every failure.
func Compare(label string, exp expect.Set, exitCode int, combined string, actual []diag.Record) error {
	if err := compareExitCode(label, exp, exitCode, combined); err != nil {
		return err
	}
	if err := compareTotal(label, exp, exitCode, combined, actual); err != nil {
		return err
	}
	if err := compareLineRuleCounts(label, exp, combined, actual); err != nil {
		return err
	}
	if err := compareColumnCounts(label, exp, combined, actual); err != nil {
		return err
	}
	return compareMessages(label, exp, combined, actual)
}

func compareExitCode(label string, exp expect.Set, exitCode int, combined string) error {
	expOK := exp.ExpectsClean()
	actOK := exitCode == 0
	if expOK == actOK {
		return nil
	}
	want := "non-zero"
	if expOK {
		want = "0"
	}
	return &AssertionError{
		File:   label,
		Reason: fmt.Sprintf("unexpected exit code for %s: expected %s, got %d", label, want, exitCode),
		Output: combined,
	}
}

func compareTotal(label string, exp expect.Set, exitCode int, combined string, actual []diag.Record) error {
	if len(actual) == exp.Total {
		return nil
	}
	reason := fmt.Sprintf("unexpected error count for %s: expected %d, got %d",
		label, exp.Total, len(actual))
	// Non-zero exit with no parseable diagnostics usually means the
	// linter crashed or is misconfigured rather than found issues.
	if exitCode != 0 && exp.Total > 0 && len(actual) == 0 {
		reason += " (no diagnostic lines parsed; the linter may have crashed or be misconfigured)"
	}
	return &AssertionError{File: label, Reason: reason, Output: combined}
}

// compareLineRuleCounts checks summed counts ignoring columns, so
// column-agnostic expectations tolerate whatever real columns the rule
// reports at.
func compareLineRuleCounts(label string, exp expect.Set, combined string, actual []diag.Record) error {
	expMap := diag.CountByLineRule(exp.Records)
	actMap := diag.CountByLineRule(actual)

	for _, k := range sortedKeys(expMap, actMap) {
		if expMap[k] != actMap[k] {
			return &AssertionError{
				File: label,
				Reason: fmt.Sprintf("unexpected errors for %s: line %d rule %s: expected %d, got %d",
					label, k.Line, k.Rule, expMap[k], actMap[k]),
				Output: combined,
			}
		}
	}
	return nil
}

// compareColumnCounts enforces exact accounting only where the
// expectation pins a column: the actual output must have at least as
// many occurrences at that exact position.
func compareColumnCounts(label string, exp expect.Set, combined string, actual []diag.Record) error {
	expPos := diag.CountByPosition(exp.Records)
	actPos := diag.CountByPosition(actual)

	for _, k := range sortedKeys(expPos, nil) {
		if k.Column == 0 {
			continue
		}
		if actPos[k] < expPos[k] {
			return &AssertionError{
				File: label,
				Reason: fmt.Sprintf(
					"unexpected column counts for %s: line %d rule %s column %d: expected %d, got %d",
					label, k.Line, k.Rule, k.Column, expPos[k], actPos[k]),
				Output: combined,
			}
		}
	}
	return nil
}

// compareMessages checks every message_contains expectation against the
// actual records sharing its line and rule (and column, when pinned).
func compareMessages(label string, exp expect.Set, combined string, actual []diag.Record) error {
	for _, want := range exp.Records {
		if want.MessageContains == "" {
			continue
		}

		var candidates []diag.Record
		for _, got := range actual {
			if got.Line != want.Line || diag.RuleKey(got.Rule) != diag.RuleKey(want.Rule) {
				continue
			}
			if want.Column != 0 && got.Column != want.Column {
				continue
			}
			candidates = append(candidates, got)
		}

		if len(candidates) == 0 {
			return &AssertionError{
				File: label,
				Reason: fmt.Sprintf(
					"message_contains %q not satisfied for %s: no diagnostic at line %d rule %s",
					want.MessageContains, label, want.Line, want.Rule),
				Output: combined,
			}
		}

		found := false
		for _, c := range candidates {
			if strings.Contains(c.Message, want.MessageContains) {
				found = true
				break
			}
		}
		if !found {
			return &AssertionError{
				File: label,
				Reason: fmt.Sprintf(
					"message_contains %q not satisfied for %s: line %d rule %s: substring not found (first actual message: %q)",
					want.MessageContains, label, want.Line, want.Rule, candidates[0].Message),
				Output: combined,
			}
		}
	}
	return nil
}

// sortedKeys returns the union of the maps' keys in (line, rule, column)
// order so the first reported mismatch is deterministic.
func sortedKeys(a, b map[diag.Key]int) []diag.Key {
	seen := make(map[diag.Key]bool, len(a)+len(b))
	keys := make([]diag.Key, 0, len(a)+len(b))
	for k := range a {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Line != keys[j].Line {
			return keys[i].Line < keys[j].Line
		}
		if keys[i].Rule != keys[j].Rule {
			return keys[i].Rule < keys[j].Rule
		}
		return keys[i].Column < keys[j].Column
	})
	return keys
}
