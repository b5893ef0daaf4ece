package diag

import "strings"

// Record represents a single lint finding, either expected (declared in
// an expectation source) or actual (parsed from linter output).
//
// Column is optional; zero means the finding is at line granularity.
// MessageContains is only ever set on expected records, Message only on
// actual records. The comparator never conflates the two.
type Record struct {
	Line            int
	Rule            string
	Column          int
	MessageContains string
	Message         string
}

// Key identifies a finding position for multiset counting. Column is
// zero when the position is line-granular.
type Key struct {
	Line   int
	Rule   string
	Column int
}

// RuleKey reduces a rule identifier to its primary token. markdownlint
// emits composite identifiers like MD001/heading-increment; an
// expectation may name either the bare id or the full composite, so
// counting keys on the part before the first slash.
func RuleKey(rule string) string {
	if i := strings.Index(rule, "/"); i >= 0 {
		return rule[:i]
	}
	return rule
}

// CountByLineRule builds a count map keyed by (line, rule), summing over
// column variants. Duplicate records increment the same count: the same
// rule may fire more than once on one line.
func CountByLineRule(records []Record) map[Key]int {
	m := make(map[Key]int, len(records))
	for _, r := range records {
		m[Key{Line: r.Line, Rule: RuleKey(r.Rule)}]++
	}
	return m
}

// CountByPosition builds a count map keyed by (line, rule, column).
// Records without a column land under column zero.
func CountByPosition(records []Record) map[Key]int {
	m := make(map[Key]int, len(records))
	for _, r := range records {
		m[Key{Line: r.Line, Rule: RuleKey(r.Rule), Column: r.Column}]++
	}
	return m
}
