// Package expect loads declared lint expectations for fixture files.
//
// Three source forms are supported, in the order the verifier consults
// them: an external YAML document keyed by fixture filename, a fenced
// ```markdownlint-expect block at the tail of the fixture itself, and a
// YAML front matter "expect" mapping.
package expect

import (
	"fmt"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/diag"
)

// Set is the parsed expectation for one fixture: the declared (or
// derived) total and the expected findings. Immutable after parse.
type Set struct {
	Total   int
	Records []diag.Record
}

// ExpectsClean reports whether the fixture is supposed to produce no
// diagnostics at all.
func (s Set) ExpectsClean() bool {
	return s.Total == 0
}

// parseData validates a duck-typed expectation payload (from JSON or
// YAML) and produces a Set. Every violation names the offending field,
// and for list elements the errors[i] index, so a broken expectation is
// locatable without reading the payload. label identifies the fixture in
// error messages.
func parseData(data any, label string) (Set, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return Set{}, fmt.Errorf("expectations in %s must be a mapping", label)
	}

	// A missing errors key is the same defect as a non-sequence one: an
	// expectation must always say what it expects, even when that is the
	// empty sequence.
	list, ok := m["errors"].([]any)
	if !ok {
		return Set{}, fmt.Errorf("invalid \"errors\" in %s (must be a sequence)", label)
	}

	records := make([]diag.Record, 0, len(list))
	for i, item := range list {
		rec, err := parseRecord(item, i, label)
		if err != nil {
			return Set{}, err
		}
		records = append(records, rec)
	}

	total := len(records)
	if rawTotal, explicit := m["total"]; explicit {
		declared, ok := asInt(rawTotal)
		if !ok || declared < 0 {
			return Set{}, fmt.Errorf("invalid \"total\" in %s (must be a non-negative integer)", label)
		}
		if declared != len(records) {
			return Set{}, fmt.Errorf("expectation mismatch in %s: total=%d but errors length is %d",
				label, declared, len(records))
		}
		total = declared
	}

	return Set{Total: total, Records: records}, nil
}

// parseRecord validates one element of the errors sequence.
func parseRecord(item any, i int, label string) (diag.Record, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return diag.Record{}, fmt.Errorf("invalid errors[%d] in %s (must be a mapping)", i, label)
	}

	line, lineOK := asInt(m["line"])
	rule, ruleOK := m["rule"].(string)
	rule = strings.TrimSpace(rule)
	if !lineOK || line < 1 || !ruleOK || rule == "" {
		return diag.Record{}, fmt.Errorf(
			"invalid errors[%d] in %s (need line: integer >= 1 and rule: non-empty string)", i, label)
	}

	rec := diag.Record{Line: line, Rule: rule}

	if raw, present := m["column"]; present {
		col, ok := asInt(raw)
		if !ok || col < 1 {
			return diag.Record{}, fmt.Errorf(
				"invalid \"column\" in errors[%d] in %s (must be an integer >= 1)", i, label)
		}
		rec.Column = col
	}

	if raw, present := m["message_contains"]; present {
		s, ok := raw.(string)
		if !ok || s == "" {
			return diag.Record{}, fmt.Errorf(
				"invalid \"message_contains\" in errors[%d] in %s (must be a non-empty string)", i, label)
		}
		rec.MessageContains = s
	}

	return rec, nil
}

// asInt accepts the integer representations produced by the YAML and
// JSON decoders. JSON numbers arrive as float64 and are accepted only
// when integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
