package diag

import (
	"testing"
)

func TestCountByLineRule_CountsDuplicates(t *testing.T) {
	records := []Record{
		{Line: 1, Rule: "A"},
		{Line: 1, Rule: "A"},
		{Line: 1, Rule: "B"},
	}

	m := CountByLineRule(records)

	if got := m[Key{Line: 1, Rule: "A"}]; got != 2 {
		t.Errorf("count for (1, A): got %d, want 2", got)
	}
	if got := m[Key{Line: 1, Rule: "B"}]; got != 1 {
		t.Errorf("count for (1, B): got %d, want 1", got)
	}
}

func TestCountByLineRule_SumsOverColumns(t *testing.T) {
	records := []Record{
		{Line: 4, Rule: "R", Column: 5},
		{Line: 4, Rule: "R", Column: 10},
	}

	m := CountByLineRule(records)

	if got := m[Key{Line: 4, Rule: "R"}]; got != 2 {
		t.Errorf("column variants should sum: got %d, want 2", got)
	}
}

func TestCountByLineRule_Empty(t *testing.T) {
	if m := CountByLineRule(nil); len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestCountByLineRule_OrderIndependent(t *testing.T) {
	a := []Record{{Line: 1, Rule: "X"}, {Line: 2, Rule: "Y"}, {Line: 1, Rule: "X"}}
	b := []Record{{Line: 1, Rule: "X"}, {Line: 1, Rule: "X"}, {Line: 2, Rule: "Y"}}

	ma := CountByLineRule(a)
	mb := CountByLineRule(b)

	if len(ma) != len(mb) {
		t.Fatalf("maps differ in size: %d vs %d", len(ma), len(mb))
	}
	for k, v := range ma {
		if mb[k] != v {
			t.Errorf("key %v: got %d, want %d", k, mb[k], v)
		}
	}
}

func TestCountByLineRule_TotalPreserved(t *testing.T) {
	records := []Record{
		{Line: 1, Rule: "A"},
		{Line: 1, Rule: "A"},
		{Line: 2, Rule: "A"},
		{Line: 3, Rule: "B", Column: 7},
	}

	sum := 0
	for _, n := range CountByLineRule(records) {
		sum += n
	}
	if sum != len(records) {
		t.Errorf("counts sum to %d, want %d", sum, len(records))
	}
}

func TestCountByPosition_KeepsColumnsDistinct(t *testing.T) {
	records := []Record{
		{Line: 1, Rule: "R", Column: 5},
		{Line: 1, Rule: "R", Column: 10},
		{Line: 1, Rule: "R"},
	}

	m := CountByPosition(records)

	if got := m[Key{Line: 1, Rule: "R", Column: 5}]; got != 1 {
		t.Errorf("count at column 5: got %d, want 1", got)
	}
	if got := m[Key{Line: 1, Rule: "R", Column: 10}]; got != 1 {
		t.Errorf("count at column 10: got %d, want 1", got)
	}
	if got := m[Key{Line: 1, Rule: "R", Column: 0}]; got != 1 {
		t.Errorf("count without column: got %d, want 1", got)
	}
}

func TestRuleKey(t *testing.T) {
	cases := []struct {
		rule string
		want string
	}{
		{"MD001", "MD001"},
		{"MD001/heading-increment", "MD001"},
		{"heading-title-case", "heading-title-case"},
		{"", ""},
	}
	for _, c := range cases {
		if got := RuleKey(c.rule); got != c.want {
			t.Errorf("RuleKey(%q) = %q, want %q", c.rule, got, c.want)
		}
	}
}

func TestCountByLineRule_CompositeAndBareShareKey(t *testing.T) {
	expected := []Record{{Line: 2, Rule: "MD001"}}
	actual := []Record{{Line: 2, Rule: "MD001/heading-increment"}}

	em := CountByLineRule(expected)
	am := CountByLineRule(actual)

	k := Key{Line: 2, Rule: "MD001"}
	if em[k] != 1 || am[k] != 1 {
		t.Errorf("bare and composite rules should count under the same key: expected map %v, actual map %v", em, am)
	}
}
