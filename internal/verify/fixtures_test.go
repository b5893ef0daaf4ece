package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("# T\n"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func TestListFixtures_PositiveFirstThenSortedNegatives(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "negative_zebra.md")
	touch(t, dir, "negative_alpha.md")
	touch(t, dir, "positive.md")
	touch(t, dir, "README.md")

	files, err := ListFixtures(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := baseNames(files)
	want := []string{"positive.md", "negative_alpha.md", "negative_zebra.md"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDiscover_Ignores(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "negative_keep.md")
	touch(t, dir, "negative_skip.md")

	files, err := Discover(dir, []string{"negative_*.md"}, []string{"negative_skip.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := baseNames(files)
	if len(got) != 1 || got[0] != "negative_keep.md" {
		t.Errorf("got %v, want [negative_keep.md]", got)
	}
}

func TestDiscover_DoublestarPattern(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "negative_deep.md")
	touch(t, dir, "negative_top.md")

	files, err := Discover(dir, []string{"**/negative_*.md"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected both fixtures, got %v", baseNames(files))
	}
}

func TestDiscover_InvalidPattern(t *testing.T) {
	if _, err := Discover(t.TempDir(), []string{"[unclosed"}, nil); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestOrderFixtures_PositiveAfterNegative(t *testing.T) {
	_, err := OrderFixtures([]string{"negative_a.md", "positive.md"})
	if err == nil || !strings.Contains(err.Error(), "positive.md") {
		t.Errorf("expected ordering error naming the fixture, got %v", err)
	}
}

func TestOrderFixtures_ValidList(t *testing.T) {
	files := []string{"positive.md", "negative_a.md", "negative_b.md"}
	got, err := OrderFixtures(files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("list should pass through unchanged, got %v", got)
	}
}

func TestGenerateLongFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negative_document_length.md")

	if err := GenerateLongFixture(path, 1501); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated fixture: %v", err)
	}
	lines := strings.Count(string(data), "\n")
	if lines != 1501 {
		t.Errorf("generated %d lines, want 1501", lines)
	}
	if !strings.HasPrefix(string(data), "# ") {
		t.Error("generated fixture should start with a heading")
	}
}

func TestGenerateLongFixture_TooShort(t *testing.T) {
	if err := GenerateLongFixture(filepath.Join(t.TempDir(), "x.md"), 1); err == nil {
		t.Error("expected error for a 1-line request")
	}
}
