package expect

import (
	"strings"
	"testing"
)

func TestFromFrontMatter_Valid(t *testing.T) {
	source := []byte(`---
expect:
  errors:
    - line: 5
      rule: MD013/line-length
      message_contains: "Expected: 80"
---
# Title

Content.
`)

	set, ok, err := FromFrontMatter(source, "foo.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("front matter expectations should be detected")
	}
	if set.Total != 1 {
		t.Errorf("total: got %d, want 1", set.Total)
	}
	if set.Records[0].MessageContains != "Expected: 80" {
		t.Errorf("message_contains: got %q", set.Records[0].MessageContains)
	}
}

func TestFromFrontMatter_NoFrontMatter(t *testing.T) {
	_, ok, err := FromFrontMatter([]byte("# Title\n\nNo front matter.\n"), "foo.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("fixture without front matter should not report expectations")
	}
}

func TestFromFrontMatter_NoExpectKey(t *testing.T) {
	source := []byte("---\ntitle: something else\n---\n# Title\n")

	_, ok, err := FromFrontMatter(source, "foo.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("front matter without expect key should not report expectations")
	}
}

func TestFromFrontMatter_InvalidPayload(t *testing.T) {
	source := []byte(`---
expect:
  errors:
    - line: 0
      rule: X
---
# Title
`)

	_, ok, err := FromFrontMatter(source, "foo.md")
	if !ok {
		t.Fatal("expect key is present, ok should be true")
	}
	if err == nil || !strings.Contains(err.Error(), "errors[0]") {
		t.Errorf("expected errors[0] validation error, got %v", err)
	}
}
