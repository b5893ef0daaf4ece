package verify

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// ListFixtures returns the verification order for a fixture directory:
// positive*.md fixtures (the "all rules pass" documents) first, then
// negative_*.md fixtures, each group sorted.
func ListFixtures(dir string) ([]string, error) {
	positive, err := Discover(dir, []string{"positive*.md"}, nil)
	if err != nil {
		return nil, err
	}
	negative, err := Discover(dir, []string{"negative_*.md"}, nil)
	if err != nil {
		return nil, err
	}
	return append(positive, negative...), nil
}

// Discover walks dir and returns files matching any of the glob
// patterns (doublestar syntax, matched against the slash-form path
// relative to dir), minus any matching an ignore pattern. Results are
// sorted.
func Discover(dir string, patterns, ignores []string) ([]string, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid fixture pattern %q", p)
		}
	}

	ignoreGlobs := make([]glob.Glob, 0, len(ignores))
	for _, pattern := range ignores {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		ignoreGlobs = append(ignoreGlobs, g)
	}

	var result []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		for _, g := range ignoreGlobs {
			if g.Match(rel) || g.Match(filepath.Base(path)) {
				return nil
			}
		}

		for _, p := range patterns {
			matched, err := doublestar.Match(p, rel)
			if err == nil && matched {
				result = append(result, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering fixtures in %s: %w", dir, err)
	}

	sort.Strings(result)
	return result, nil
}

// GenerateLongFixture writes an n-line markdown document for scenarios
// that exercise oversized-document rules. The caller removes the file
// when done.
func GenerateLongFixture(path string, n int) error {
	if n < 2 {
		return fmt.Errorf("long fixture needs at least 2 lines, got %d", n)
	}
	var b strings.Builder
	b.WriteString("# Generated long document\n\n")
	for i := 3; i <= n; i++ {
		fmt.Fprintf(&b, "Filler line %d.\n", i)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// OrderFixtures validates an explicit fixture list: positives must come
// before negatives. Returns the list unchanged when valid.
func OrderFixtures(files []string) ([]string, error) {
	seenNegative := false
	for _, f := range files {
		base := filepath.Base(f)
		switch {
		case strings.HasPrefix(base, "negative_"):
			seenNegative = true
		case strings.HasPrefix(base, "positive"):
			if seenNegative {
				return nil, fmt.Errorf("positive fixture %s listed after a negative fixture", base)
			}
		}
	}
	return files, nil
}
