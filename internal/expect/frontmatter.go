package expect

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// FromFrontMatter reads expectations declared in the fixture's YAML
// front matter under the "expect" key:
//
//	---
//	expect:
//	  errors:
//	    - { line: 3, rule: MD041 }
//	---
//
// The second return value reports whether the fixture declares front
// matter expectations at all; when it is false the caller should fall
// back to another source form.
func FromFrontMatter(source []byte, label string) (Set, bool, error) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	ctx := parser.NewContext()
	md.Parser().Parse(gtext.NewReader(source), parser.WithContext(ctx))

	d := frontmatter.Get(ctx)
	if d == nil {
		return Set{}, false, nil
	}

	var fm struct {
		Expect any `yaml:"expect"`
	}
	if err := d.Decode(&fm); err != nil {
		return Set{}, false, fmt.Errorf("invalid front matter in %s: %w", label, err)
	}
	if fm.Expect == nil {
		return Set{}, false, nil
	}

	set, err := parseData(fm.Expect, label)
	if err != nil {
		return Set{}, true, err
	}
	return set, true, nil
}
