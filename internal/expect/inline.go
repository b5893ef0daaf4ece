package expect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// InfoString is the fenced code block info string that marks an inline
// expectation block inside a fixture.
const InfoString = "markdownlint-expect"

// ParseInline extracts the trailing ```markdownlint-expect block from a
// fixture and parses its JSON payload. The inline form requires an
// explicit total field.
func ParseInline(source []byte, label string) (Set, error) {
	payload, err := ExtractInlineBlock(source, label)
	if err != nil {
		return Set{}, err
	}

	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return Set{}, fmt.Errorf("invalid JSON in %s expectations: %w", label, err)
	}

	m, ok := data.(map[string]any)
	if !ok {
		return Set{}, fmt.Errorf("expectations in %s must be a mapping", label)
	}
	if _, present := m["total"]; !present {
		return Set{}, fmt.Errorf("invalid \"total\" in %s (must be a non-negative integer)", label)
	}

	return parseData(data, label)
}

// HasInlineBlock reports whether the fixture contains an inline
// expectation block at all (terminated or not).
func HasInlineBlock(source []byte) bool {
	return findExpectBlock(source) != nil
}

// ExtractInlineBlock returns the raw payload of the last
// ```markdownlint-expect block in source. It fails when no block exists
// or when the opening fence has no matching closing fence.
func ExtractInlineBlock(source []byte, label string) ([]byte, error) {
	fcb := findExpectBlock(source)
	if fcb == nil {
		return nil, fmt.Errorf("missing `%s%s` block in %s", "```", InfoString, label)
	}

	var payload bytes.Buffer
	segs := fcb.Lines()
	end := fcb.Info.Segment.Stop
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		payload.Write(source[seg.Start:seg.Stop])
		end = seg.Stop
	}

	if !closedAfter(source, end) {
		return nil, fmt.Errorf("unterminated `%s%s` block in %s", "```", InfoString, label)
	}

	return bytes.TrimSpace(payload.Bytes()), nil
}

// findExpectBlock walks the parsed document and returns the last fenced
// code block whose info string names the expectation payload.
func findExpectBlock(source []byte) *ast.FencedCodeBlock {
	doc := goldmark.DefaultParser().Parse(gtext.NewReader(source))

	var found *ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok && fcb.Info != nil {
			if string(fcb.Language(source)) == InfoString {
				found = fcb
			}
		}
		return ast.WalkContinue, nil
	})
	return found
}

// closedAfter reports whether a closing fence line follows the given
// offset. An unterminated block swallows the rest of the document, so
// nothing after its last content line starts with a fence.
func closedAfter(source []byte, offset int) bool {
	if offset > len(source) {
		return false
	}
	for _, line := range strings.Split(string(source[offset:]), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			return true
		}
	}
	return false
}
