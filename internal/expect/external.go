package expect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Doc is an external expectation document keyed by fixture filename.
// Each value is a duck-typed payload validated lazily when the fixture
// is verified, so one malformed entry does not block the others.
type Doc map[string]any

// Load reads an external expectation document (expected_errors.yml).
func Load(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading expectations file: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a YAML mapping keyed by fixture filename", path)
	}
	return Doc(m), nil
}

// ForFixture validates and returns the expectations for one fixture,
// looked up by filename. The external form carries no explicit total;
// it is derived as the errors list length.
func (d Doc) ForFixture(name string) (Set, error) {
	entry, ok := d[name]
	if !ok {
		return Set{}, fmt.Errorf("no expectations for %s", name)
	}
	return parseData(entry, name)
}

// Has reports whether the document lists the given fixture.
func (d Doc) Has(name string) bool {
	_, ok := d[name]
	return ok
}
