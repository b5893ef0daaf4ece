// Package mdlconfig creates temporary markdownlint-cli2 configurations
// so individual scenarios can exercise rule options without touching
// the repository config.
//
// The generated config lands in <root>/tmp/.markdownlint-cli2.jsonc and
// the linter is run with that directory as its working directory, so
// the CLI's own config discovery picks up only the temporary file and
// never merges the repository-wide config over it.
package mdlconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	baseConfigName  = ".markdownlint.yml"
	cli2OptionsName = ".markdownlint-cli2.jsonc"
)

// LoadBase reads the repository's .markdownlint.yml. A missing file or
// a non-mapping document degrades to {"default": true}.
func LoadBase(root string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(root, baseConfigName))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{"default": true}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", baseConfigName, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", baseConfigName, err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{"default": true}, nil
	}
	return m, nil
}

// loadCLI2Options reads the repository's .markdownlint-cli2.jsonc for
// customRules and ignores. The file is JSON-shaped; a missing or empty
// file yields an empty option set.
func loadCLI2Options(root string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(root, cli2OptionsName))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", cli2OptionsName, err)
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var opts map[string]any
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cli2OptionsName, err)
	}
	return opts, nil
}

// Merge overlays overrides onto base: top-level keys are replaced, not
// deep-merged. Neither input is mutated.
func Merge(base, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// TempConfig writes a temporary markdownlint-cli2 config combining the
// repository base config with the given rule overrides. It returns the
// config path and a cleanup func that removes the file; the cleanup is
// safe to call on every exit path.
//
// Custom rule paths from the repository options are made absolute so
// they resolve from the tmp working directory, and the tmp/** ignore is
// dropped so files placed under tmp/ are actually linted.
func TempConfig(root string, overrides map[string]any) (string, func(), error) {
	base, err := baseFor(root, overrides)
	if err != nil {
		return "", nil, err
	}
	cfg := Merge(base, overrides)

	opts, err := loadCLI2Options(root)
	if err != nil {
		return "", nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", nil, fmt.Errorf("resolving repo root: %w", err)
	}

	options := map[string]any{
		"config":      cfg,
		"customRules": absoluteRulePaths(absRoot, opts),
		"ignores":     ignoresWithoutTmp(opts),
	}

	tmpDir := filepath.Join(root, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating tmp dir: %w", err)
	}

	data, err := json.MarshalIndent(options, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(tmpDir, cli2OptionsName)
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return "", nil, fmt.Errorf("writing %s: %w", configPath, err)
	}

	cleanup := func() { _ = os.Remove(configPath) }
	return configPath, cleanup, nil
}

// baseFor picks the base config: when the overrides disable defaults,
// start minimal so only the overridden rules run.
func baseFor(root string, overrides map[string]any) (map[string]any, error) {
	if v, ok := overrides["default"]; ok {
		if enabled, isBool := v.(bool); isBool && !enabled {
			return map[string]any{"default": false}, nil
		}
	}
	return LoadBase(root)
}

func absoluteRulePaths(absRoot string, opts map[string]any) []string {
	raw, _ := opts["customRules"].([]any)
	abs := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok {
			continue
		}
		if !filepath.IsAbs(s) {
			s = filepath.Join(absRoot, s)
		}
		abs = append(abs, filepath.Clean(s))
	}
	return abs
}

func ignoresWithoutTmp(opts map[string]any) []string {
	raw, _ := opts["ignores"].([]any)
	ignores := make([]string, 0, len(raw))
	for _, r := range raw {
		s, ok := r.(string)
		if !ok || s == "tmp/**" {
			continue
		}
		ignores = append(ignores, s)
	}
	return ignores
}
