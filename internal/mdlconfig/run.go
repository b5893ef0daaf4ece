package mdlconfig

import (
	"path/filepath"
	"strings"

	"github.com/cypher0n3/docs-as-code-tools/internal/verify"
)

// Result holds the captured outcome of a linter run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns stdout and stderr joined the way the verifier
// consumes them.
func (r Result) Combined() string {
	return verify.CombineOutput(r.Stdout, r.Stderr)
}

// RunWithConfig lints paths under a temporary config (base + overrides)
// and cleans the config up afterwards.
//
// The linter runs with <root>/tmp as its working directory and the
// temporary config named explicitly via --config, so the run cannot
// pick up a stray config elsewhere in the tree. Paths under <root>/tmp
// are passed as bare filenames; all other paths are passed as-is, so
// absolute paths keep working. The caller inspects Result.ExitCode and
// the captured streams.
func RunWithConfig(root string, overrides map[string]any, paths []string, fix bool, runner verify.LintRunner) (Result, error) {
	cfgPath, cleanup, err := TempConfig(root, overrides)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	tmpDir := filepath.Join(root, "tmp")

	args := verify.LocateLinter(root)
	args = append(args, "--config", filepath.Base(cfgPath))
	if fix {
		args = append(args, "--fix")
	}
	for _, p := range paths {
		args = append(args, relabelForTmp(p, tmpDir))
	}

	if runner == nil {
		runner = verify.DefaultRunner
	}

	stdout, stderr, exitCode, err := runner.Run(args, tmpDir)
	if err != nil {
		return Result{}, &verify.ToolError{Cmd: args, Err: err}
	}
	return Result{Stdout: stdout, Stderr: stderr, ExitCode: exitCode}, nil
}

// relabelForTmp rewrites a path under the tmp working directory to its
// bare name; anything else is passed through untouched.
func relabelForTmp(path, tmpDir string) string {
	slashPath := filepath.ToSlash(filepath.Clean(path))
	slashTmp := filepath.ToSlash(filepath.Clean(tmpDir)) + "/"

	if strings.HasPrefix(slashPath, slashTmp) {
		return strings.TrimPrefix(slashPath, slashTmp)
	}
	if strings.HasPrefix(slashPath, "tmp/") {
		return strings.TrimPrefix(slashPath, "tmp/")
	}
	return path
}
