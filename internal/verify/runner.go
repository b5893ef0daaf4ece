package verify

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// LintRunner executes the external linter command. The seam exists so
// tests can verify comparison behaviour without a real linter install.
type LintRunner interface {
	// Run executes args (args[0] is the executable) in dir and returns
	// the captured streams and exit code. A non-nil error means the
	// process could not be started, not that it exited non-zero.
	Run(args []string, dir string) (stdout, stderr string, exitCode int, err error)
}

type execLintRunner struct{}

func (execLintRunner) Run(args []string, dir string) (string, string, int, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", "", 0, err
		}
		return out.String(), errOut.String(), exitErr.ExitCode(), nil
	}
	return out.String(), errOut.String(), 0, nil
}

// DefaultRunner executes linter commands as real processes.
var DefaultRunner LintRunner = execLintRunner{}

// LocateLinter returns the linter invocation: the repo-local
// node_modules install when present and executable, otherwise an npx
// fallback. Pure function, no caching.
func LocateLinter(root string) []string {
	local := filepath.Join(root, "node_modules", ".bin", "markdownlint-cli2")
	if info, err := os.Stat(local); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
		return []string{local}
	}
	return []string{"npx", "markdownlint-cli2"}
}
