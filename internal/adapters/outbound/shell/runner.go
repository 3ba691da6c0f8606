package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultShell = "bash"

// Runner executes corrected scripts through the user's shell.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner using $SHELL, or bash when it is unset.
func New() *Runner {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = defaultShell
	}
	return &Runner{Shell: sh, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Name returns the base name of the configured shell, e.g. "zsh".
func (r *Runner) Name() string {
	return filepath.Base(r.Shell)
}

// Run executes script with `<shell> -c` and returns its exit status. A
// non-zero exit is not an error; failing to start the shell is.
func (r *Runner) Run(ctx context.Context, script string) (int, error) {
	if strings.TrimSpace(script) == "" {
		return 0, errors.New("empty script")
	}
	cmd := exec.CommandContext(ctx, r.Shell, "-c", script)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("running %s: %w", r.Name(), err)
	}
	return 0, nil
}

// Alias returns a shell function named name that re-runs the previous
// command through ftf and evaluates the chosen correction.
func Alias(shellName, name string) string {
	switch shellName {
	case "fish":
		return fmt.Sprintf(`function %s
    set -l prev (history --max=1)
    set -l out (eval $prev 2>&1)
    set -l code $status
    set -l fix (ftf --command "$prev" --output "$out" --exit-code $code)
    and eval $fix
end
`, name)
	default:
		return fmt.Sprintf(`%s() {
    local prev out code fix
    prev=$(fc -ln -1 | sed 's/^[[:space:]]*//')
    out=$(eval "$prev" 2>&1)
    code=$?
    fix=$(ftf --command "$prev" --output "$out" --exit-code "$code") && eval "$fix"
}
`, name)
	}
}
