package xrandr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/beamer-cli/beamer/pkg/logging"
)

// ErrNotFound reports that the display tool binary is not installed or
// not on PATH. Check with errors.Is.
var ErrNotFound = errors.New("display tool not found")

// ExitError reports that the display tool ran but exited non-zero. Its
// combined output has already been captured; Code is relayed as the
// process exit status.
type ExitError struct {
	Cmd    string
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
}

// Runner abstracts the xrandr invocation so parsing and command
// building stay testable against canned output.
type Runner interface {
	// Run executes the tool with the given arguments and returns its
	// combined stdout/stderr.
	Run(ctx context.Context, args ...string) (string, error)
	// Name returns the binary name, for echoing built invocations.
	Name() string
}

// ExecRunner runs a real binary through os/exec.
type ExecRunner struct {
	bin string
	log logging.Logger
}

// NewExecRunner returns a Runner invoking the given binary.
func NewExecRunner(bin string, log logging.Logger) *ExecRunner {
	return &ExecRunner{bin: bin, log: log}
}

func (r *ExecRunner) Name() string {
	return r.bin
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{r.bin}, args...), " ")
	r.log.Debug("running command", "cmd", cmdline)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %q is not installed or not on PATH", ErrNotFound, r.bin)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), &ExitError{
				Cmd:    cmdline,
				Code:   exitErr.ExitCode(),
				Output: string(out),
			}
		}
		return string(out), fmt.Errorf("running %s: %w", cmdline, err)
	}
	return string(out), nil
}

// Query runs the tool in read-only query mode and parses the listing.
func Query(ctx context.Context, r Runner) ([]Output, error) {
	out, err := r.Run(ctx, "--query")
	if err != nil {
		return nil, err
	}
	return Parse(out)
}
