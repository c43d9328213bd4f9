package thrivebox

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// Result is what a finished child process reports.
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Runner runs external commands.
type Runner interface {
	// Run executes name with args in dir. A non-zero exit or a failure to
	// start is returned as *ExternalProcessFailure alongside the Result.
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// ProcessRunner runs commands with the operator's terminal attached. Nil
// streams fall back to the process stdio.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ProcessRunner) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	command := append([]string{name}, args...)
	start := time.Now()
	err := cmd.Run()
	result := Result{Duration: time.Since(start)}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, &ExternalProcessFailure{Command: command, ExitCode: result.ExitCode}
	}
	result.ExitCode = -1
	return result, &ExternalProcessFailure{Command: command, ExitCode: -1, Err: err}
}
