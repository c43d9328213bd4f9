package thrivebox

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotText is wrapped by a FileAccessError when a substitution target does
// not hold text.
var ErrNotText = errors.New("not a text file")

// ValidationError is an answer that fails its length predicate. Prompts
// re-ask on it; overrides surface it because they cannot be re-asked.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be longer than one character, got %q", e.Field, e.Value)
}

// FileAccessError is a substitution target that could not be read or written.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MissingFieldWarning names a scalar field with no answer value. It is logged,
// never returned as a failure.
type MissingFieldWarning struct {
	Field string
}

func (w MissingFieldWarning) String() string {
	return fmt.Sprintf("No argument passed for %s", w.Field)
}

// TemplateMismatch is a template that does not contain what the placeholder
// table says it should.
type TemplateMismatch struct {
	Path    string
	Literal string
}

func (e *TemplateMismatch) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("template did not produce %s", e.Path)
	}
	return fmt.Sprintf("template mismatch: %q not found in %s", e.Literal, e.Path)
}

// ExternalProcessFailure is a child process that could not start or exited
// non-zero. ExitCode is -1 when the process never ran.
type ExternalProcessFailure struct {
	Command  []string
	ExitCode int
	Err      error
}

func (e *ExternalProcessFailure) Error() string {
	cmd := strings.Join(e.Command, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s", cmd, e.Err)
	}
	return fmt.Sprintf("%s exited with status %d", cmd, e.ExitCode)
}

func (e *ExternalProcessFailure) Unwrap() error {
	return e.Err
}
