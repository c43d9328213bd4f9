// Package console prints the colored progress lines operators see while a
// site is being created.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes step banners and status lines. Errors go to the error writer,
// everything else to the output writer.
type Logger struct {
	out io.Writer
	err io.Writer

	step  *color.Color
	info  *color.Color
	warn  *color.Color
	alert *color.Color
}

// New returns a Logger writing to out and errOut. A nil writer discards.
func New(out, errOut io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Logger{
		out:   out,
		err:   errOut,
		step:  color.New(color.BgCyan, color.FgBlack),
		info:  color.New(color.FgCyan),
		warn:  color.New(color.FgYellow),
		alert: color.New(color.BgRed, color.FgWhite),
	}
}

// Default logs to the process stdout and stderr.
func Default() *Logger {
	return New(os.Stdout, os.Stderr)
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

// Output is the writer progress lines go to. Long-running collaborators can
// stream their own progress through it.
func (l *Logger) Output() io.Writer {
	return l.out
}

// Step announces the start of a pipeline stage.
func (l *Logger) Step(format string, args ...interface{}) {
	l.line(l.out, l.step, format, args...)
}

// Info reports progress within a stage.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, l.info, format, args...)
}

// Warn reports a skipped or ineffective step. The run continues.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, l.warn, format, args...)
}

// Error reports a failed step. Callers decide whether the run continues.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.err, l.alert, "Error occurred: "+format, args...)
}

func (l *Logger) line(w io.Writer, c *color.Color, format string, args ...interface{}) {
	_, _ = c.Fprint(w, fmt.Sprintf(format, args...))
	_, _ = fmt.Fprintln(w)
}
