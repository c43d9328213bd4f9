package thrivebox

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/AidanDelaney/thrivebox/pkg/internal/console"
)

// StepResult is the outcome of one transcription step.
type StepResult struct {
	Step    string
	Path    string
	Changed []string
	// Skipped is set when the answers gave the step nothing to do.
	Skipped bool
	Err     error
}

// Report lists step outcomes in the order the steps ran.
type Report struct {
	Steps []StepResult
}

// Step returns the result for the named step.
func (r Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Failed lists steps that returned an error.
func (r Report) Failed() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Transcriber writes answers into a freshly acquired template.
type Transcriber struct {
	replacer *Replacer
	config   Config
	log      *console.Logger
}

// NewTranscriber works on the template rooted at fs.
func NewTranscriber(fs billy.Filesystem, config Config, log *console.Logger) *Transcriber {
	if log == nil {
		log = console.Discard()
	}
	return &Transcriber{replacer: NewReplacer(fs), config: config, log: log}
}

// Transcribe runs every step in order. A failing step is logged and recorded;
// it never stops the steps after it.
func (t *Transcriber) Transcribe(answers Answers) Report {
	report := Report{}
	record := func(r StepResult) {
		report.Steps = append(report.Steps, r)
	}

	t.log.Step("Writing Hostname to %s...", t.config.Vagrantfile)
	record(t.hostname(answers))

	t.log.Step("Updating %s...", t.config.ConfigFile)
	for _, p := range t.config.Placeholders.Scalars() {
		record(t.scalar(p, answers))
	}
	record(t.plugins(answers))
	record(t.theme(answers))

	return report
}

func (t *Transcriber) hostname(answers Answers) StepResult {
	result := StepResult{Step: "hostname", Path: t.config.Vagrantfile}
	host, err := render(t.config.HostnameFormat, answers)
	if err != nil {
		result.Err = err
		t.log.Error("%s", err)
		return result
	}
	result = t.substitute(result, t.config.Placeholders.Hostname, host)
	if len(result.Changed) > 0 {
		t.log.Info("Updated files: %s", strings.Join(result.Changed, ", "))
	}
	return result
}

func (t *Transcriber) scalar(p Placeholder, answers Answers) StepResult {
	result := StepResult{Step: p.Field, Path: t.config.ConfigFile}
	value, ok := answers.Value(p.Field)
	if !ok {
		result.Skipped = true
		t.log.Warn("%s", MissingFieldWarning{Field: p.Field})
		return result
	}
	return t.substitute(result,
		fmt.Sprintf("%s: %s", p.Field, p.Default),
		fmt.Sprintf("%s: %s", p.Field, value))
}

// plugins writes the selection below the inactive-plugins marker. An empty
// or uncollected selection leaves the template's list untouched.
func (t *Transcriber) plugins(answers Answers) StepResult {
	result := StepResult{Step: "plugins", Path: t.config.ConfigFile}
	if len(answers.Plugins) == 0 {
		result.Skipped = true
		return result
	}

	lines := make([]string, 0, len(answers.Plugins))
	for _, id := range answers.Plugins {
		lines = append(lines, "  - "+id)
	}
	marker := t.config.Placeholders.PluginsMarker
	result = t.substitute(result, marker, marker+" \n"+strings.Join(lines, "\n"))
	if len(result.Changed) > 0 {
		t.log.Info("Updated file: %s", strings.Join(result.Changed, ", "))
	}
	return result
}

// theme only acts when the operator declined; the template installs the
// theme by default.
func (t *Transcriber) theme(answers Answers) StepResult {
	result := StepResult{Step: "theme", Path: t.config.ConfigFile}
	if answers.InstallTheme == nil || *answers.InstallTheme {
		result.Skipped = true
		return result
	}
	return t.substitute(result, t.config.Placeholders.ThemeEnabled, t.config.Placeholders.ThemeDisabled)
}

func (t *Transcriber) substitute(result StepResult, search, replacement string) StepResult {
	changed, err := t.replacer.Substitute(result.Path, search, replacement)
	if err != nil {
		result.Err = err
		t.log.Error("%s", err)
		return result
	}
	result.Changed = changed
	if len(changed) == 0 {
		t.log.Warn("%s", &TemplateMismatch{Path: result.Path, Literal: search})
	}
	return result
}
