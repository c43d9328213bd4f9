// Thrivebox creates local WordPress development sites. It asks the operator
// for site details, acquires the thrive-box template, writes the answers into
// the template's Vagrantfile and config.yml, then boots and provisions the
// Vagrant machine.
package thrivebox

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/AidanDelaney/thrivebox/pkg/internal/console"
)

// Thrivebox holds the collaborators for one run.
type Thrivebox struct {
	Config       Config
	Overrides    map[string]string
	OutputFolder string
	// Basic skips the plugin and theme questions and steps.
	Basic bool
	// SkipUp stops after transcription.
	SkipUp bool

	Prompter Prompter
	Acquirer Acquirer
	Runner   Runner
	Log      *console.Logger
}

type Option func(*Thrivebox)

func WithConfig(config Config) Option {
	return func(t *Thrivebox) {
		t.Config = config
	}
}

func WithOutputFolder(folder string) Option {
	return func(t *Thrivebox) {
		t.OutputFolder = folder
	}
}

func WithOverrides(overrides map[string]string) Option {
	return func(t *Thrivebox) {
		t.Overrides = overrides
	}
}

func WithBasic(basic bool) Option {
	return func(t *Thrivebox) {
		t.Basic = basic
	}
}

func WithSkipUp(skip bool) Option {
	return func(t *Thrivebox) {
		t.SkipUp = skip
	}
}

func WithPrompter(p Prompter) Option {
	return func(t *Thrivebox) {
		t.Prompter = p
	}
}

func WithAcquirer(a Acquirer) Option {
	return func(t *Thrivebox) {
		t.Acquirer = a
	}
}

func WithRunner(r Runner) Option {
	return func(t *Thrivebox) {
		t.Runner = r
	}
}

func WithLogger(l *console.Logger) Option {
	return func(t *Thrivebox) {
		t.Log = l
	}
}

// Create a new Thrivebox with the given options.
func NewThrivebox(opts ...Option) Thrivebox {
	t := Thrivebox{
		Config:       DefaultConfig(),
		Overrides:    map[string]string{},
		OutputFolder: ".",
		Prompter:     SurveyPrompter{},
		Runner:       ProcessRunner{},
		Log:          console.Default(),
	}

	for _, opt := range opts {
		opt(&t)
	}

	if t.Acquirer == nil {
		t.Acquirer = GitAcquirer{Progress: t.Log.Output()}
	}
	return t
}

// Run asks the questions and, once the operator confirms, creates the site.
// A declined confirmation returns nil without touching the filesystem. When
// provisioning runs, the returned error carries the last external process's
// failure, if any.
func (t Thrivebox) Run(ctx context.Context) error {
	answers, err := t.Prompter.Ask(Questionnaire{
		Overrides: t.Overrides,
		Catalog:   t.Config.Plugins,
		ThemeName: t.Config.ThemeName,
		Basic:     t.Basic,
	})
	if err != nil {
		return err
	}
	if !answers.Confirmed {
		return nil
	}

	siteDir, err := t.Create(ctx, answers)
	if err != nil {
		return err
	}
	if t.SkipUp {
		t.Log.Step("Done")
		return nil
	}
	return t.BringUp(ctx, siteDir, answers.DirectoryName)
}

// Create acquires the template and transcribes answers into it, returning
// the site directory. Transcription problems are logged, not returned.
func (t Thrivebox) Create(ctx context.Context, answers Answers) (string, error) {
	siteDir := filepath.Join(t.OutputFolder, answers.DirectoryName)

	t.Log.Step("🍉 Cloning %s...", templateName(t.Config.TemplateURL))
	if err := t.Acquirer.Acquire(ctx, t.Config.TemplateURL, siteDir); err != nil {
		return "", err
	}
	if err := checkSiteDir(siteDir); err != nil {
		return "", err
	}

	NewTranscriber(osfs.New(siteDir), t.Config, t.Log).Transcribe(answers)
	return siteDir, nil
}

// BringUp boots the machine and runs the setup script inside it. A failed
// boot is logged and setup still runs.
func (t Thrivebox) BringUp(ctx context.Context, siteDir string, name string) error {
	t.Log.Step("Booting %s box...", name)
	if _, err := t.Runner.Run(ctx, siteDir, t.Config.Vagrant, "up"); err != nil {
		t.Log.Error("%s", err)
	}

	t.Log.Step("Setting Up Wordpress...")
	_, err := t.Runner.Run(ctx, siteDir, t.Config.Vagrant, "ssh", "-c", t.Config.SetupCommand)
	if err != nil {
		t.Log.Error("%s", err)
	}

	t.Log.Step("Done")
	return err
}

func templateName(url string) string {
	return strings.TrimSuffix(path.Base(filepath.ToSlash(url)), ".git")
}
