package thrivebox

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const DefaultConfigFile = "~/.thrivebox.toml"

//go:embed defaults.toml
var defaultsTOML string

// Config holds everything the tool knows about the template it scaffolds
// from. The embedded defaults describe the upstream thrive-box template; an
// operator file can override any key.
type Config struct {
	TemplateURL    string       `toml:"template_url"`
	Vagrantfile    string       `toml:"vagrantfile"`
	ConfigFile     string       `toml:"config_file"`
	Vagrant        string       `toml:"vagrant"`
	SetupCommand   string       `toml:"setup_command"`
	ThemeName      string       `toml:"theme_name"`
	HostnameFormat string       `toml:"hostname_format"`
	Placeholders   Placeholders `toml:"placeholders"`
	Plugins        []Plugin     `toml:"plugins"`
}

// Placeholders are the literal values present in a freshly cloned template.
type Placeholders struct {
	Hostname      string `toml:"hostname"`
	User          string `toml:"user"`
	Password      string `toml:"password"`
	Email         string `toml:"email"`
	URL           string `toml:"url"`
	Title         string `toml:"title"`
	Rename        string `toml:"rename"`
	PluginsMarker string `toml:"plugins_marker"`
	ThemeEnabled  string `toml:"theme_enabled"`
	ThemeDisabled string `toml:"theme_disabled"`
}

// Placeholder is one scalar line of config.yml.
type Placeholder struct {
	Field   string
	Default string
}

// Scalars returns the scalar placeholders in transcription order.
func (p Placeholders) Scalars() []Placeholder {
	return []Placeholder{
		{Field: "user", Default: p.User},
		{Field: "password", Default: p.Password},
		{Field: "email", Default: p.Email},
		{Field: "url", Default: p.URL},
		{Field: "title", Default: p.Title},
		{Field: "rename", Default: p.Rename},
	}
}

// Plugin is a catalog entry. ID is either a registry slug or an archive URL.
type Plugin struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
}

// DefaultConfig returns the embedded configuration.
func DefaultConfig() Config {
	var c Config
	if _, err := toml.Decode(defaultsTOML, &c); err != nil {
		panic(errors.Wrap(err, "embedded defaults.toml"))
	}
	return c
}

// LoadConfig overlays the TOML file at path onto the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return c, errors.Wrapf(err, "cannot expand %s", path)
	}
	if _, err := os.Stat(expanded); os.IsNotExist(err) {
		return c, nil
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return c, errors.Wrapf(err, "cannot read %s", expanded)
	}

	// a [[plugins]] table in the file replaces the catalog rather than
	// merging into the default entries
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return c, errors.Wrapf(err, "%s file does not match required format", expanded)
	}
	if md.IsDefined("plugins") {
		c.Plugins = nil
	}

	if _, err := toml.Decode(string(data), &c); err != nil {
		return c, errors.Wrapf(err, "%s file does not match required format", expanded)
	}
	for _, p := range c.Plugins {
		if p.ID == "" {
			return c, errors.Errorf("%s file does not match required format: plugin %q has no id", expanded, p.Name)
		}
	}
	return c, nil
}

// PluginIDs lists the catalog identifiers in catalog order.
func (c Config) PluginIDs() []string {
	ids := make([]string, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		ids = append(ids, p.ID)
	}
	return ids
}
