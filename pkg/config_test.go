package thrivebox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	spec.Run(t, "Config", testConfig, spec.Report(report.Terminal{}))
}

func testConfig(t *testing.T, when spec.G, it spec.S) {
	when("DefaultConfig", func() {
		it("describes the thrive-box template", func() {
			c := DefaultConfig()
			assert.Equal(t, "https://github.com/Jinksi/thrive-box.git", c.TemplateURL)
			assert.Equal(t, "Vagrantfile", c.Vagrantfile)
			assert.Equal(t, "config.yml", c.ConfigFile)
			assert.Equal(t, "cd /var/www && bash setup.sh", c.SetupCommand)
			assert.Equal(t, "thrive-box.dev", c.Placeholders.Hostname)
		})

		it("orders the scalar placeholders", func() {
			assert.Equal(t, []Placeholder{
				{Field: "user", Default: "admin"},
				{Field: "password", Default: "password"},
				{Field: "email", Default: "info@thriveweb.com.au"},
				{Field: "url", Default: "thrive-box.dev"},
				{Field: "title", Default: "Thrive Box"},
				{Field: "rename", Default: `"thrive-box"`},
			}, DefaultConfig().Placeholders.Scalars())
		})

		it("carries the plugin catalog in order", func() {
			ids := DefaultConfig().PluginIDs()
			require.Len(t, ids, 18)
			assert.Equal(t, "woocommerce", ids[0])
			assert.Equal(t, "https://github.com/wp-premium/advanced-custom-fields-pro/archive/master.zip", ids[1])
			assert.Equal(t, "regenerate-thumbnails", ids[17])
		})
	})

	when("LoadConfig", func() {
		var dir string

		it.Before(func() {
			dir = t.TempDir()
		})

		it("returns the defaults when the file is missing", func() {
			c, err := LoadConfig(filepath.Join(dir, "absent.toml"))
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig(), c)
		})

		it("overlays the keys present in the file", func() {
			path := filepath.Join(dir, "thrivebox.toml")
			require.NoError(t, os.WriteFile(path, []byte(`
template_url = "git@example.com:me/box.git"

[placeholders]
email = "ops@example.com"
`), 0644))

			c, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, "git@example.com:me/box.git", c.TemplateURL)
			assert.Equal(t, "ops@example.com", c.Placeholders.Email)
			assert.Equal(t, "admin", c.Placeholders.User)
			assert.Equal(t, "config.yml", c.ConfigFile)
		})

		it("replaces the plugin catalog rather than merging into it", func() {
			path := filepath.Join(dir, "thrivebox.toml")
			require.NoError(t, os.WriteFile(path, []byte(`
[[plugins]]
name = "Akismet"
id = "akismet"
`), 0644))

			c, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, []Plugin{{Name: "Akismet", ID: "akismet"}}, c.Plugins)
		})

		it("keeps the default catalog when the file has no plugins", func() {
			path := filepath.Join(dir, "thrivebox.toml")
			require.NoError(t, os.WriteFile(path, []byte("theme_name = \"Other\"\n"), 0644))

			c, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig().Plugins, c.Plugins)
		})

		it("rejects plugins without an id", func() {
			path := filepath.Join(dir, "thrivebox.toml")
			require.NoError(t, os.WriteFile(path, []byte(`
[[plugins]]
name = "Akismet"
`), 0644))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "does not match required format")
			assert.Contains(t, err.Error(), `"Akismet"`)
		})

		it("rejects malformed files", func() {
			path := filepath.Join(dir, "broken.toml")
			require.NoError(t, os.WriteFile(path, []byte("template_url = \n"), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	})
}
