package thrivebox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

const (
	templateVagrantfile = `Vagrant.configure("2") do |config|
  config.vm.box = "ubuntu/trusty64"
  config.vm.hostname = "thrive-box.dev"
  config.hostsupdater.aliases = ["www.thrive-box.dev"]
  config.vm.synced_folder ".", "/var/www"
end
`

	templateConfig = `# Thrive Box configuration
user: admin
password: password
email: info@thriveweb.com.au
url: thrive-box.dev
title: Thrive Box
rename: "thrive-box"
theme: true
plugins_inactive:
  - hello-dolly
plugins_active:
  - akismet
`
)

// writeTemplate lays out a fresh template in bfs.
func writeTemplate(t *testing.T, bfs billy.Filesystem) {
	t.Helper()
	require.NoError(t, util.WriteFile(bfs, "Vagrantfile", []byte(templateVagrantfile), 0644))
	require.NoError(t, util.WriteFile(bfs, "config.yml", []byte(templateConfig), 0644))
}

// writeTemplateDir lays out a fresh template on disk and returns its path.
func writeTemplateDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "thrive-box")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Vagrantfile"), []byte(templateVagrantfile), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(templateConfig), 0644))
	return dir
}

func contents(t *testing.T, bfs billy.Filesystem, name string) string {
	t.Helper()
	data, err := readFile(bfs, name)
	require.NoError(t, err)
	return string(data)
}

func boolPtr(b bool) *bool {
	return &b
}

func fullAnswers() Answers {
	return Answers{
		DirectoryName: "mysite",
		WPUser:        "editor",
		WPPassword:    "s3cret",
		WPEmail:       "dev@example.com",
		WPTitle:       "My Site",
		Plugins:       []string{"woocommerce", "svg-support"},
		InstallTheme:  boolPtr(true),
		Confirmed:     true,
	}
}
