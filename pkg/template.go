package thrivebox

import (
	"context"
	"io"
	"os"

	git "github.com/go-git/go-git/v5"
	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"
)

// Acquirer produces a site directory from the template.
type Acquirer interface {
	Acquire(ctx context.Context, url string, targetDir string) error
}

// GitAcquirer clones remote templates and copies local ones.
type GitAcquirer struct {
	// Progress receives clone progress. Nil means silent.
	Progress io.Writer
}

// Acquire places the template at targetDir, which must not exist yet.
func (g GitAcquirer) Acquire(ctx context.Context, url string, targetDir string) error {
	// don't clobber any existing files
	if _, err := os.Stat(targetDir); err == nil {
		return errors.Errorf("directory %s already exists", targetDir)
	}

	// if the URL is a local folder, then do not git clone it
	if info, err := os.Stat(url); err == nil && info.IsDir() {
		if err := cp.Copy(url, targetDir); err != nil {
			return errors.Wrapf(err, "cannot copy template %s", url)
		}
		return nil
	}

	_, err := git.PlainCloneContext(ctx, targetDir, false, &git.CloneOptions{
		URL:      url,
		Progress: g.Progress,
	})
	if err != nil {
		return errors.Wrapf(err, "cannot clone template %s", url)
	}
	return nil
}

// checkSiteDir verifies that acquisition produced the site directory. Missing
// files inside it are left to transcription, which logs them and carries on.
func checkSiteDir(dir string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return &TemplateMismatch{Path: dir}
	}
	return nil
}
