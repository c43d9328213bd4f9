package thrivebox

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

// Replacer rewrites files inside one filesystem, usually the site directory.
type Replacer struct {
	fs billy.Filesystem
}

func NewReplacer(fs billy.Filesystem) *Replacer {
	return &Replacer{fs: fs}
}

// Substitute replaces every occurrence of search in the file at path with
// replacement. It returns the paths it changed: none when search does not
// occur, in which case the file is not written.
func (r *Replacer) Substitute(path, search, replacement string) ([]string, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Op: "read", Err: errors.New("is a directory")}
	}

	data, err := readFile(r.fs, path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	if !isText(data) {
		return nil, &FileAccessError{Path: path, Op: "read", Err: ErrNotText}
	}

	content := string(data)
	if search == "" || !strings.Contains(content, search) {
		return []string{}, nil
	}

	updated := strings.ReplaceAll(content, search, replacement)
	if err := util.WriteFile(r.fs, path, []byte(updated), info.Mode()); err != nil {
		return nil, &FileAccessError{Path: path, Op: "write", Err: err}
	}
	return []string{path}, nil
}

func readFile(bfs billy.Filesystem, name string) ([]byte, error) {
	file, err := bfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// isText reports whether data looks like text. Empty files count as text.
func isText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") || strings.HasPrefix(m.String(), "text/") {
			return true
		}
	}
	return false
}

// render executes a replacement template against the answers. Templates have
// the sprig function set, e.g. "{{ .DirectoryName | lower }}.dev".
func render(format string, answers Answers) (string, error) {
	var output bytes.Buffer
	tpl, err := template.New("replacement").Funcs(sprig.TxtFuncMap()).Parse(format)
	if err != nil {
		return "", errors.Wrapf(err, "cannot parse template %q", format)
	}
	if err := tpl.Execute(&output, answers); err != nil {
		return "", errors.Wrapf(err, "cannot render template %q", format)
	}
	return output.String(), nil
}
