package thrivebox

import (
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Answer keys, shared by prompts and --override.
const (
	KeyDirectoryName = "dirname"
	KeyWPUser        = "wpuser"
	KeyWPPassword    = "wppassword"
	KeyWPEmail       = "wpemail"
	KeyWPTitle       = "wptitle"
)

// Answers are the operator's values for one run. Plugins and InstallTheme
// are nil when the question was not asked.
type Answers struct {
	DirectoryName string
	WPUser        string
	WPPassword    string
	WPEmail       string
	WPTitle       string
	Plugins       []string
	InstallTheme  *bool
	Confirmed     bool
}

// Value returns the answer for a config.yml scalar field. url and rename are
// both answered by the directory name.
func (a Answers) Value(field string) (string, bool) {
	var v string
	switch field {
	case "user":
		v = a.WPUser
	case "password":
		v = a.WPPassword
	case "email":
		v = a.WPEmail
	case "title":
		v = a.WPTitle
	case "url", "rename":
		v = a.DirectoryName
	}
	return v, v != ""
}

func (a *Answers) field(key string) *string {
	switch key {
	case KeyDirectoryName:
		return &a.DirectoryName
	case KeyWPUser:
		return &a.WPUser
	case KeyWPPassword:
		return &a.WPPassword
	case KeyWPEmail:
		return &a.WPEmail
	case KeyWPTitle:
		return &a.WPTitle
	}
	return nil
}

// ApplyOverrides fills text answers from key-value pairs. Every value must
// pass the same predicate the prompts use.
func (a *Answers) ApplyOverrides(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst := a.field(k)
		if dst == nil {
			return errors.Errorf("unknown override %q", k)
		}
		if err := validateLength(k, overrides[k]); err != nil {
			return err
		}
		*dst = overrides[k]
	}
	return nil
}

func validateLength(field, value string) error {
	if utf8.RuneCountInString(value) > 1 {
		return nil
	}
	return &ValidationError{Field: field, Value: value}
}
