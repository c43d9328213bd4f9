package thrivebox

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pkg/errors"
)

// Questionnaire describes which questions a run asks.
type Questionnaire struct {
	// Overrides answer text questions up front; those questions are skipped.
	Overrides map[string]string
	Catalog   []Plugin
	ThemeName string
	// Basic skips the plugin and theme questions.
	Basic bool
}

// Prompter collects Answers from the operator.
type Prompter interface {
	Ask(q Questionnaire) (Answers, error)
}

// SurveyPrompter asks questions on a terminal. The zero value uses the
// process stdio.
type SurveyPrompter struct {
	Stdio terminal.Stdio
}

type surveyResponse struct {
	DirectoryName string   `survey:"dirname"`
	WPUser        string   `survey:"wpuser"`
	WPPassword    string   `survey:"wppassword"`
	WPEmail       string   `survey:"wpemail"`
	WPTitle       string   `survey:"wptitle"`
	Plugins       []string `survey:"plugins"`
	Theme         bool     `survey:"theme"`
	Happy         bool     `survey:"happy"`
}

func lengthValidator(field string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return validateLength(field, s)
	}
}

func textQuestions() []*survey.Question {
	return []*survey.Question{
		{
			Name:     KeyDirectoryName,
			Prompt:   &survey.Input{Message: "Site Directory Name"},
			Validate: lengthValidator(KeyDirectoryName),
		},
		{
			Name:     KeyWPUser,
			Prompt:   &survey.Input{Message: "Wordpress Username"},
			Validate: lengthValidator(KeyWPUser),
		},
		{
			Name:     KeyWPPassword,
			Prompt:   &survey.Password{Message: "Wordpress Password"},
			Validate: lengthValidator(KeyWPPassword),
		},
		{
			Name:     KeyWPEmail,
			Prompt:   &survey.Input{Message: "Wordpress Email"},
			Validate: lengthValidator(KeyWPEmail),
		},
		{
			Name:     KeyWPTitle,
			Prompt:   &survey.Input{Message: "Site Title"},
			Validate: lengthValidator(KeyWPTitle),
		},
	}
}

// questions builds the question sequence, leaving out overridden answers.
func questions(q Questionnaire) []*survey.Question {
	var qs []*survey.Question
	for _, question := range textQuestions() {
		if _, overridden := q.Overrides[question.Name]; overridden {
			continue
		}
		qs = append(qs, question)
	}

	if !q.Basic {
		names := make([]string, 0, len(q.Catalog))
		for _, p := range q.Catalog {
			names = append(names, p.Name)
		}
		if len(names) > 0 {
			qs = append(qs, &survey.Question{
				Name: "plugins",
				Prompt: &survey.MultiSelect{
					Message: "Plugins",
					Options: names,
					Default: names,
				},
			})
		}
		qs = append(qs, &survey.Question{
			Name:   "theme",
			Prompt: &survey.Confirm{Message: fmt.Sprintf("Install %s?", q.ThemeName)},
		})
	}

	return append(qs, &survey.Question{
		Name:   "happy",
		Prompt: &survey.Confirm{Message: "Happy?"},
	})
}

func (p SurveyPrompter) options() []survey.AskOpt {
	if p.Stdio.In == nil || p.Stdio.Out == nil {
		return nil
	}
	return []survey.AskOpt{survey.WithStdio(p.Stdio.In, p.Stdio.Out, p.Stdio.Err)}
}

// Ask runs the question sequence.
func (p SurveyPrompter) Ask(q Questionnaire) (Answers, error) {
	var answers Answers
	if err := answers.ApplyOverrides(q.Overrides); err != nil {
		return answers, err
	}

	resp := surveyResponse{}
	if err := survey.Ask(questions(q), &resp, p.options()...); err != nil {
		return answers, errors.Wrap(err, "cannot collect answers")
	}

	for key, v := range map[string]string{
		KeyDirectoryName: resp.DirectoryName,
		KeyWPUser:        resp.WPUser,
		KeyWPPassword:    resp.WPPassword,
		KeyWPEmail:       resp.WPEmail,
		KeyWPTitle:       resp.WPTitle,
	} {
		if _, overridden := q.Overrides[key]; !overridden {
			*answers.field(key) = v
		}
	}

	if !q.Basic {
		answers.Plugins = pluginIDs(q.Catalog, resp.Plugins)
		theme := resp.Theme
		answers.InstallTheme = &theme
	}
	answers.Confirmed = resp.Happy
	return answers, nil
}

// pluginIDs maps selected display names back to identifiers in catalog order.
func pluginIDs(catalog []Plugin, selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}
	ids := []string{}
	for _, p := range catalog {
		if chosen[p.Name] {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
