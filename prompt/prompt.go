// Package prompt asks the scaffolding questions on the terminal with survey.
package prompt

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/manifest"
	"github.com/layervue/create-layervue/pkgjson"
	"github.com/layervue/create-layervue/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted")

// Survey implements the scaffold questions with interactive terminal prompts.
type Survey struct {
	opts []survey.AskOpt
}

// New returns a Survey writing to the process terminal.
func New(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

func fuzzyFilter(filter, value string, _ int) bool {
	return fuzzy.MatchFold(filter, value)
}

func (s *Survey) ask(p survey.Prompt, response any, opts ...survey.AskOpt) error {
	err := survey.AskOne(p, response, append(opts, s.opts...)...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Source asks which mirror the templates are pulled from.
func (s *Survey) Source(sources []git.Source) (git.Source, error) {
	var index int
	err := s.ask(&survey.Select{
		Message: "select template source",
		Options: lo.Map(sources, func(src git.Source, _ int) string { return src.Title() }),
		Default: 0,
	}, &index)
	if err != nil {
		return "", err
	}
	return sources[index], nil
}

// Template asks which catalogue entry to scaffold.
func (s *Survey) Template(templates []manifest.Template) (manifest.Template, error) {
	var index int
	err := s.ask(&survey.Select{
		Message: "select a template",
		Options: lo.Map(templates, func(t manifest.Template, _ int) string { return t.Name }),
		Default: 0,
		Description: func(_ string, i int) string {
			return templates[i].Description
		},
	}, &index, survey.WithFilter(fuzzyFilter))
	if err != nil {
		return manifest.Template{}, err
	}
	return templates[index], nil
}

// Project asks for the package metadata, offering defaults as initial answers.
func (s *Survey) Project(defaults pkgjson.Meta) (pkgjson.Meta, error) {
	answers := struct {
		Name        string `survey:"name"`
		Description string `survey:"description"`
		Author      string `survey:"author"`
		Version     string `survey:"version"`
	}{}

	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "project name", Default: defaults.Name},
			Validate: survey.ComposeValidators(survey.Required, validateName),
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "description", Default: defaults.Description},
		},
		{
			Name:   "author",
			Prompt: &survey.Input{Message: "author", Default: defaults.Author},
		},
		{
			Name:     "version",
			Prompt:   &survey.Input{Message: "version", Default: defaults.Version},
			Validate: validateVersion,
		},
	}

	err := survey.Ask(questions, &answers, s.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return pkgjson.Meta{}, ErrAborted
	}
	if err != nil {
		return pkgjson.Meta{}, err
	}

	return pkgjson.Meta{
		Name:        answers.Name,
		Description: answers.Description,
		Author:      answers.Author,
		Version:     answers.Version,
	}, nil
}

// validateName rejects names that cannot be used verbatim as the project folder.
func validateName(ans any) error {
	name, ok := ans.(string)
	if !ok {
		return fmt.Errorf("name must be text, got %T", ans)
	}
	if clean := util.SanitizeFilename(name); clean != name {
		return fmt.Errorf("%q cannot be used as a folder name, try %q", name, clean)
	}
	return nil
}

func validateVersion(ans any) error {
	v, ok := ans.(string)
	if !ok {
		return fmt.Errorf("version must be text, got %T", ans)
	}
	return pkgjson.ValidateVersion(v)
}
