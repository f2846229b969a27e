package cmd

import (
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/pkgjson"
	"github.com/layervue/create-layervue/scaffold"
	"github.com/layervue/create-layervue/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func repository() scaffold.Repository {
	return scaffold.Repository{
		Owner:    viper.GetString(key.TemplateOwner),
		Repo:     viper.GetString(key.TemplateRepo),
		Branch:   viper.GetString(key.TemplateBranch),
		Manifest: viper.GetString(key.TemplateManifest),
	}
}

// presetSource returns the configured source, if any.
func presetSource() (mo.Option[git.Source], error) {
	name := viper.GetString(key.TemplateSource)
	if name == "" {
		return mo.None[git.Source](), nil
	}

	source, err := git.ParseSource(name)
	if err != nil {
		return mo.None[git.Source](), err
	}
	return mo.Some(source), nil
}

// scaffoldOptions merges config defaults and flags. Project flags
// override the prompt defaults; --name skips the project prompts entirely.
func scaffoldOptions(cmd *cobra.Command) (*scaffold.Options, error) {
	source, err := presetSource()
	if err != nil {
		return nil, err
	}

	defaults := pkgjson.Meta{
		Name:        viper.GetString(key.ProjectName),
		Description: viper.GetString(key.ProjectDescription),
		Author:      viper.GetString(key.ProjectAuthor),
		Version:     viper.GetString(key.ProjectVersion),
	}

	flags := cmd.Flags()
	override := func(flag string, field *string) {
		if flags.Changed(flag) {
			*field = lo.Must(flags.GetString(flag))
		}
	}
	override("name", &defaults.Name)
	override("description", &defaults.Description)
	override("author", &defaults.Author)
	override("project-version", &defaults.Version)

	opts := &scaffold.Options{
		Repository: repository(),
		Scratch:    where.Scratch(),
		Exclude:    viper.GetStringSlice(key.TemplateExclude),
		Defaults:   defaults,
		Source:     source,
		Template:   mo.None[string](),
		Project:    mo.None[pkgjson.Meta](),
	}

	if flags.Changed("template") {
		opts.Template = mo.Some(lo.Must(flags.GetString("template")))
	}

	if flags.Changed("name") {
		opts.Project = mo.Some(defaults)
	}

	return opts, nil
}
