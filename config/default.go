package config

import (
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/key"
)

// Default holds the registry of all configuration fields, keyed by field key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TemplateOwner, "LayerVue", "Owner of the template repository")
	register(key.TemplateRepo, "create-templates", "Name of the template repository")
	register(key.TemplateBranch, "main", "Branch the templates are pulled from")
	register(key.TemplateManifest, "config.json", "Path of the template manifest inside the repository")
	register(key.TemplateSource, "", "Template source to use without prompting.\nAvailable options are: gitee, github.\nWill prompt if not set")
	register(key.TemplateExclude, []string{"pnpm-lock.yaml"}, "File names that are not copied into the new project")
	register(key.TemplateScratch, ".LayerVue", "Scratch directory the repository is checked out into.\nIt is removed when scaffolding finishes")
	register(key.ProjectName, "LayerVue", "Default project name offered by the prompt")
	register(key.ProjectDescription, constant.Tagline, "Default project description offered by the prompt")
	register(key.ProjectAuthor, "LayerVue", "Default author offered by the prompt")
	register(key.ProjectVersion, "0.0.1", "Default project version offered by the prompt.\nMust be a valid semantic version")
	register(key.BannerShow, true, "Print the gradient banner on startup")
	register(key.BannerStart, "#ff8d1a", "Banner gradient start color.\nAccepts #hex, rgb(r, g, b) or hsl(h, s%, l%)")
	register(key.BannerEnd, "#bc32fc", "Banner gradient end color.\nAccepts #hex, rgb(r, g, b) or hsl(h, s%, l%)")
	register(key.GitBinary, "git", "Git executable used for the sparse checkout")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
