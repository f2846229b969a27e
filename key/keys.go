// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Template Repository - these keys locate the remote repository holding the project templates.
const (
	TemplateOwner    = "template.owner"
	TemplateRepo     = "template.repo"
	TemplateBranch   = "template.branch"
	TemplateManifest = "template.manifest"
	TemplateSource   = "template.source"
	TemplateExclude  = "template.exclude"
	TemplateScratch  = "template.scratch"
)

// Project Defaults - these keys seed the answers of the project prompts.
const (
	ProjectName        = "project.name"
	ProjectDescription = "project.description"
	ProjectAuthor      = "project.author"
	ProjectVersion     = "project.version"
)

// Banner - these keys control the gradient banner printed on startup.
const (
	BannerShow  = "banner.show"
	BannerStart = "banner.start"
	BannerEnd   = "banner.end"
)

// Git Invocation
const (
	GitBinary = "git.binary"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general command behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
