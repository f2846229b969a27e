// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "layervue"

	// Version is the current application semantic version string.
	Version = "0.2.0"

	// Tagline is printed under the banner and used as the default project description.
	Tagline = "Embrace Vue 3.0, Free Resize Move, and Different from Traditional Modal"

	// Releases is the GitHub API endpoint queried by the update check.
	Releases = "https://api.github.com/repos/LayerVue/create-layervue/releases/latest"
)

// Build metadata, injected with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
