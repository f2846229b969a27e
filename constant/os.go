package constant

// runtime.GOOS values that get platform-specific install hints.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
