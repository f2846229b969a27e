package style

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Orange = lipgloss.Color("#ff8d1a")
	Mauve  = lipgloss.Color("#bc32fc")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")

	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	HiRed        = Red
	FaintColor   = Overlay
	BorderColor  = Surface
)
