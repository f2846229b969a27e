// Package color holds the lipgloss colors used by the command output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/layervue/create-layervue/ansi"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Parse accepts any notation understood by ansi.ParseColor and returns it as a hex lipgloss.Color.
func Parse(value string) (lipgloss.Color, error) {
	c, err := ansi.ParseColor(value)
	if err != nil {
		return "", err
	}
	return New(c.Hex()), nil
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors, matching the default banner gradient.
var (
	Orange = New("#ff8d1a")
	Violet = New("#bc32fc")
	Gray   = New("#808080")
)
