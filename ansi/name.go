package ansi

import (
	"fmt"
	"strings"
)

// Name identifies an entry of the fixed SGR palette.
type Name string

// Text attributes.
const (
	NameReset      Name = "reset"
	NameBright     Name = "bright"
	NameDim        Name = "dim"
	NameUnderscore Name = "underscore"
	NameBlink      Name = "blink"
	NameReverse    Name = "reverse"
	NameHidden     Name = "hidden"
)

// Foreground colors.
const (
	NameBlack   Name = "black"
	NameRed     Name = "red"
	NameGreen   Name = "green"
	NameYellow  Name = "yellow"
	NameBlue    Name = "blue"
	NameMagenta Name = "magenta"
	NameCyan    Name = "cyan"
	NameWhite   Name = "white"
)

// Background colors.
const (
	NameBgBlack   Name = "bgBlack"
	NameBgRed     Name = "bgRed"
	NameBgGreen   Name = "bgGreen"
	NameBgYellow  Name = "bgYellow"
	NameBgBlue    Name = "bgBlue"
	NameBgMagenta Name = "bgMagenta"
	NameBgCyan    Name = "bgCyan"
	NameBgWhite   Name = "bgWhite"
)

// names keeps the palette in display order.
var names = []Name{
	NameReset, NameBright, NameDim, NameUnderscore, NameBlink, NameReverse, NameHidden,
	NameBlack, NameRed, NameGreen, NameYellow, NameBlue, NameMagenta, NameCyan, NameWhite,
	NameBgBlack, NameBgRed, NameBgGreen, NameBgYellow, NameBgBlue, NameBgMagenta, NameBgCyan, NameBgWhite,
}

var codes = map[Name]string{
	NameReset:      reset,
	NameBright:     esc + "1m",
	NameDim:        esc + "2m",
	NameUnderscore: esc + "4m",
	NameBlink:      esc + "5m",
	NameReverse:    esc + "7m",
	NameHidden:     esc + "8m",

	NameBlack:   esc + "30m",
	NameRed:     esc + "31m",
	NameGreen:   esc + "32m",
	NameYellow:  esc + "33m",
	NameBlue:    esc + "34m",
	NameMagenta: esc + "35m",
	NameCyan:    esc + "36m",
	NameWhite:   esc + "37m",

	NameBgBlack:   esc + "40m",
	NameBgRed:     esc + "41m",
	NameBgGreen:   esc + "42m",
	NameBgYellow:  esc + "43m",
	NameBgBlue:    esc + "44m",
	NameBgMagenta: esc + "45m",
	NameBgCyan:    esc + "46m",
	NameBgWhite:   esc + "47m",
}

// Names returns every palette entry in display order.
func Names() []Name {
	return append([]Name(nil), names...)
}

// Code returns the SGR sequence of n, or the reset sequence for names outside the palette.
func (n Name) Code() string {
	if code, ok := codes[n]; ok {
		return code
	}
	return reset
}

// ParseName resolves a palette entry case-insensitively.
func ParseName(s string) (Name, error) {
	for _, n := range names {
		if strings.EqualFold(string(n), s) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown color name %q", s)
}

// Stylize wraps text in the SGR sequence of name followed by a reset.
func Stylize(text string, name Name) string {
	return name.Code() + text + reset
}

// Red styles text with the red foreground, used for failure notices.
func Red(text string) string { return Stylize(text, NameRed) }

// Green styles text with the green foreground, used for the follow-up commands.
func Green(text string) string { return Stylize(text, NameGreen) }

// Cyan styles text with the cyan foreground, used for the completion headline.
func Cyan(text string) string { return Stylize(text, NameCyan) }
