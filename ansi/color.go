package ansi

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex formats the color as a lowercase 6-digit hex string with a leading '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

var digitRuns = regexp.MustCompile(`\d+`)

// ParseColor detects the notation of s by prefix and converts it into a Color.
//
// Supported notations are hex ("#abc", "#aabbcc", "#aabbccdd"), rgb ("rgb(12, 34, 56)")
// and hsl ("hsl(210, 50%, 40%)"). Anything else fails with UnsupportedFormat.
func ParseColor(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	default:
		return Color{}, unsupported(s)
	}
}

// MustParseColor is like ParseColor but panics on error. Meant for literal constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	switch {
	case len(hex) == 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case len(hex) >= 6:
		hex = hex[:6]
	default:
		return Color{}, invalid(s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, invalid(s)
		}
		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// triple extracts the first three decimal runs of s.
func triple(s string) (a, b, c int, err error) {
	runs := digitRuns.FindAllString(s, -1)
	if len(runs) < 3 {
		return 0, 0, 0, invalid(s)
	}

	var values [3]int
	for i := range values {
		values[i], err = strconv.Atoi(runs[i])
		if err != nil {
			return 0, 0, 0, invalid(s)
		}
	}

	return values[0], values[1], values[2], nil
}

func parseRGB(s string) (Color, error) {
	r, g, b, err := triple(s)
	if err != nil {
		return Color{}, err
	}

	return Color{R: saturate(r), G: saturate(g), B: saturate(b)}, nil
}

func parseHSL(s string) (Color, error) {
	h, sat, light, err := triple(s)
	if err != nil {
		return Color{}, err
	}

	return hsl(float64(h), float64(sat)/100, float64(light)/100), nil
}

// hsl converts hue in degrees and saturation and lightness in [0, 1] into a Color.
func hsl(h, s, l float64) Color {
	if s == 0 {
		v := channel(l)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	turn := h / 360
	return Color{
		R: channel(hueToChannel(p, q, turn+1.0/3)),
		G: channel(hueToChannel(p, q, turn)),
		B: channel(hueToChannel(p, q, turn-1.0/3)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	// t == 1 is left alone: it lands on the last piece either way.
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// channel scales a unit value to 0..255, rounding half away from zero.
func channel(v float64) uint8 {
	return clamp(math.Round(v * 255))
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func saturate(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
