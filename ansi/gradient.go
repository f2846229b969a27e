package ansi

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const esc = "\x1b["

// reset clears every SGR attribute.
const reset = esc + "0m"

// Foreground returns the 24-bit SGR sequence selecting c as the foreground color.
func Foreground(c Color) string {
	var b strings.Builder
	writeForeground(&b, c)
	return b.String()
}

func writeForeground(b *strings.Builder, c Color) {
	b.WriteString(esc + "38;2;")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
}

// lerp interpolates every channel between from and to at ratio in [0, 1].
func lerp(from, to Color, ratio float64) Color {
	mix := func(a, b uint8) uint8 {
		return clamp(math.Round(float64(a) + (float64(b)-float64(a))*ratio))
	}

	return Color{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
	}
}

// Span returns one color per position, spread evenly from start to end.
// A single position takes the start color.
func Span(start, end Color, steps int) []Color {
	if steps <= 0 {
		return nil
	}

	span := make([]Color, steps)
	if steps == 1 {
		span[0] = start
		return span
	}

	last := float64(steps - 1)
	for i := range span {
		span[i] = lerp(start, end, float64(i)/last)
	}
	return span
}

// Gradient wraps every character of text in its own 24-bit foreground sequence,
// interpolating linearly from startColor at the first character to endColor at the last.
//
// Characters are runes; a byte that is not valid UTF-8 counts as one character
// and is emitted unchanged. Both endpoints are parsed even when text is empty.
func Gradient(text, startColor, endColor string) (string, error) {
	start, err := ParseColor(startColor)
	if err != nil {
		return "", err
	}

	end, err := ParseColor(endColor)
	if err != nil {
		return "", err
	}

	return gradient(text, start, end), nil
}

func gradient(text string, start, end Color) string {
	span := Span(start, end, utf8.RuneCountInString(text))

	var b strings.Builder
	for i := 0; len(text) > 0; i++ {
		_, size := utf8.DecodeRuneInString(text)
		writeForeground(&b, span[i])
		// Invalid bytes are copied as they are, one position each.
		b.WriteString(text[:size])
		b.WriteString(reset)
		text = text[size:]
	}

	return b.String()
}
