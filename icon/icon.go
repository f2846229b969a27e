// Package icon renders the status symbols printed next to messages.
//
// The variant (emoji, nerd, plain, kaomoji or squares) comes from icons.variant.
package icon

import (
	"github.com/layervue/create-layervue/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// variants maps a variant name to its rendering.
type variants map[string]string

func variant() string {
	if v := viper.GetString(key.IconsVariant); v != "" {
		return v
	}
	return plain
}

// Get returns the rendering of i in the configured variant.
// Unknown icons and unknown variants render as an empty string.
func Get(i Icon) string {
	return icons[i][variant()]
}
