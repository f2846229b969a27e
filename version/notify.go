package version

import (
	"fmt"

	"github.com/layervue/create-layervue/color"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/icon"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/style"
	"github.com/layervue/create-layervue/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/LayerVue/create-layervue/releases/tag/v"+latest),
	)
}
