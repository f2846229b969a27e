package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/layervue/create-layervue/ansi"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/style"
	"github.com/layervue/create-layervue/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version string")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"gradient": func(s string) string {
		out, err := ansi.Gradient(s, viper.GetString(key.BannerStart), viper.GetString(key.BannerEnd))
		if err != nil {
			return s
		}
		return out
	},
}).Parse(`{{ gradient "▇▇▇" }} {{ gradient .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
			App      string
		}{
			Version:  constant.Version,
			App:      constant.App,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
		}))
	},
}
