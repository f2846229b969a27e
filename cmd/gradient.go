package cmd

import (
	"os"
	"strings"

	"github.com/layervue/create-layervue/ansi"
	"github.com/layervue/create-layervue/key"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(gradientCmd)
	gradientCmd.Flags().StringP("from", "f", "", "Start color as hex, rgb(...) or hsl(...), defaults to banner.start")
	gradientCmd.Flags().StringP("to", "t", "", "End color as hex, rgb(...) or hsl(...), defaults to banner.end")
	gradientCmd.SetOut(os.Stdout)
}

var gradientCmd = &cobra.Command{
	Use:     "gradient <text>",
	Short:   "Print text with a 24-bit color gradient",
	Example: `  layervue gradient "Hello there" --from "#ff8d1a" --to "hsl(280, 97%, 59%)"`,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		from := lo.Must(cmd.Flags().GetString("from"))
		if from == "" {
			from = viper.GetString(key.BannerStart)
		}

		to := lo.Must(cmd.Flags().GetString("to"))
		if to == "" {
			to = viper.GetString(key.BannerEnd)
		}

		out, err := ansi.Gradient(strings.Join(args, " "), from, to)
		handleErr(err)
		cmd.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.Flags().StringP("sample", "s", "", "Text to render instead of the style name")
	colorsCmd.SetOut(os.Stdout)
}

var colorsCmd = &cobra.Command{
	Use:   "colors [name...]",
	Short: "Show the named terminal styles",
	Run: func(cmd *cobra.Command, args []string) {
		names := ansi.Names()
		if len(args) > 0 {
			names = make([]ansi.Name, 0, len(args))
			for _, arg := range args {
				name, err := ansi.ParseName(arg)
				handleErr(err)
				names = append(names, name)
			}
		}

		sample := lo.Must(cmd.Flags().GetString("sample"))
		for _, name := range names {
			text := sample
			if text == "" {
				text = string(name)
			}
			cmd.Println(ansi.Stylize(text, name))
		}
	},
}
