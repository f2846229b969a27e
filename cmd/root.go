// Package cmd implements the command-line interface for create-layervue.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/layervue/create-layervue/ansi"
	"github.com/layervue/create-layervue/constant"
	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/icon"
	"github.com/layervue/create-layervue/key"
	"github.com/layervue/create-layervue/log"
	"github.com/layervue/create-layervue/progress"
	"github.com/layervue/create-layervue/prompt"
	"github.com/layervue/create-layervue/scaffold"
	"github.com/layervue/create-layervue/util"
	"github.com/layervue/create-layervue/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Template source to download from (gitee or github)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.TemplateSource, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.Flags().Bool("no-banner", false, "Do not print the gradient banner")

	rootCmd.Flags().StringP("template", "t", "", "Template name or path, skips the template prompt")
	rootCmd.Flags().StringP("name", "n", "", "Project name, skips the project prompts")
	rootCmd.Flags().StringP("description", "d", "", "Project description")
	rootCmd.Flags().StringP("author", "a", "", "Project author")
	rootCmd.Flags().String("project-version", "", "Project version, must be valid semver")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd creates a project from the remote template catalogue.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Create a LayerVue project from a remote template",
	Long:  "LayerVue - " + constant.Tagline,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if viper.GetBool(key.BannerShow) && !lo.Must(cmd.Flags().GetBool("no-banner")) {
			if b, err := banner(util.TerminalWidth(80)); err != nil {
				log.Warn(err)
			} else {
				fmt.Println(b)
			}
		}

		binary := CheckGit()

		opts, err := scaffoldOptions(cmd)
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s := &scaffold.Scaffolder{
			Asker:      prompt.New(),
			Downloader: git.NewDownloader(binary),
			Step:       progress.Run,
		}

		_, err = s.Run(ctx, opts)
		if code, report := exitStatus(err); report {
			handleErr(err)
		} else if code != 0 {
			log.Error(err)
			os.Exit(code)
		}
	},
}

// exitStatus maps a scaffold error to the process exit code. report is false when
// the user already saw the reason: an interrupt, or the existing-folder notice.
func exitStatus(err error) (code int, report bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, prompt.ErrAborted), errors.Is(err, progress.ErrInterrupted):
		return 130, false
	case errors.Is(err, scaffold.ErrProjectExists):
		return 1, false
	default:
		return 1, true
	}
}

// banner renders the title as a gradient, wrapped to width. Each line gets the full span.
func banner(width int) (string, error) {
	var (
		start = viper.GetString(key.BannerStart)
		end   = viper.GetString(key.BannerEnd)
		lines = strings.Split(wordwrap.String("LayerVue - "+constant.Tagline, width), "\n")
	)

	for i, line := range lines {
		colored, err := ansi.Gradient(line, start, end)
		if err != nil {
			return "", fmt.Errorf("banner: %w", err)
		}
		lines[i] = colored
	}

	return strings.Join(lines, "\n"), nil
}

func completionSources(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(git.Sources(), func(s git.Source, _ int) string {
		return string(s)
	}), cobra.ShellCompDirectiveNoFileComp
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
