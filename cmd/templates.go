package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"github.com/layervue/create-layervue/git"
	"github.com/layervue/create-layervue/icon"
	"github.com/layervue/create-layervue/log"
	"github.com/layervue/create-layervue/manifest"
	"github.com/layervue/create-layervue/progress"
	"github.com/layervue/create-layervue/prompt"
	"github.com/layervue/create-layervue/scaffold"
	"github.com/layervue/create-layervue/style"
	"github.com/layervue/create-layervue/util"
	"github.com/layervue/create-layervue/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"tpl"},
	Short:   "Inspect the remote template catalogue",
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	templatesListCmd.SetOut(os.Stdout)
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates offered by a source",
	Run: func(cmd *cobra.Command, args []string) {
		binary := CheckGit()

		source, err := presetSource()
		handleErr(err)

		opts := &scaffold.Options{
			Repository: repository(),
			Scratch:    where.Scratch(),
			Source:     source,
		}
		defer func() {
			if err := util.Empty(opts.Scratch); err != nil {
				log.Warn(err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s := &scaffold.Scaffolder{
			Asker:      prompt.New(),
			Downloader: git.NewDownloader(binary),
			Step:       progress.Run,
		}

		chosen, templates, err := s.Templates(ctx, opts)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(templates))
			return
		}

		cmd.Printf("%s %s\n\n", style.SourceTag(chosen.Title()), style.Faint(util.Quantify(len(templates), "template", "templates")))
		for _, t := range templates {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Template), style.Bold(t.Name), style.Faint(t.Path))
			if t.Description != "" {
				cmd.Printf("  %s\n", t.Description)
			}
		}
	},
}

func init() {
	templatesCmd.AddCommand(templatesSchemaCmd)
	templatesSchemaCmd.SetOut(os.Stdout)
}

var templatesSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema the template manifest is validated against",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(manifest.Schema()))
	},
}
