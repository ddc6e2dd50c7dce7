package main

import (
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/minpairs/internal/app"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "minpairs",
		Short:         "Find minimal pairs in a pronunciation lexicon",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (default ./config.yaml)")
	flags.StringVar(&ctx.lexicon, "lexicon", "", "Lexicon path, overrides lexicon.path")
	flags.StringVar(&ctx.format, "format", "", "Lexicon format: csv or sqlite")
	flags.StringVar(&ctx.table, "table", "", "Lexicon table for the sqlite format")
	flags.StringVar(&ctx.policy, "policy", "", "Collision policy: keep-all, first-wins or last-wins")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newQueryCommand(ctx))
	rootCmd.AddCommand(newSegmentsCommand(ctx))
	rootCmd.AddCommand(newChartsCommand(ctx))
	rootCmd.AddCommand(newThresholdCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))

	return rootCmd
}
