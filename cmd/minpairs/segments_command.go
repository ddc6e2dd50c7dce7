package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/minpairs"
	"github.com/cours-de-latin/minpairs/internal/app"
)

func newSegmentsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "List the segments found in the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, err := ctx.ensureFinder(cmd.Context())
			if err != nil {
				return err
			}
			segs := finder.Lexicon().Segments()
			if limit > 0 && len(segs) > limit {
				segs = segs[:limit]
			}
			headers := []string{"Segment", "Records", "Occurrences"}
			rows := make([][]string, 0, len(segs))
			for _, s := range segs {
				rows = append(rows, []string{s.Segment, strconv.Itoa(s.Records), strconv.Itoa(s.Occurrences)})
			}
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				_, err := fmt.Fprintln(out, renderTSV(headers, rows))
				return err
			}
			_, err = fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n segments (0 for all)")
	return cmd
}

func newChartsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "charts",
		Short: "Print the configured consonant and vowel charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			charts, err := app.LoadCharts(cfg.Lexicon)
			if err != nil {
				return err
			}
			if len(charts) == 0 {
				return errors.New("no charts configured (set lexicon.consonant_chart or lexicon.vowel_chart)")
			}
			out := cmd.OutOrStdout()
			for _, c := range charts {
				fmt.Fprintln(out, c.Name)
				if isTerminal(out) {
					fmt.Fprintln(out, renderTable(c.Columns, c.Rows, nil))
				} else {
					fmt.Fprintln(out, renderTSV(c.Columns, c.Rows))
				}
			}
			return nil
		},
	}
}

func newThresholdCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "threshold [slider]",
		Short: "Show the frequency threshold selected by a slider value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			slider := cfg.Query.DefaultSlider
			if len(args) == 1 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("%w: slider %q is not a number", minpairs.ErrInvalidConfiguration, args[0])
				}
				slider = v
			}
			threshold, err := minpairs.ThresholdFromSlider(slider)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), minpairs.DescribeThreshold(threshold, cfg.Query.CorpusTokens))
			return err
		},
	}
}
