package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/minpairs"
)

type queryOptions struct {
	minFreq   float64
	slider    float64
	pos       []string
	posGroups []string
	etymology []string
	output    string
}

func newQueryCommand(ctx *commandContext) *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query <a, b> | <a> <b>",
		Short: "List the minimal pairs contrasting two segments",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := parsePairArgs(args)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			filter, err := opts.filterConfig(cmd, cfg.Query.DefaultSlider)
			if err != nil {
				return err
			}
			finder, err := ctx.ensureFinder(cmd.Context())
			if err != nil {
				return err
			}
			res, err := finder.Find(spec, filter)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, filter.MinFrequency, cfg.Query.CorpusTokens, opts.output)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.minFreq, "min-freq", 0, "Absolute frequency threshold (overrides --slider)")
	flags.Float64Var(&opts.slider, "slider", minpairs.SliderDefault, "Logarithmic frequency slider, threshold = 10^slider")
	flags.StringSliceVar(&opts.pos, "pos", nil, "Allowed part-of-speech tags (e.g. NNG,MAG)")
	flags.StringSliceVar(&opts.posGroups, "pos-group", nil, "Allowed part-of-speech groups: nouns, adverbs")
	flags.StringSliceVar(&opts.etymology, "etymology", nil, "Allowed etymologies: native, sino, foreign, unknown")
	flags.StringVarP(&opts.output, "output", "o", "auto", "Output format: auto, table, tsv or json")

	return cmd
}

// filterConfig resolves the flags. A category flag that was not given
// disables that filter; an explicitly empty one (--pos "") lets nothing
// through.
func (o queryOptions) filterConfig(cmd *cobra.Command, defaultSlider float64) (minpairs.FilterConfig, error) {
	var cfg minpairs.FilterConfig
	flags := cmd.Flags()

	switch {
	case flags.Changed("min-freq"):
		cfg.MinFrequency = o.minFreq
	default:
		slider := defaultSlider
		if flags.Changed("slider") {
			slider = o.slider
		}
		t, err := minpairs.ThresholdFromSlider(slider)
		if err != nil {
			return cfg, err
		}
		cfg.MinFrequency = t
	}

	switch {
	case flags.Changed("pos"):
		cfg.PartsOfSpeech = make([]string, 0, len(o.pos))
		for _, p := range o.pos {
			if p != "" {
				cfg.PartsOfSpeech = append(cfg.PartsOfSpeech, p)
			}
		}
	case flags.Changed("pos-group"):
		enabled := make(map[string]bool, len(o.posGroups))
		for _, g := range o.posGroups {
			if g != "" {
				enabled[g] = true
			}
		}
		for name := range enabled {
			if !knownGroup(name) {
				return cfg, fmt.Errorf("%w: unknown part-of-speech group %q", minpairs.ErrInvalidConfiguration, name)
			}
		}
		cfg.PartsOfSpeech = minpairs.AllowedPOS(minpairs.DefaultPOSGroups, enabled)
	}

	if flags.Changed("etymology") {
		cfg.Etymologies = make([]minpairs.Etymology, 0, len(o.etymology))
		for _, raw := range o.etymology {
			if raw == "" {
				continue
			}
			e, err := minpairs.ParseEtymology(raw)
			if err != nil {
				return cfg, fmt.Errorf("%w: %v", minpairs.ErrInvalidConfiguration, err)
			}
			cfg.Etymologies = append(cfg.Etymologies, e)
		}
	}
	return cfg, nil
}

func knownGroup(name string) bool {
	for _, g := range minpairs.DefaultPOSGroups {
		if g.Name == name {
			return true
		}
	}
	return false
}

type recordOutput struct {
	Orthography string  `json:"orthography"`
	IPA         string  `json:"ipa"`
	Frequency   float64 `json:"frequency"`
	POS         string  `json:"pos,omitempty"`
	Etymology   string  `json:"etymology"`
}

type pairOutput struct {
	Skeleton string       `json:"skeleton"`
	First    recordOutput `json:"first"`
	Second   recordOutput `json:"second"`
}

type resultOutput struct {
	First        string       `json:"first"`
	Second       string       `json:"second"`
	MinFrequency float64      `json:"min_frequency"`
	Count        int          `json:"count"`
	Summary      string       `json:"summary"`
	Pairs        []pairOutput `json:"pairs"`
}

func toRecordOutput(r minpairs.Record) recordOutput {
	return recordOutput{
		Orthography: r.Orthography,
		IPA:         r.IPA(),
		Frequency:   r.Frequency,
		POS:         r.POS,
		Etymology:   string(r.Etymology),
	}
}

func formatFreq(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writeResult(out io.Writer, res *minpairs.Result, minFreq float64, corpusTokens int, format string) error {
	if format == "auto" {
		format = "tsv"
		if isTerminal(out) {
			format = "table"
		}
	}

	switch format {
	case "json":
		o := resultOutput{
			First:        res.Spec.First,
			Second:       res.Spec.Second,
			MinFrequency: minFreq,
			Count:        res.Count,
			Summary:      res.Summary(),
			Pairs:        make([]pairOutput, 0, len(res.Pairs)),
		}
		for _, p := range res.Pairs {
			o.Pairs = append(o.Pairs, pairOutput{
				Skeleton: p.Skeleton,
				First:    toRecordOutput(p.First),
				Second:   toRecordOutput(p.Second),
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	case "table", "tsv":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	headers := []string{
		"#",
		"[" + res.Spec.First + "]", "IPA", "Freq",
		"[" + res.Spec.Second + "]", "IPA", "Freq",
	}
	rows := make([][]string, 0, len(res.Pairs))
	for i, p := range res.Pairs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.First.Orthography, p.First.IPA(), formatFreq(p.First.Frequency),
			p.Second.Orthography, p.Second.IPA(), formatFreq(p.Second.Frequency),
		})
	}

	if format == "tsv" {
		_, err := fmt.Fprintln(out, renderTSV(headers, rows))
		return err
	}

	fmt.Fprintln(out, res.Summary())
	fmt.Fprintln(out, minpairs.DescribeThreshold(minFreq, corpusTokens))
	if res.Count == 0 {
		return nil
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight}
	_, err := fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return err
}
