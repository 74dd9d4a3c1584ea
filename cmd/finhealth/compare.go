package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/compare"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/logging"
	"github.com/rgehrsitz/finhealth/internal/transform"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		base          string
		with          string
		whatIf        []string
		format        string
		listTemplates bool
	)

	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare profiles against a base profile",
		Long: `Evaluate several profiles from one snapshot file and compare them to a base.

Examples:
  finhealth compare household.yaml
  finhealth compare household.yaml --base Base --with Stretched,Frugal
  finhealth compare household.yaml --what-if cut_discretionary_20,clear_loans
  finhealth compare household.yaml --what-if scale_expense:category=rent,factor=0.8
  finhealth compare --list-templates
  finhealth compare household.yaml --format csv`,
		Args: func(cmd *cobra.Command, args []string) error {
			if listTemplates {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := transform.CreateBuiltInTemplates()
			if listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(templates))
				return nil
			}
			if with != "" && len(whatIf) > 0 {
				return fmt.Errorf("--with and --what-if cannot be combined")
			}
			inputFile := args[0]

			cfg, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			evaluator := calculation.NewHealthEvaluator()
			evaluator.SetLogger(logging.NewAdapter(a.logger))

			engine := compare.NewCompareEngine(evaluator)
			var compSet *compare.ComparisonSet
			if len(whatIf) > 0 {
				resolved, rerr := transform.Resolve(templates, transform.NewTransformRegistry(), whatIfEntries(whatIf))
				if rerr != nil {
					return rerr
				}
				compSet, err = engine.CompareWhatIf(cmd.Context(), cfg, base, resolved)
			} else {
				compSet, err = engine.Compare(cmd.Context(), cfg, base, parseProfileList(with))
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			compSet.ConfigPath = inputFile

			out, err := compare.FormatComparison(compSet, strings.ToLower(format))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Base profile name (default: first profile)")
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated profiles to compare (default: all others)")
	cmd.Flags().StringArrayVar(&whatIf, "what-if", nil, "What-if templates applied to the base (comma-separated names, or one name:key=value,... spec per flag)")
	cmd.Flags().BoolVar(&listTemplates, "list-templates", false, "List the built-in what-if templates")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

// whatIfEntries expands --what-if values. A value holding a transform spec
// keeps its commas; anything else is a list of template names.
func whatIfEntries(values []string) []string {
	var entries []string
	for _, v := range values {
		if strings.Contains(v, ":") {
			entries = append(entries, strings.TrimSpace(v))
			continue
		}
		entries = append(entries, transform.ParseTemplateList(v)...)
	}
	return entries
}

// parseProfileList splits a comma-separated list, dropping blanks
func parseProfileList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
