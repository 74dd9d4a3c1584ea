package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/logging"
	"github.com/rgehrsitz/finhealth/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds what PersistentPreRunE resolves for every subcommand
type app struct {
	settingsPath string
	logLevel     string
	logFormat    string

	settings *config.Settings
	logger   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "finhealth",
		Short: "Personal financial health checker",
		Long: `Score a monthly income, expense, loan and savings snapshot, see where the
money goes, get a six-month roadmap and ask an AI advisor about it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.settingsPath, "config", "", "Settings file (YAML, JSON or TOML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides settings)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: console or json (overrides settings)")

	root.AddCommand(
		a.evaluateCmd(),
		a.validateCmd(),
		a.exampleCmd(),
		a.compareCmd(),
		a.chatCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		settings.Log.Format = a.logFormat
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	a.settings = settings
	a.logger = logging.New(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version needs no settings
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finhealth %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func (a *app) evaluateCmd() *cobra.Command {
	var (
		profile string
		format  string
		debugOn bool
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [input-file]",
		Short: "Score one profile from a snapshot file",
		Long: `Score one profile from a snapshot file and print a report.

Examples:
  finhealth evaluate household.yaml
  finhealth evaluate household.yaml --profile Stretched --format verbose
  finhealth evaluate household.yaml --format html --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			p, err := config.NewInputParser().LoadProfile(args[0], profile)
			if err != nil {
				return err
			}

			evaluator := calculation.NewHealthEvaluator()
			if debugOn {
				evaluator.SetLogger(logging.NewAdapter(a.logger.Level(zerolog.DebugLevel)))
				evaluator.Debug = true
			}

			result, bd := evaluator.EvaluateWithBreakdown(p.Data)
			a.logger.Info().Str("profile", p.Name).Int("score", result.Score).
				Str("risk", result.RiskLevel.String()).Msg("evaluated profile")

			report := output.NewReport(p.Name, p.Data, result)
			if formatter.Name() == "console-verbose" {
				report.WithBreakdown(bd)
			}

			if save {
				filename, err := output.WriteFormatted(formatter, report, extensionFor(formatter.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return fmt.Errorf("failed to format report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "Profile name (default: first profile in the file)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, console-verbose, json, csv, html, markdown)")
	cmd.Flags().BoolVar(&debugOn, "debug", false, "Log intermediate figures")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func extensionFor(formatter string) string {
	switch formatter {
	case "json", "csv", "html":
		return formatter
	case "markdown":
		return "md"
	default:
		return "txt"
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot file %s is valid (%d profiles: %s)\n",
				args[0], len(cfg.Profiles), strings.Join(cfg.ProfileNames(), ", "))
			return nil
		},
	}
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example snapshot file",
		Long:  "Write an example snapshot file with two profiles. Without an output file the YAML is printed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 0 {
				return writeYAML(cmd.OutOrStdout(), cfg)
			}
			if err := config.SaveConfiguration(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example snapshot written to %s\n", args[0])
			return nil
		},
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
