package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/calculator-catalog/internal/config"
	"github.com/iwvelando/calculator-catalog/internal/output"
	"github.com/iwvelando/calculator-catalog/pkg/calculator"
	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/validation"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by all commands once the root command has
// loaded configuration.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	conf     *config.Configuration
	logger   *zap.Logger
	registry *calculator.Registry
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// CLI override takes precedence
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		// Fail here rather than on the first write.
		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zc.OutputPaths = []string{loggingConfig.OutputFile}
		zc.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zc.Build()
}

// setup loads the configuration, builds the logger and registry, and
// resolves the output format.
func (a *app) setup(cmd *cobra.Command) error {
	conf, err := config.LoadOrDefault(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s (see %s): %w", a.configPath, constants.ExampleConfigFile, err)
	}
	a.conf = conf

	a.logger, err = initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// CLI override takes precedence over config
	if a.outputFormat == "" {
		a.outputFormat = conf.Output.Format
	}
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		return err
	}

	a.registry = calculator.Default(a.logger)

	for _, warning := range conf.ValidateConfiguration(a.registry) {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.setup"),
		)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "calculator-catalog",
		Short:         "Run calculators from the catalog",
		Long:          "Finance, health, unit conversion, date/time and math calculators driven by string inputs.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.outputFormat, "output-format", "", "output format override: pretty, csv, json, yaml")

	root.AddCommand(a.listCmd(), a.describeCmd(), a.relatedCmd(), a.runCmd(), versionCmd())
	return root
}

func (a *app) listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := a.registry.List()
			if category != "" {
				defs = a.registry.ByCategory(calculator.Category(category))
				if len(defs) == 0 {
					return fmt.Errorf("unknown category %q", category)
				}
			}
			return output.WriteCatalog(cmd.OutOrStdout(), a.outputFormat, defs)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list calculators in this category")
	return cmd
}

func (a *app) lookup(slug string) (calculator.Definition, error) {
	def, ok := a.registry.Lookup(slug)
	if !ok {
		return calculator.Definition{}, fmt.Errorf("unknown calculator %q", slug)
	}
	return def, nil
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <calculator>",
		Short: "Show a calculator's fields and defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			return output.WriteDefinition(cmd.OutOrStdout(), a.outputFormat, def)
		},
	}
}

func (a *app) relatedCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "related <calculator>",
		Short: "List other calculators in the same category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.lookup(args[0]); err != nil {
				return err
			}
			return output.WriteCatalog(cmd.OutOrStdout(), a.outputFormat, a.registry.Related(args[0], limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 4, "maximum number of calculators, 0 for all")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	var (
		assignments []string
		presetName  string
		exportName  string
	)
	cmd := &cobra.Command{
		Use:   "run <calculator>",
		Short: "Calculate with the given inputs",
		Long: "Calculate with field defaults, overridden by a saved preset and then by --set values.\n" +
			"With --export-preset the inputs are written as a preset instead of the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.lookup(args[0])
			if err != nil {
				return err
			}

			values := map[string]string{}
			if presetName != "" {
				preset, ok := a.conf.Preset(presetName)
				if !ok {
					return fmt.Errorf("unknown preset %q", presetName)
				}
				if preset.Calculator != def.Slug {
					return fmt.Errorf("preset %q is for %s, not %s", presetName, preset.Calculator, def.Slug)
				}
				if values, err = preset.Inputs(); err != nil {
					return err
				}
			}
			overrides, err := config.ParseAssignments(assignments)
			if err != nil {
				return fmt.Errorf("invalid --set: %w", err)
			}
			for k, v := range overrides {
				values[k] = v
			}

			for _, warning := range validation.ValidateInputs(def, values) {
				a.logger.Warn("Input warning: "+warning,
					zap.String("op", "main.run"),
				)
			}

			if exportName != "" {
				return config.WritePresets(cmd.OutOrStdout(), config.NewPreset(exportName, def, values))
			}

			inputs := def.Defaults()
			for k, v := range values {
				if _, ok := def.Field(k); ok {
					inputs[k] = v
				}
			}
			a.logger.Debug("running calculator",
				zap.String("op", "main.run"),
				zap.String("slug", def.Slug),
				zap.Int("inputs", len(values)),
			)
			out, _ := a.registry.Calculate(def.Slug, inputs)
			report := output.Report{Definition: def, Inputs: inputs, Output: out}
			return output.WriteReport(cmd.OutOrStdout(), a.outputFormat, report)
		},
	}
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "field value as key=value, repeatable")
	cmd.Flags().StringVar(&presetName, "preset", "", "start from a preset saved in the configuration")
	cmd.Flags().StringVar(&exportName, "export-preset", "", "write the inputs as a preset with this name")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calculator-catalog %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "go %s\n", bi.GoVersion)
			}
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
