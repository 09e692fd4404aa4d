package main

import (
	"fmt"
	"todayiran/internal/config"
	"todayiran/internal/parser"
	"todayiran/internal/report"
	"todayiran/pkg/domain"
	"todayiran/pkg/logger"
	"todayiran/pkg/units"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCommand constructs the todayiran command. It takes the distance and the
// time of a run as positional arguments.
func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todayiran <distance> <time>",
		Short: "Derives your average velocity from the distance you ran and the time you needed",
		Long: "This tool provides you with basic information derived from the distance you ran and the time you needed.\n" +
			"This currently contains your average velocity, estimated times for other distances and comparisons with other performances.",
		Example:       "  todayiran 14.3km 1h12min4s\n  todayiran -v -m 3.1mi 28min",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCommand,
	}

	cmd.Flags().BoolP("verbose", "v", false, "show additional information")
	cmd.Flags().BoolP("miles", "m", false, "use miles as unit of length")
	cmd.Flags().StringP("config", "c", "", "config file path")

	return cmd
}

func runCommand(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}
	if miles, _ := cmd.Flags().GetBool("miles"); miles {
		cfg.Units = units.Imperial.String()
	}

	logger.Setup(cfg.Environment, cfg.Log.Level)
	ctx := logger.WithFields(cmd.Context(), zap.Stringer("run_id", domain.NewRunID()))
	defer logger.Sync(ctx)

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "effective config",
			zap.String("environment", cfg.Environment),
			zap.String("units", cfg.Units),
			zap.Bool("verbose", cfg.Verbose),
			zap.String("config_path", configPath),
		)
	}

	opts, err := report.NewOptions(cfg)
	if err != nil {
		return err
	}
	if err = opts.Validate(); err != nil {
		logger.Error(ctx, "built-in tables are inconsistent", zap.Error(err))

		return err
	}

	run, err := parser.ParseRun(args[0], args[1])
	if err != nil {
		logger.Debug(ctx, "could not parse arguments", zap.Strings("args", args), zap.Error(err))

		return fmt.Errorf("could not understand the passed arguments: %w", err)
	}

	logger.Info(ctx, "parsed run",
		zap.Float64("distance_m", run.Distance.Meters()),
		zap.Float64("duration_s", run.Duration.Seconds()),
	)

	r, err := report.Build(ctx, run, opts)
	if err != nil {
		return err
	}

	return r.Render(cmd.OutOrStdout())
}
