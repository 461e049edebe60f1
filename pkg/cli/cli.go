package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/oskpack/pkg/cli/config"
	"github.com/m-mizutani/oskpack/pkg/domain/types"
	"github.com/m-mizutani/oskpack/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		packCfg   config.Pack
		outputCfg config.Output
		logger    *slog.Logger
	)

	flags := append(loggerCfg.Flags(), packCfg.Flags()...)
	flags = append(flags, outputCfg.Flags()...)

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Package osu! skin folders into .osk archives",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = logging.With(ctx, logger)
			return ctx, nil
		},
		Action: packAction(&packCfg, &outputCfg),
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
