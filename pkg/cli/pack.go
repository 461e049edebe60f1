package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/cli/config"
	"github.com/m-mizutani/oskpack/pkg/controller/prompt"
	"github.com/m-mizutani/oskpack/pkg/usecase"
	"github.com/m-mizutani/oskpack/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func packAction(packCfg *config.Pack, outputCfg *config.Output) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		// Interrupts end the session cleanly instead of killing the process
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runPack(ctx, packCfg, outputCfg, os.Stdin, os.Stdout)
	}
}

// runPack runs one interactive packing session. Quitting and interruption
// are not errors.
func runPack(ctx context.Context, packCfg *config.Pack, outputCfg *config.Output, in io.Reader, out io.Writer) error {
	logger := logging.From(ctx)

	packer, err := usecase.NewSkinPacker(usecase.WithExcludes(packCfg.Excludes...))
	if err != nil {
		return goerr.Wrap(err, "failed to create skin packer")
	}

	opts := []prompt.Option{
		prompt.WithInput(in),
		prompt.WithOutput(out),
		prompt.WithColor(outputCfg.ColorEnabled()),
	}
	if packCfg.Dir != "" {
		opts = append(opts, prompt.WithBaseDir(packCfg.Dir))
	}

	session, err := prompt.NewSession(packer, opts...)
	if err != nil {
		return goerr.Wrap(err, "failed to create session")
	}

	logger.Debug("Starting packing session",
		"dir", packCfg.Dir,
		"excludes", packCfg.Excludes,
	)

	if err := session.Run(ctx); err != nil {
		if prompt.IsCleanExit(err) {
			logger.Debug("Session ended by user", "reason", err.Error())
			return nil
		}
		return goerr.Wrap(err, "skin packing failed")
	}

	return nil
}
