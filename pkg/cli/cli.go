package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/dataprep/pkg/cli/config"
	"github.com/secmon-lab/dataprep/pkg/utils/errutil"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	writer io.Writer
}

type Option func(*CLI)

// WithWriter sets where command output (archive listings, converted values) is written.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentryCfg config.Sentry
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = logging.Close() }()

	// runCtx carries the run ID logger once Before has run.
	runCtx := ctx

	app := &cli.Command{
		Name:   "dataprep",
		Usage:  "Download, extract and normalize purchase datasets",
		Writer: x.writer,
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("DATAPREP_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("DATAPREP_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("DATAPREP_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		}, sentryCfg.Flags()),
		Commands: []*cli.Command{
			downloadCommand(x.writer),
			unzipCommand(x.writer),
			prepareCommand(x.writer),
			toFloatCommand(x.writer),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}

			runID, ctx := logging.CtxRunID(ctx)
			ctx = logging.With(ctx, logging.Default().With("run_id", runID))

			runCtx = ctx

			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(runCtx, "fatal error", err)
		if sentryCfg.Enabled() {
			sentry.Flush(2 * time.Second)
		}
		return err
	}

	return nil
}
