package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
)

// Logs go to stderr unless configured otherwise. stdout carries archive
// listings and converted values.
const defaultOutput = "stderr"

var (
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	logFile       *os.File
	mu            sync.Mutex
)

func init() {
	_ = Configure("text", "info", defaultOutput)
}

// Default returns the default logger
func Default() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

var levelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func newFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.AWSSecretAccessKey](masq.MaskWithSymbol('*', 40)),
		masq.WithType[types.AWSSessionToken](masq.MaskWithSymbol('*', 16)),
	)
}

// openOutput resolves a --log-output value. The returned file is nil for the
// standard streams.
func openOutput(logOutput string) (io.Writer, *os.File, error) {
	switch logOutput {
	case "stdout", "-":
		return os.Stdout, nil, nil
	case "stderr", "":
		return os.Stderr, nil, nil
	}

	fd, err := os.Create(filepath.Clean(logOutput))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, fd, nil
}

// Configure replaces the default logger. logOutput is "stdout", "-",
// "stderr" or a file path; a file opened by an earlier call is closed.
func Configure(logFormat, logLevel, logOutput string) error {
	filter := newFilter()

	level, ok := levelMap[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	if logFormat != "text" && logFormat != "json" {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	w, fd, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(filter),
		)

	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})
	}

	mu.Lock()
	defer mu.Unlock()
	prev := logFile
	defaultLogger = slog.New(handler)
	logFile = fd
	if prev != nil {
		_ = prev.Close()
	}

	return nil
}

// Close closes the log file opened by Configure, if any, and sends further
// logs to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err != nil {
		return goerr.Wrap(err, "failed to close log file")
	}
	return nil
}
