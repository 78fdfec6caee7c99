// Package logger holds the process-wide zap logger used by the abundance
// command line tool.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// No-op until Initialize so packages may log unconditionally.
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. jsonOutput selects structured JSON
// for machine consumption, otherwise a console encoder is used. Logs go to
// stderr so that command output on stdout stays clean.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "logger: level %q", level)
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
		if err != nil {
			return errors.Wrap(err, "logger: build")
		}
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}

	JSONOutput = jsonOutput
	Logger = zapLogger.Sugar()

	return nil
}

// Base returns the unsugared global logger, for APIs taking *zap.Logger.
func Base() *zap.Logger { return Logger.Desugar() }

// Named returns a child of the global logger tagged with component.
func Named(component string) *zap.Logger { return Base().Named(component) }

// Sync flushes buffered entries. Errors from syncing terminals are ignored.
func Sync() { _ = Logger.Sync() }
