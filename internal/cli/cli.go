// Package cli holds the bootstrap shared by the editor asset commands:
// logger construction and mapping errors to process exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// WithExitCode wraps err so that ExitCode reports code for it.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}

	return &ExitError{Code: code, Err: err}
}

// ExitCode returns 0 for nil, the wrapped code for an ExitError, and 1
// for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

// NewLogger builds the production logger used by every command. Verbose
// switches to debug level.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// Report prints err to w the way every command does before exiting, and
// returns the exit code to use.
func Report(w io.Writer, err error) int {
	code := ExitCode(err)
	if code != 0 {
		fmt.Fprintln(w, err)
	}

	return code
}

// Session holds the logger of one command invocation.
type Session struct {
	Verbose bool
	Logger  *zap.Logger
}

// Attach adds the --verbose flag to cmd and builds the logger before the
// command runs. A Logger set beforehand (tests) is kept as is.
func (s *Session) Attach(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&s.Verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if s.Logger != nil {
			return nil
		}

		logger, err := NewLogger(s.Verbose)
		if err != nil {
			return err
		}

		s.Logger = logger

		return nil
	}

	cmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		if s.Logger != nil {
			_ = s.Logger.Sync()
		}
	}
}

// Main executes cmd with a context cancelled on SIGINT/SIGTERM, reports
// any error on stderr, and returns the process exit code.
func Main(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Report(os.Stderr, cmd.ExecuteContext(ctx))
}
