package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/internal/cli"
	rerrors "github.com/matzehuels/techradar/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode maps error codes to process exit codes: 2 for bad input, 1 otherwise.
func exitCode(err error) int {
	switch rerrors.GetCode(err) {
	case rerrors.ErrCodeInvalidInput, rerrors.ErrCodeInvalidFormat, rerrors.ErrCodeInvalidStyle,
		rerrors.ErrCodeInvalidConfig, rerrors.ErrCodeInvalidPath:
		return 2
	default:
		return 1
	}
}
