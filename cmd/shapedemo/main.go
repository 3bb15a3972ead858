// Command shapedemo runs the Shape/Rectangle delegation scenario and exits
// non-zero if any of its assertions fail.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	shape "github.com/rnkv/shape-go"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "shapedemo",
	Short:        "Run the Shape/Rectangle delegation scenario",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		shape.SetLogger(logger)

		if err := run(logger); err != nil {
			logger.Error("Scenario failed", zap.Error(err))
			return err
		}

		logger.Info("Scenario passed")
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// run executes the scenario, turning an assertion panic into an error.
func run(logger *zap.Logger) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var failed *shape.AssertionError
		if e, ok := r.(error); ok && errors.As(e, &failed) {
			err = failed
			return
		}

		panic(r)
	}()

	rect := shape.NewRectangle()

	shape.Assert(shape.IsRectangle(rect), "rect is not a Rectangle")
	shape.Assert(shape.IsShape(rect), "rect is not a Shape")
	logger.Debug("Capability checks passed", zap.String("kind", rect.Kind()))

	rect.Move(3, -4)

	shape.Assert(rect.X == 2, "rect.X == 2, got %d", rect.X)
	shape.Assert(rect.Y == 1, "rect.Y == 1, got %d", rect.Y)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
