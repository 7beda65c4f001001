package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MariaBashkeva/curve3"
	"github.com/MariaBashkeva/curve3/internal/config"
	"github.com/MariaBashkeva/curve3/internal/observability"
	"github.com/MariaBashkeva/curve3/internal/sample"
)

// newDemoCmd creates the `demo` command.
func newDemoCmd() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Generates random curves and prints their evaluation at an angle",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to viper keys so they override the config file and
			// environment.
			for flag, key := range map[string]string{
				"count": "demo.count",
				"seed":  "demo.seed",
				"angle": "demo.angle",
			} {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}

			logger := observability.GetLogger()
			opts := sample.Options{
				Count: cfg.Demo.Count,
				Seed:  cfg.Demo.Seed,
				Min:   cfg.Demo.Min,
				Max:   cfg.Demo.Max,
			}
			logger.Info("generating curves",
				zap.Int("count", opts.Count),
				zap.Int64("seed", opts.Seed),
				zap.Float64("angle", cfg.Demo.Angle))

			curves := sample.Curves(opts)
			out := cmd.OutOrStdout()
			for _, c := range curves {
				fmt.Fprintf(out, "Point: %v\n", c.Eval(cfg.Demo.Angle))
				fmt.Fprintf(out, "Derivative: %v\n", c.Deriv(cfg.Demo.Angle))
			}

			circles := curve3.Circles(curves)
			curve3.SortCirclesByRadius(circles)
			radii := make([]float64, len(circles))
			for i, c := range circles {
				radii[i] = c.Radius
			}
			logger.Debug("sorted circle radii", zap.Float64s("radii", radii))

			summary, err := sample.Summarize(curves)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "first: %g, last: %g\n", summary.First, summary.Last)
			fmt.Fprintf(out, "Total sum of radii: %g\n", summary.Sum)
			return nil
		},
	}

	demoCmd.Flags().Int("count", 100, "number of curves to generate")
	demoCmd.Flags().Int64("seed", 1, "random seed for reproducible runs")
	demoCmd.Flags().Float64("angle", 0, "evaluation angle in radians (default π/4)")
	return demoCmd
}
