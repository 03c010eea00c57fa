package cmd

import (
	"fmt"
	"math"
	"os"

	"berkotech.co/circles/circles"
	"berkotech.co/circles/internal/config"
	"berkotech.co/circles/figure"
	"berkotech.co/circles/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// radiusTolerance bounds how far a fitted radius may drift in check.
const radiusTolerance = 1e-6

// NewRootCommand wires the circles command tree.
func NewRootCommand() *cobra.Command {
	var configFile, output, csvFile, logLevel string

	rootCmd := &cobra.Command{
		Use:   "circles",
		Short: "Plot two concentric circles with equal axes and a legend",
		Long:  "Draws the unit circle in darkred and the radius-2 circle in darkgreen on equally scaled, padded axes with a legend.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvironment()
			if logLevel == "" {
				logLevel = os.Getenv(config.EnvLogLevel)
			}
			if logLevel != "" {
				if err := logging.SetLogLevel(logLevel); err != nil {
					return fmt.Errorf("invalid log level: %w", err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if output != "" {
				if _, err := figure.FormatOf(output); err != nil {
					return err
				}
				cfg.Output = output
			}
			if csvFile != "" {
				cfg.CSV = csvFile
			}
			return render(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to figure configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "Output image (png, jpg, svg, pdf, eps, tif)")
	rootCmd.Flags().StringVar(&csvFile, "csv", "", "Also write the sample table as CSV")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Fit both curves and verify radii 1 and 2 around a shared center",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			return check(cfg.Samples)
		},
	}
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func render(cfg *config.FigureConfig) error {
	logger := logging.GetLogger()

	samples, err := circles.Generate(cfg.Samples)
	if err != nil {
		return fmt.Errorf("failed to generate samples: %w", err)
	}
	logger.WithField("samples", len(samples.Angles)).Debug("Generated circle samples")

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	fig, err := figure.New(samples.Curves(), opts)
	if err != nil {
		return fmt.Errorf("failed to build figure: %w", err)
	}
	if err := fig.Save(cfg.Output); err != nil {
		return fmt.Errorf("failed to save figure: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"output": cfg.Output,
		"curves": len(fig.Series),
	}).Info("Figure written")

	if cfg.CSV == "" {
		return nil
	}
	f, err := os.Create(cfg.CSV)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := samples.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	logger.WithField("csv", cfg.CSV).Info("Sample table written")
	return f.Close()
}

func check(n int) error {
	logger := logging.GetLogger()

	samples, err := circles.Generate(n)
	if err != nil {
		return err
	}
	for i, want := range []float64{1, 2} {
		c, err := circles.FitCircle(samples.Curves()[i])
		if err != nil {
			return err
		}
		fields := logrus.Fields{
			"curve":    i + 1,
			"radius":   c.Radius,
			"center_x": c.X,
			"center_y": c.Y,
		}
		if math.Abs(c.Radius-want) > radiusTolerance || math.Hypot(c.X, c.Y) > radiusTolerance {
			logger.WithFields(fields).Error("Curve does not match expected circle")
			return fmt.Errorf("curve %d: expected radius %v at origin, fitted %v at (%v, %v)", i+1, want, c.Radius, c.X, c.Y)
		}
		logger.WithFields(fields).Info("Curve verified")
	}
	return nil
}
