package config

import (
	"fmt"
	"os"

	"berkotech.co/circles/circles"
	"berkotech.co/circles/figure"
	"berkotech.co/circles/internal/logging"

	"github.com/joho/godotenv"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutput = "exercise_1-2.png"

	EnvOutput   = "CIRCLES_OUTPUT"
	EnvLogLevel = "CIRCLES_LOG_LEVEL"

	// MinSamples is the fewest angle samples that still give three distinct
	// points: the sweep over [0, 2π] repeats its first point at the end.
	MinSamples = 4
)

// Default returns the configuration that reproduces the exercise figure.
func Default() *FigureConfig {
	margin := figure.DefaultMargin
	return &FigureConfig{
		Samples:    circles.DefaultSamples,
		Labels:     []string{"r = 1", "r = 2"},
		Colors:     append([]string(nil), figure.DefaultPalette...),
		Margin:     &margin,
		SizeInches: float64(figure.DefaultSize / vg.Inch),
		Output:     DefaultOutput,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path yields the
// defaults alone. Environment overrides are applied last.
func LoadConfig(filepath string) (*FigureConfig, error) {
	logger := logging.GetLogger()
	config := Default()

	if filepath != "" {
		data, err := os.ReadFile(filepath)
		if err != nil {
			logger.WithField("filepath", filepath).WithError(err).Error("Failed to read config file")
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			logger.WithField("filepath", filepath).WithError(err).Error("Failed to parse config file")
			return nil, err
		}
	}

	if out := os.Getenv(EnvOutput); out != "" {
		config.Output = out
	}
	fillDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func fillDefaults(config *FigureConfig) {
	def := Default()
	if config.Samples == 0 {
		config.Samples = def.Samples
	}
	if len(config.Labels) == 0 {
		config.Labels = def.Labels
	}
	if len(config.Colors) == 0 {
		config.Colors = def.Colors
	}
	if config.Margin == nil {
		config.Margin = def.Margin
	}
	if config.SizeInches == 0 {
		config.SizeInches = def.SizeInches
	}
	if config.Output == "" {
		config.Output = def.Output
	}
}

func validateConfig(config *FigureConfig) error {
	if config.Samples < MinSamples {
		return fmt.Errorf("samples must be at least %d, got %d", MinSamples, config.Samples)
	}
	if *config.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %v", *config.Margin)
	}
	if minSize := float64(figure.MinSize / vg.Inch); config.SizeInches < minSize {
		return fmt.Errorf("size_inches must be at least %v, got %v", minSize, config.SizeInches)
	}
	if len(config.Colors) != 2 {
		return fmt.Errorf("need one color per circle (2), got %d", len(config.Colors))
	}
	if len(config.Labels) != 2 {
		return fmt.Errorf("need one label per circle (2), got %d", len(config.Labels))
	}
	if _, err := figure.ParsePalette(config.Colors); err != nil {
		return err
	}
	if _, err := figure.FormatOf(config.Output); err != nil {
		return err
	}
	return nil
}

// Options converts the config into figure options.
func (c *FigureConfig) Options() (figure.Options, error) {
	palette, err := figure.ParsePalette(c.Colors)
	if err != nil {
		return figure.Options{}, err
	}
	return figure.Options{
		Title:  c.Title,
		Labels: c.Labels,
		Colors: palette,
		Margin: *c.Margin,
		Size:   vg.Length(c.SizeInches) * vg.Inch,
	}, nil
}

// LoadEnvironment loads a .env file from the working directory if present.
func LoadEnvironment() {
	logger := logging.GetLogger()

	envFile := ".env"
	if _, err := os.Stat(envFile); err != nil {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.WithField("file", envFile).WithError(err).Warn("Error loading .env file")
		return
	}
	logger.WithField("file", envFile).Debug("Loaded environment variables")
}
