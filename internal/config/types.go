package config

// FigureConfig describes the circles figure. Zero values fall back to the
// exercise defaults.
type FigureConfig struct {
	Samples    int      `yaml:"samples"`
	Title      string   `yaml:"title"`
	Labels     []string `yaml:"labels"`
	Colors     []string `yaml:"colors"`
	Margin     *float64 `yaml:"margin"`
	SizeInches float64  `yaml:"size_inches"`
	Output     string   `yaml:"output"`
	CSV        string   `yaml:"csv"`
}
