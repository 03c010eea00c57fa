package figure

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultPalette is the positional color list: curve 1 is darkred, curve 2 darkgreen.
var DefaultPalette = []string{"darkred", "darkgreen"}

// ParseColor resolves an SVG color name (case-insensitive) or a #rrggbb literal.
func ParseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := colornames.Map[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") && len(key) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(key, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", name)
}

// ParsePalette resolves every name in names, keeping order.
func ParsePalette(names []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(names))
	for i, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
