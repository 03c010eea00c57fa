package figure

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

// DefaultMargin pads the data on every side by this fraction of its span.
const DefaultMargin = 0.05

// DefaultSize is the height of the figure; the width follows from the aspect.
const DefaultSize = 5 * vg.Inch

// MinSize is the smallest height at which axis decorations leave room for
// the data area.
const MinSize = 3 * vg.Inch

const maxWidthCorrections = 8

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// Series is one labelled curve.
type Series struct {
	Label string
	Color color.RGBA
	XYs   plotter.XYs
}

// Options controls how the curves are drawn.
type Options struct {
	Title  string
	Labels []string
	Colors []color.RGBA
	Margin float64
	Size   vg.Length
}

// DefaultOptions reproduces the exercise figure.
func DefaultOptions() Options {
	palette, _ := ParsePalette(DefaultPalette)
	return Options{
		Labels: []string{"r = 1", "r = 2"},
		Colors: palette,
		Margin: DefaultMargin,
		Size:   DefaultSize,
	}
}

// Figure is a set of curves drawn on one pair of equally scaled axes.
type Figure struct {
	Title  string
	Series []Series
	Margin float64
	Size   vg.Length
}

// LegendEntry is a label and the color its thumbnail is drawn in.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// New pairs each curve with the label and color at the same position.
func New(curves []plotter.XYs, opts Options) (*Figure, error) {
	if len(opts.Colors) != len(curves) {
		return nil, fmt.Errorf("have %d colors for %d curves", len(opts.Colors), len(curves))
	}
	if len(opts.Labels) != len(curves) {
		return nil, fmt.Errorf("have %d labels for %d curves", len(opts.Labels), len(curves))
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("negative margin %v", opts.Margin)
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Size < MinSize {
		return nil, fmt.Errorf("size %v is below the minimum %v", opts.Size, MinSize)
	}
	f := &Figure{Title: opts.Title, Margin: opts.Margin, Size: opts.Size}
	for i, xys := range curves {
		if len(xys) == 0 {
			return nil, fmt.Errorf("curve %d is empty", i)
		}
		f.Series = append(f.Series, Series{Label: opts.Labels[i], Color: opts.Colors[i], XYs: xys})
	}
	return f, nil
}

// Legend lists the legend entries in drawing order.
func (f *Figure) Legend() []LegendEntry {
	entries := make([]LegendEntry, len(f.Series))
	for i, s := range f.Series {
		entries[i] = LegendEntry{Label: s.Label, Color: s.Color}
	}
	return entries
}

// Limits returns equal-width x and y ranges centred on the data, padded by
// the margin fraction.
func (f *Figure) Limits() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range f.Series {
		x0, x1, y0, y1 := plotter.XYRange(s.XYs)
		xmin, xmax = math.Min(xmin, x0), math.Max(xmax, x1)
		ymin, ymax = math.Min(ymin, y0), math.Max(ymax, y1)
	}
	span := math.Max(xmax-xmin, ymax-ymin)
	if span == 0 {
		span = 1
	}
	half := span/2 + f.Margin*span
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	return cx - half, cx + half, cy - half, cy + half
}

// Plot builds the gonum plot: one line and one legend entry per series.
func (f *Figure) Plot() (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = f.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, s := range f.Series {
		line, err := plotter.NewLine(s.XYs)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = s.Color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}
	p.Legend.Top = true

	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = f.Limits()
	return p, nil
}

// Aspect is the drawn length of one x unit over the drawn length of one y
// unit when p is rendered at w by h.
func Aspect(p *plot.Plot, w, h vg.Length) float64 {
	dc := dataCanvas(p, w, h)
	ux := float64(dc.Max.X-dc.Min.X) / (p.X.Max - p.X.Min)
	uy := float64(dc.Max.Y-dc.Min.Y) / (p.Y.Max - p.Y.Min)
	return ux / uy
}

func dataCanvas(p *plot.Plot, w, h vg.Length) draw.Canvas {
	da := draw.Canvas{
		Canvas:    new(recorder.Canvas),
		Rectangle: vg.Rectangle{Max: vg.Point{X: w, Y: h}},
	}
	return p.DataCanvas(da)
}

// Dimensions returns the canvas size at which p draws with a 1:1 aspect.
// The height is fixed at f.Size and the width is corrected until the data
// area is as wide as the axis ranges require.
func (f *Figure) Dimensions(p *plot.Plot) (w, h vg.Length) {
	w, h = f.Size, f.Size
	ratio := vg.Length((p.X.Max - p.X.Min) / (p.Y.Max - p.Y.Min))
	for i := 0; i < maxWidthCorrections; i++ {
		dc := dataCanvas(p, w, h)
		dw, dh := dc.Max.X-dc.Min.X, dc.Max.Y-dc.Min.Y
		d := dh*ratio - dw
		if math.Abs(float64(d)) < 1e-9 {
			break
		}
		w += d
	}
	return w, h
}

// WriteTo encodes the figure in the given format (png, svg, pdf, ...).
func (f *Figure) WriteTo(out io.Writer, format string) (int64, error) {
	format = strings.ToLower(format)
	if !formats[format] {
		return 0, fmt.Errorf("unsupported format %q", format)
	}
	p, err := f.Plot()
	if err != nil {
		return 0, err
	}
	w, h := f.Dimensions(p)
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(out)
}

// Save writes the figure to path, picking the format from its extension.
func (f *Figure) Save(path string) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	p, err := f.Plot()
	if err != nil {
		return err
	}
	w, h := f.Dimensions(p)
	return p.Save(w, h, path)
}

// FormatOf returns the image format implied by path's extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("unsupported output format %q for %s", ext, path)
	}
	return ext, nil
}
