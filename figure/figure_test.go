package figure

import (
	"bytes"
	"image"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"berkotech.co/circles/circles"
	"gonum.org/v1/plot/vg"
)

func exerciseFigure(t *testing.T) *Figure {
	t.Helper()
	s, err := circles.Generate(circles.DefaultSamples)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	f, err := New(s.Curves(), DefaultOptions())
	if err != nil {
		t.Fatalf("new figure: %v", err)
	}
	return f
}

func TestParseColor_Palette(t *testing.T) {
	red, err := ParseColor("darkred")
	if err != nil {
		t.Fatalf("darkred: %v", err)
	}
	if red.R != 0x8b || red.G != 0 || red.B != 0 {
		t.Fatalf("unexpected darkred %v", red)
	}
	green, err := ParseColor("DarkGreen")
	if err != nil {
		t.Fatalf("darkgreen: %v", err)
	}
	if green.R != 0 || green.G != 0x64 || green.B != 0 {
		t.Fatalf("unexpected darkgreen %v", green)
	}
	hex, err := ParseColor("#8b0000")
	if err != nil || hex != red {
		t.Fatalf("expected #8b0000 to equal darkred, got %v (%v)", hex, err)
	}
	steel, err := ParseColor("SteelBlue")
	if err != nil {
		t.Fatalf("steelblue: %v", err)
	}
	if steel.R != 70 || steel.G != 130 || steel.B != 180 {
		t.Fatalf("unexpected steelblue %v", steel)
	}
	if _, err := ParseColor("chartreuse-ish"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}

func TestNew_RejectsPaletteMismatch(t *testing.T) {
	s, _ := circles.Generate(10)
	opts := DefaultOptions()
	opts.Colors = opts.Colors[:1]
	if _, err := New(s.Curves(), opts); err == nil {
		t.Fatalf("expected error for one color and two curves")
	}
}

func TestNew_RejectsSizeBelowMinimum(t *testing.T) {
	s, _ := circles.Generate(10)
	opts := DefaultOptions()
	opts.Size = MinSize - vg.Points(1)
	if _, err := New(s.Curves(), opts); err == nil {
		t.Fatalf("expected error for size below %v", MinSize)
	}
}

func TestLegend_TwoEntriesInOrder(t *testing.T) {
	f := exerciseFigure(t)
	entries := f.Legend()
	if len(entries) != 2 {
		t.Fatalf("expected 2 legend entries, got %d", len(entries))
	}
	red, _ := ParseColor("darkred")
	green, _ := ParseColor("darkgreen")
	if entries[0].Color != red || entries[1].Color != green {
		t.Fatalf("expected darkred then darkgreen, got %v and %v", entries[0].Color, entries[1].Color)
	}
	if entries[0].Label != "r = 1" || entries[1].Label != "r = 2" {
		t.Fatalf("unexpected labels %q, %q", entries[0].Label, entries[1].Label)
	}
}

func TestLimits_EqualAndPadded(t *testing.T) {
	f := exerciseFigure(t)
	xmin, xmax, ymin, ymax := f.Limits()
	if math.Abs((xmax-xmin)-(ymax-ymin)) > 1e-12 {
		t.Fatalf("expected equal spans, got x=%v y=%v", xmax-xmin, ymax-ymin)
	}
	for _, s := range f.Series {
		for _, p := range s.XYs {
			if p.X <= xmin || p.X >= xmax || p.Y <= ymin || p.Y >= ymax {
				t.Fatalf("point %v touches the plot boundary", p)
			}
		}
	}
	if math.Abs(xmax-2.2) > 1e-3 || math.Abs(xmin+2.2) > 1e-3 {
		t.Fatalf("expected x limits near ±2.2, got [%v, %v]", xmin, xmax)
	}
}

func TestDimensions_EqualAspect(t *testing.T) {
	f := exerciseFigure(t)
	p, err := f.Plot()
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	w, h := f.Dimensions(p)
	if h != DefaultSize {
		t.Fatalf("expected height %v, got %v", DefaultSize, h)
	}
	if got := Aspect(p, w, h); math.Abs(got-1) > 1e-6 {
		t.Fatalf("expected aspect 1, got %v", got)
	}
	if got := Aspect(p, 2*w, h); math.Abs(got-1) < 1e-3 {
		t.Fatalf("expected a stretched canvas to change the aspect, got %v", got)
	}
}

func TestDimensions_EqualAspectAtMinimumSizeWithTitle(t *testing.T) {
	f := exerciseFigure(t)
	f.Title = "Legends and scaling"
	f.Size = MinSize
	p, err := f.Plot()
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	w, h := f.Dimensions(p)
	if got := Aspect(p, w, h); math.Abs(got-1) > 1e-6 {
		t.Fatalf("expected aspect 1 at %v, got %v", h, got)
	}
}

func TestWriteTo_SVGLegendEntries(t *testing.T) {
	f := exerciseFigure(t)
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, "svg"); err != nil {
		t.Fatalf("write svg: %v", err)
	}
	svg := buf.String()
	for _, label := range []string{"r = 1", "r = 2"} {
		if n := strings.Count(svg, label); n != 1 {
			t.Fatalf("expected legend label %q once in the svg, found %d", label, n)
		}
	}
	if strings.Index(svg, "r = 1") > strings.Index(svg, "r = 2") {
		t.Fatalf("expected legend entry r = 1 before r = 2")
	}
}

func TestWriteTo_PNG(t *testing.T) {
	f := exerciseFigure(t)
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, "png"); err != nil {
		t.Fatalf("write png: %v", err)
	}
	img, format, err := image.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png, got %s", format)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("empty image %v", b)
	}
}

func TestWriteTo_UnsupportedFormat(t *testing.T) {
	f := exerciseFigure(t)
	if _, err := f.WriteTo(&bytes.Buffer{}, "bmp"); err == nil {
		t.Fatalf("expected error for bmp")
	}
}

func TestSave_FileByExtension(t *testing.T) {
	f := exerciseFigure(t)
	f.Size = 3 * vg.Inch
	path := filepath.Join(t.TempDir(), "circles.svg")
	if err := f.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("expected svg document")
	}
	if err := f.Save(filepath.Join(t.TempDir(), "circles.txt")); err == nil {
		t.Fatalf("expected error for .txt")
	}
}
