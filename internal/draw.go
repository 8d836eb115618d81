package internal

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Rendering of a decomposition, for the CLI and for debugging. Pieces are
// filled from a rotating palette and outlined; reflex vertices and Steiner
// points are marked on top.

type RenderStyle struct {
	// Pixels per unit
	Scale float64
	// Pixels around the shape
	Padding int
	Palette []color.Color
	// Draw the piece index at the centroid of each piece
	Labels bool
	// If positive, Scale is reduced as needed so that neither side of the image
	// exceeds this many pixels
	MaxSize int
}

var DefaultPalette = []color.Color{
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x00, 0xff},
	color.RGBA{0xff, 0x00, 0xff, 0xff},
	color.RGBA{0x00, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x87, 0x00, 0xff},
}

func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		Scale:   50,
		Padding: 20,
		MaxSize: 2048,
		Palette: DefaultPalette,
		Labels:  true,
	}
}

func (poly Polygon) centroid() Point {
	var c Point
	for _, p := range poly.Points {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(poly.Points))
	return Point{X: c.X / n, Y: c.Y / n}
}

func (poly Polygon) tracePath(c *gg.Context) {
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Render draws the decomposition into a new context. The y axis points up.
func (d *Decomposition) Render(style RenderStyle) *gg.Context {
	if style.Scale <= 0 {
		style.Scale = 1
	}
	if len(style.Palette) == 0 {
		style.Palette = DefaultPalette
	}

	minX, minY, maxX, maxY := d.Polygons.bounds()
	if len(d.Polygons) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	if room := style.MaxSize - style.Padding*2; style.MaxSize > 0 && room > 0 {
		extent := math.Max(maxX-minX, maxY-minY)
		if style.Scale*extent > float64(room) {
			style.Scale = float64(room) / extent
		}
	}

	// Set up the context
	width := int(style.Scale*(maxX-minX)) + style.Padding*2
	height := int(style.Scale*(maxY-minY)) + style.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale and
	// move the minimum corner to the origin
	c.Push()
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(style.Padding), float64(style.Padding))
	c.Scale(style.Scale, style.Scale)
	c.Translate(-minX, -minY)

	for i, poly := range d.Polygons {
		poly.tracePath(c)
		c.SetColor(style.Palette[i%len(style.Palette)])
		c.Fill()
	}

	// Line widths are in user space, so undo the scale
	c.SetLineWidth(3 / style.Scale)
	c.SetRGB(1, 1, 1)
	for _, poly := range d.Polygons {
		poly.tracePath(c)
		c.Stroke()
	}

	markerRadius := 5 / style.Scale
	c.SetRGB(1, 1, 1)
	for _, p := range d.ReflexVertices {
		c.DrawCircle(p.X, p.Y, markerRadius)
		c.Fill()
	}
	c.SetRGB(0, 0, 0)
	for _, p := range d.SteinerPoints {
		c.DrawCircle(p.X, p.Y, markerRadius)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
		c.SetRGB(0, 0, 0)
	}

	// Text has to be drawn without the flip, so transform the anchor points
	// first
	type label struct {
		x, y float64
		text string
	}
	var labels []label
	if style.Labels {
		for i, poly := range d.Polygons {
			center := poly.centroid()
			x, y := c.TransformPoint(center.X, center.Y)
			labels = append(labels, label{x, y, strconv.Itoa(i)})
		}
	}
	c.Pop()

	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(0, 0, 0)
	for _, l := range labels {
		c.DrawStringAnchored(l.text, l.x, l.y, 0.5, 0.5)
	}
	return c
}

// Helper to draw a decomposition and print it in the terminal (iTerm only) for
// debugging.
func (d *Decomposition) dbgDraw(scale float64) {
	path := filepath.Join(os.TempDir(), "decomposition.png")
	if err := d.dbgDrawTo(path, os.Stdout, scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func (d *Decomposition) dbgDrawTo(path string, w io.Writer, scale float64) error {
	style := DefaultRenderStyle()
	style.Scale = scale
	c := d.Render(style)

	if err := c.SavePNG(path); err != nil {
		return errors.Wrap(err, "save png")
	}
	return errors.Wrap(imgcat.CatFile(path, w), "imgcat")
}
