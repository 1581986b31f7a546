package display

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// DefaultFace is the bitmap font used for all text.
var DefaultFace font.Face = basicfont.Face7x13

// Canvas is an off-screen frame. Monochrome canvases use the SSD1306 packed
// layout so they can be sent to the panel without conversion.
type Canvas struct {
	img  draw.Image
	mode ColorMode
	face font.Face
}

// NewCanvas allocates a blank frame of the given size.
func NewCanvas(width, height int, mode ColorMode) *Canvas {
	r := image.Rect(0, 0, width, height)
	var img draw.Image
	if mode == RGB {
		img = image.NewRGBA(r)
	} else {
		img = image1bit.NewVerticalLSB(r)
	}
	c := &Canvas{img: img, mode: mode, face: DefaultFace}
	c.Clear()
	return c
}

// Image returns the backing image. It is overwritten by the next Render.
func (c *Canvas) Image() image.Image { return c.img }

// Mode returns the canvas colour mode.
func (c *Canvas) Mode() ColorMode { return c.mode }

// Clear paints the whole frame black.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
}

// Render clears the frame and paints every drawable in order.
func (c *Canvas) Render(drawables []Drawable) image.Image {
	c.Clear()
	for _, d := range drawables {
		d.Paint(c)
	}
	return c.img
}

// Paint fills the rectangle, clipped to the canvas.
func (r Rect) Paint(c *Canvas) {
	x0, x1 := int(math.Floor(r.X0)), int(math.Floor(r.X1))
	y0, y1 := int(math.Floor(r.Y0)), int(math.Floor(r.Y1))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	area := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.img.Bounds())
	if area.Empty() {
		return
	}
	fill := r.Fill
	if fill == nil {
		fill = Foreground
	}
	draw.Draw(c.img, area, image.NewUniform(fill), image.Point{}, draw.Src)
}

// Paint draws the text with its top edge at Y.
func (t Text) Paint(c *Canvas) {
	fill := t.Fill
	if fill == nil {
		fill = Foreground
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fill),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.I(t.X), Y: fixed.I(t.Y) + c.face.Metrics().Ascent},
	}
	d.DrawString(t.Value)
}

// TextWidth returns the advance of s in pixels using DefaultFace.
func TextWidth(s string) int {
	return font.MeasureString(DefaultFace, s).Ceil()
}

// LineHeight returns the distance between consecutive text lines.
func LineHeight() int {
	return DefaultFace.Metrics().Height.Ceil()
}
