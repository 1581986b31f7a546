package display

import (
	"image/color"
	"testing"
)

func lit(c *Canvas, x, y int) bool {
	r, g, b, _ := c.Image().At(x, y).RGBA()
	return r|g|b != 0
}

func TestCanvas_RectInclusiveTruncated(t *testing.T) {
	c := NewCanvas(128, 64, Monochrome)
	c.Render([]Drawable{Rect{X0: 64, Y0: 32, X1: 67.68, Y1: 35.68}})

	for x := 64; x <= 67; x++ {
		for y := 32; y <= 35; y++ {
			if !lit(c, x, y) {
				t.Errorf("expected pixel (%d,%d) lit", x, y)
			}
		}
	}
	if lit(c, 68, 32) || lit(c, 64, 36) || lit(c, 63, 32) {
		t.Error("expected rectangle to stop at truncated corners")
	}
}

func TestCanvas_RectZeroSizeIsOnePixel(t *testing.T) {
	c := NewCanvas(16, 16, Monochrome)
	c.Render([]Drawable{Rect{X0: 3, Y0: 4, X1: 3, Y1: 4}})
	if !lit(c, 3, 4) {
		t.Error("expected single pixel for zero-size rect")
	}
	if lit(c, 4, 4) || lit(c, 3, 5) {
		t.Error("expected only one pixel lit")
	}
}

func TestCanvas_RectClipped(t *testing.T) {
	c := NewCanvas(8, 8, RGB)
	c.Render([]Drawable{Rect{X0: 6, Y0: 6, X1: 20, Y1: 20, Fill: color.RGBA{200, 200, 200, 255}}})
	if !lit(c, 7, 7) {
		t.Error("expected corner pixel lit")
	}
}

func TestCanvas_RGBShade(t *testing.T) {
	c := NewCanvas(8, 8, RGB)
	c.Render([]Drawable{Rect{X0: 1, Y0: 1, X1: 1, Y1: 1, Fill: color.RGBA{242, 242, 242, 255}}})
	got := c.Image().At(1, 1).(color.RGBA)
	if got.R != 242 || got.G != 242 || got.B != 242 {
		t.Errorf("expected shade 242, got %v", got)
	}
}

func TestCanvas_RenderClearsPreviousFrame(t *testing.T) {
	c := NewCanvas(8, 8, Monochrome)
	c.Render([]Drawable{Rect{X0: 0, Y0: 0, X1: 7, Y1: 7}})
	c.Render(nil)
	if lit(c, 3, 3) {
		t.Error("expected blank frame after empty render")
	}
}

func TestCanvas_TextPaintsPixels(t *testing.T) {
	c := NewCanvas(64, 16, Monochrome)
	c.Render([]Drawable{Text{X: 0, Y: 0, Value: "GPU"}})
	found := false
	for x := 0; x < 21 && !found; x++ {
		for y := 0; y < 13; y++ {
			if lit(c, x, y) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected text to light some pixels")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("GPU:  "); got != 42 {
		t.Errorf("expected 42px for six 7px glyphs, got %d", got)
	}
}
