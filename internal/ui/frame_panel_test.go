package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMonoGlyph(t *testing.T) {
	cases := []struct {
		top, bottom bool
		want        string
	}{
		{false, false, " "},
		{true, false, "▀"},
		{false, true, "▄"},
		{true, true, "█"},
	}
	for _, c := range cases {
		if got := MonoGlyph(c.top, c.bottom); got != c.want {
			t.Errorf("MonoGlyph(%v,%v): expected %q, got %q", c.top, c.bottom, c.want, got)
		}
	}
}

func TestRenderFramePanel_Size(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	img.Set(3, 2, color.White)

	out := RenderFramePanel(img, 16, 8, false)

	// 8 pixel rows fold into 4 text rows, plus the border.
	if h := lipgloss.Height(out); h != 6 {
		t.Errorf("expected height 6, got %d", h)
	}
	if w := lipgloss.Width(out); w != 18 {
		t.Errorf("expected width 18, got %d", w)
	}
	if !strings.Contains(out, "▀") {
		t.Error("expected a top half block for the lit pixel")
	}
}

func TestRenderFramePanel_NilFrame(t *testing.T) {
	out := RenderFramePanel(nil, 10, 5, true)
	if h := lipgloss.Height(out); h != 5 {
		t.Errorf("expected 3 rows plus border, got height %d", h)
	}
}

func TestRenderMenuBar_ShowsMode(t *testing.T) {
	out := RenderMenuBar(80, "screensaver", 0)
	if !strings.Contains(out, "SCREENSAVER") {
		t.Errorf("expected mode in menu bar, got %q", out)
	}
}
