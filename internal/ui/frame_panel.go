package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Half-block glyphs: one terminal cell shows two vertically stacked pixels.
const (
	glyphNone   = " "
	glyphTop    = "▀"
	glyphBottom = "▄"
	glyphBoth   = "█"
)

// RenderFramePanel draws a panel frame inside a rounded border. A nil frame
// renders as a blank panel of the given size.
func RenderFramePanel(frame image.Image, width, height int, rgb bool) string {
	var body string
	if frame == nil {
		body = blankFrame(width, height)
	} else if rgb {
		body = renderRGB(frame)
	} else {
		body = renderMono(frame)
	}
	return StylePanelBorder.Render(body)
}

func blankFrame(width, height int) string {
	rows := (height + 1) / 2
	line := strings.Repeat(" ", width)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// renderMono maps each pair of rows to half-block glyphs in the panel green.
func renderMono(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var row strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			row.WriteString(MonoGlyph(lit(img, x, y), y+1 < b.Max.Y && lit(img, x, y+1)))
		}
		sb.WriteString(StylePixel.Render(row.String()))
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// renderRGB uses the upper half block with the top pixel as foreground and
// the bottom pixel as background.
func renderRGB(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			sty := lipgloss.NewStyle().Foreground(hexColor(img, x, y))
			if y+1 < b.Max.Y {
				sty = sty.Background(hexColor(img, x, y+1))
			}
			sb.WriteString(sty.Render(glyphTop))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// MonoGlyph picks the half-block glyph for a top/bottom pixel pair.
func MonoGlyph(top, bottom bool) string {
	switch {
	case top && bottom:
		return glyphBoth
	case top:
		return glyphTop
	case bottom:
		return glyphBottom
	default:
		return glyphNone
	}
}

func lit(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r|g|b >= 0x8000
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}
