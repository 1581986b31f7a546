package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, fps float64, frame uint64, stars int, period time.Duration, colorMode string) string {
	info := fmt.Sprintf("FPS: %.1f  Frame: %d  Stars: %d  Period: %s  Color: %s",
		fps, frame, stars, period, colorMode)

	gap := width - StyleStatusBar.GetHorizontalFrameSize() - lipgloss.Width(info)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(info + strings.Repeat(" ", gap))
}
