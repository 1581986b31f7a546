package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"oledstats.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar with the active mode and the time
// left until the next flip.
func RenderMenuBar(width int, mode string, remaining time.Duration) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"M", "ode"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	modeSty := StyleModeStats
	if mode == "screensaver" {
		modeSty = StyleModeSaver
	}
	status := modeSty.Render(strings.ToUpper(mode))
	countdown := StyleCountdown.Render(fmt.Sprintf("next in %s", remaining.Round(time.Second)))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + countdown + " "

	gap := width - StyleMenuBar.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
