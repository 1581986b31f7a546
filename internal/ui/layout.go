package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout centres the frame panel in the space between the menu bar
// on top and the status bar on the bottom.
func ComposeLayout(menuBar, panel, statusBar string, width, height int) string {
	bodyH := height - lipgloss.Height(menuBar) - lipgloss.Height(statusBar)
	if bodyH < lipgloss.Height(panel) {
		bodyH = lipgloss.Height(panel)
	}
	middle := lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, panel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
