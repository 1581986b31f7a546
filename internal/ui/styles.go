package ui

import "github.com/charmbracelet/lipgloss"

// Matrix color palette
var (
	ColorMatrixGreen = lipgloss.Color("#00FF41")
	ColorGreen       = lipgloss.Color("#00CC33")
	ColorMidGreen    = lipgloss.Color("#008F11")
	ColorDimGreen    = lipgloss.Color("#004A0A")
	ColorBlack       = lipgloss.Color("#000000")
	ColorBorderNorm  = lipgloss.Color("#00AA22")
	ColorWarning     = lipgloss.Color("#FFAA00")
	ColorSaver       = lipgloss.Color("#66CCFF")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleModeStats = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleModeSaver = lipgloss.NewStyle().
			Foreground(ColorSaver).
			Bold(true)

	StyleCountdown = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePixel = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
