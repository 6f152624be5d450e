package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

var (
	PassStyle    = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	FailStyle    = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	SkipStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
	HashStyle    = lipgloss.NewStyle().Foreground(ColorCyan)
	SubjectStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	DetailStyle  = lipgloss.NewStyle().Foreground(ColorYellow)
)

// DisableColors forces plain output, for CI logs and --no-color
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
