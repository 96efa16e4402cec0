package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan       = lipgloss.Color("#00FFFF")
	ColorGreen      = lipgloss.Color("#00FF00")
	ColorYellow     = lipgloss.Color("#FFFF00")
	ColorRed        = lipgloss.Color("#FF0000")
	ColorMagenta    = lipgloss.Color("#FF00FF")
	ColorBlue       = lipgloss.Color("#5555FF")
	ColorPurple     = lipgloss.Color("#AA55FF")
	ColorOrange     = lipgloss.Color("#FFA500")
	ColorLightGreen = lipgloss.Color("#90EE90")
	ColorWhite      = lipgloss.Color("#FFFFFF")
	ColorDarkGray   = lipgloss.Color("8") // ANSI 8 - matches ratatui's DarkGray
)

// ChangeColor maps a change type to its display color
func ChangeColor(t models.ChangeType) lipgloss.Color {
	switch t {
	case models.ChangeAdded, models.ChangeUntracked, models.ChangeIntentToAdd:
		return ColorGreen
	case models.ChangeDeleted:
		return ColorRed
	case models.ChangeRenamed, models.ChangeCopied:
		return ColorBlue
	case models.ChangeConflict:
		return ColorMagenta
	case models.ChangeIgnored:
		return ColorDarkGray
	default:
		return ColorYellow
	}
}
