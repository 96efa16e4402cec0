package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesBorder, yesText, yesIcon lipgloss.Color
	var noBorder, noText, noIcon lipgloss.Color

	if selection == 0 {
		yesBorder = ColorGreen
		yesText = ColorGreen
		yesIcon = ColorGreen
	} else {
		yesBorder = ColorDarkGray
		yesText = ColorWhite
		yesIcon = ColorDarkGray
	}

	if selection == 1 {
		noBorder = ColorRed
		noText = ColorRed
		noIcon = ColorRed
	} else {
		noBorder = ColorDarkGray
		noText = ColorWhite
		noIcon = ColorDarkGray
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesBorder)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesText).Bold(true)
	yesIconStyle := lipgloss.NewStyle().Foreground(yesIcon)

	noStyle := lipgloss.NewStyle().Foreground(noBorder)
	noTextStyle := lipgloss.NewStyle().Foreground(noText).Bold(true)
	noIconStyle := lipgloss.NewStyle().Foreground(noIcon)

	// Build buttons
	var iconYes, iconNo string
	if selection == 0 {
		iconYes = ">"
	} else {
		iconYes = " "
	}
	if selection == 1 {
		iconNo = ">"
	} else {
		iconNo = " "
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := fmt.Sprintf("%s%s%s %s%s%s",
		yesStyle.Render("  │"),
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", yesIconStyle.Render(iconYes))),
		yesStyle.Render("│"),
		noStyle.Render("│"),
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", noIconStyle.Render(iconNo))),
		noStyle.Render("│"),
	)
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Checkbox renders a checkbox in the given state
func Checkbox(checked bool) string {
	if checked {
		return "[✓]"
	}
	return "[ ]"
}

// CheckboxStyled renders a styled checkbox
func CheckboxStyled(checked bool, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(Checkbox(checked))
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// ArrowStyled returns a styled arrow indicator
func ArrowStyled(selected bool, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(Arrow(selected))
}

// ProgressBar creates a progress bar
func ProgressBar(current, total int, width int) string {
	if total == 0 {
		return ""
	}

	progress := float64(current) / float64(total)
	filled := int(progress * float64(width))
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	barStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	percentStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		barStyle.Render(fmt.Sprintf("[%s]", bar)),
		percentStyle.Render(fmt.Sprintf("%d%%", percentage)),
	)
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the appropriate status icon and color
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "committed", "success":
		return "✓", ColorGreen
	case "pushed":
		return "⇡", ColorBlue
	case "skipped":
		return "⊘", ColorYellow
	case "failed", "error":
		return "✗", ColorRed
	case "loading":
		return "⏳", ColorYellow
	default:
		return "·", ColorWhite
	}
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MenuInfoPanel returns the ASCII art and description for a menu item
func MenuInfoPanel(index int) (title string, lines []string) {
	switch index {
	case 0: // Commit
		title = "Commit Changes"
		boxStyle := lipgloss.NewStyle().Foreground(ColorCyan)
		textStyle := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
		lines = []string{
			"",
			boxStyle.Render("     ○───○───") + textStyle.Render("●") + boxStyle.Render("  HEAD"),
			"",
			"  • Pick files with checkboxes",
			"  • Suggested commit message",
			"  • Amend the previous commit",
			"  • Optionally push afterwards",
		}
	case 1: // Preflight
		title = "Preflight Check"
		okStyle := lipgloss.NewStyle().Foreground(ColorGreen)
		warnStyle := lipgloss.NewStyle().Foreground(ColorYellow)
		lines = []string{
			"",
			okStyle.Render("     ✓ repository detected"),
			okStyle.Render("     ✓ git client available"),
			warnStyle.Render("     ⊘ no files selected"),
			"",
			"  • Runs every check, reports all",
			"  • Nothing is staged or committed",
		}
	case 2: // History
		title = "Session History"
		hashStyle := lipgloss.NewStyle().Foreground(ColorYellow)
		lines = []string{
			"",
			hashStyle.Render("     a1b2c3d") + " fix(api): handle nil body",
			hashStyle.Render("     d4e5f6a") + " docs(docs): update documentation",
			"",
			"  • Commits made in the last 24h",
			"  • Stored locally, pruned on load",
		}
	default: // Quit
		title = "Quit"
		lines = []string{
			"",
			"  Exit the application",
		}
	}
	return title, lines
}

// Box creates a bordered box with optional title
func Box(content string, title string, borderColor lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	if title != "" {
		style = style.BorderTop(true)
	}

	return style.Render(content)
}

// UnifiedPanel creates two columns with a vertical separator (no border - outer border is in View)
func UnifiedPanel(leftContent, rightContent string, leftWidth, rightWidth int, borderColor lipgloss.Color) string {
	leftStyle := lipgloss.NewStyle().Width(leftWidth).Padding(0, 1)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Padding(0, 1)

	leftCol := leftStyle.Render(leftContent)
	rightCol := rightStyle.Render(rightContent)

	// Build vertical separator to match column height
	separatorStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	separator := separatorStyle.Render("│")

	leftLines := strings.Split(leftCol, "\n")
	rightLines := strings.Split(rightCol, "\n")
	maxLines := len(leftLines)
	if len(rightLines) > maxLines {
		maxLines = len(rightLines)
	}
	var sepLines []string
	for i := 0; i < maxLines; i++ {
		sepLines = append(sepLines, separator)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, strings.Join(sepLines, "\n"), rightCol)
}

// ColumnBox creates a bordered column with title for two-column layouts
// If height > 0, content is padded/truncated to exactly that many lines
func ColumnBox(content string, title string, color lipgloss.Color, isActive bool, width int, height int) string {
	borderColor := color
	if !isActive {
		borderColor = ColorDarkGray
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width)

	var fullContent string
	if title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
		fullContent = titleStyle.Render(" "+title+" ") + "\n" + content
	} else {
		fullContent = content
	}

	// Manually pad/truncate to fixed height
	if height > 0 {
		lines := strings.Split(fullContent, "\n")
		if len(lines) < height {
			for len(lines) < height {
				lines = append(lines, "")
			}
		} else if len(lines) > height {
			lines = lines[:height]
		}
		fullContent = strings.Join(lines, "\n")
	}

	return style.Render(fullContent)
}

// FilterInput renders a search/filter input box
// If width > 0, the box will have a fixed width
func FilterInput(filter string, title string, color lipgloss.Color, width int) string {
	var filterDisplay string
	if filter == "" {
		filterDisplay = lipgloss.NewStyle().Foreground(ColorDarkGray).Render("Type to filter...")
	} else {
		filterDisplay = lipgloss.NewStyle().Foreground(ColorYellow).Render(filter)
	}

	cursor := lipgloss.NewStyle().Foreground(ColorYellow).Render("█")
	searchIcon := lipgloss.NewStyle().Foreground(ColorCyan).Render(" 🔍 ")

	content := searchIcon + filterDisplay + cursor

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	if width > 0 {
		style = style.Width(width)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	return style.Render(titleStyle.Render(title) + "\n" + content)
}

// FileListItem renders a single pending change with checkbox and type label
func FileListItem(path string, changeType models.ChangeType, selected bool, highlighted bool) string {
	color := ChangeColor(changeType)
	checkbox := Checkbox(selected)
	arrow := Arrow(highlighted)

	var nameStyle lipgloss.Style
	if highlighted {
		nameStyle = lipgloss.NewStyle().Foreground(color).Bold(true)
	} else if selected {
		nameStyle = lipgloss.NewStyle().Foreground(color)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(ColorWhite)
	}

	arrowStyle := lipgloss.NewStyle().Foreground(color)
	checkStyle := lipgloss.NewStyle().Foreground(color)
	typeStyle := lipgloss.NewStyle().Foreground(color)

	return fmt.Sprintf("%s%s %s %s",
		arrowStyle.Render(arrow),
		checkStyle.Render(checkbox),
		typeStyle.Render(fmt.Sprintf("%-10s", changeType)),
		nameStyle.Render(path),
	)
}

// MenuRow renders a menu row with optional highlight background
// width should be the inner width of the panel (excluding border)
func MenuRow(icon, title, desc string, color lipgloss.Color, selected bool, width int) []string {
	arrow := "  "
	if selected {
		arrow = "▶ "
	}

	if selected {
		// For selected items, render the whole line with background
		rowStyle := lipgloss.NewStyle().Background(ColorDarkGray).Width(width)
		arrowStyle := lipgloss.NewStyle().Foreground(color).Background(ColorDarkGray)
		iconStyle := lipgloss.NewStyle().Background(ColorDarkGray)
		titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Background(ColorDarkGray)
		descStyle := lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorDarkGray)

		line1 := rowStyle.Render(arrowStyle.Render(arrow) + iconStyle.Render(icon+"  ") + titleStyle.Render(title))
		line2 := rowStyle.Render("       " + descStyle.Render(desc))

		return []string{line1, line2}
	}

	// Non-selected items - no background
	arrowStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	line1 := arrowStyle.Render(arrow) + icon + "  " + titleStyle.Render(title)
	line2 := "       " + descStyle.Render(desc)

	return []string{line1, line2}
}
