package app

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/ui"
	"github.com/wahlandcase/attuned.quickcommit/internal/update"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// relPath renders a record path relative to the repository root
func (m Model) relPath(path string) string {
	if m.repoInfo == nil {
		return path
	}
	rel, err := filepath.Rel(m.repoInfo.Path, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	// Calculate fixed element heights
	bannerLines := len(ui.Banner) // 5 lines
	if m.dryRun {
		bannerLines += 2 // dry run warning
	}
	statusHeight := 3 // status bar with border

	// Available height for content = total - banner - gaps - status
	availableHeight := m.height - bannerLines - 3 - statusHeight
	if availableHeight < 10 {
		availableHeight = 10
	}

	var sections []string

	// Banner
	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	// Use fixed content width for stable layout
	contentWidth := m.contentWidth()

	// Screens that manage their own full layout (no outer box)
	fullLayoutScreens := m.screen == ScreenLoading ||
		m.screen == ScreenFileSelect ||
		m.screen == ScreenDiffView

	if fullLayoutScreens {
		sections = append(sections, m.renderContentWithHeight(availableHeight))
	} else {
		// Standard outer box for simpler screens - always use fixed width
		outerBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorPurple).
			Width(contentWidth).
			Padding(1, 2)

		sections = append(sections, outerBox.Render(m.renderContentWithHeight(availableHeight)))
	}

	// Status bar
	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContentWithHeight(availableHeight int) string {
	switch m.screen {
	case ScreenMainMenu:
		return m.renderMainMenu()
	case ScreenLoading:
		return m.renderLoading()
	case ScreenFileSelect:
		return m.renderFileSelectWithHeight(availableHeight)
	case ScreenDiffView:
		return m.renderDiffViewWithHeight(availableHeight)
	case ScreenMessageInput:
		return m.renderMessageInput()
	case ScreenConfirmation:
		return m.renderConfirmation()
	case ScreenCommitting:
		return m.renderCommitting()
	case ScreenComplete:
		return m.renderComplete()
	case ScreenPreflight:
		return m.renderPreflight()
	case ScreenError:
		return m.renderError()
	case ScreenUpdatePrompt:
		return m.renderUpdatePrompt()
	case ScreenUpdating:
		return m.renderUpdating()
	case ScreenSessionHistory:
		return m.renderSessionHistory()
	default:
		return ""
	}
}

func (m Model) renderMainMenu() string {
	menuItems := []struct {
		icon  string
		title string
		desc  string
		color lipgloss.Color
	}{
		{"1.", "COMMIT", "Select files and commit", ui.ColorCyan},
		{"2.", "PREFLIGHT", "Check commit readiness", ui.ColorYellow},
		{"3.", "HISTORY", "Commits from this session", ui.ColorMagenta},
		{"4.", "QUIT", "Exit application", ui.ColorRed},
	}

	// Build left column (menu) content
	var menuLines []string
	menuLines = append(menuLines, "")
	for i, item := range menuItems {
		rows := ui.MenuRow(item.icon, item.title, item.desc, item.color, i == m.menuIndex, 46)
		menuLines = append(menuLines, rows...)
		menuLines = append(menuLines, "")
	}

	menuTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorOrange)
	menuContent := menuTitleStyle.Render(" Select Action ") + "\n" + strings.Join(menuLines, "\n")

	// Build right column (info panel)
	infoTitle, infoLines := ui.MenuInfoPanel(m.menuIndex)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWhite)
	infoContent := titleStyle.Render(" "+infoTitle+" ") + "\n" + strings.Join(infoLines, "\n")

	return ui.UnifiedPanel(menuContent, infoContent, 48, 48, ui.ColorCyan)
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	spinner := ui.Spinner(m.spinnerFrame)
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)

	loadingText := fmt.Sprintf("%s %s", spinnerStyle.Render(spinner), textStyle.Render(message))

	// Center the text within the box
	innerWidth := m.contentWidth() - 6
	centeredStyle := lipgloss.NewStyle().Width(innerWidth).Align(lipgloss.Center)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "")
	lines = append(lines, centeredStyle.Render(loadingText))
	lines = append(lines, "")
	lines = append(lines, "")

	content := strings.Join(lines, "\n")

	// Purple border box
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(m.contentWidth()).
		Padding(1, 2)

	return boxStyle.Render(content)
}

func (m Model) renderFileSelectWithHeight(availableHeight int) string {
	width := m.contentWidth()
	filtered := m.filteredFileIndexes()

	var sections []string

	// Repo header line
	if m.repoInfo != nil {
		labelStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
		branchStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
		sections = append(sections,
			labelStyle.Render("  Repo: ")+repoStyle.Render(m.repoInfo.DisplayName)+
				labelStyle.Render("  Branch: ")+branchStyle.Render(m.repoInfo.Branch))
	}

	// Filter input
	sections = append(sections, ui.FilterInput(m.fileFilter, " Filter ", ui.ColorYellow, width))

	// File list
	var listLines []string
	selectedCount := 0
	for _, sel := range m.fileSelected {
		if sel {
			selectedCount++
		}
	}

	if len(m.records) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		listLines = append(listLines, "")
		listLines = append(listLines, dimStyle.Render("  No pending changes"))
	} else if len(filtered) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		listLines = append(listLines, "")
		listLines = append(listLines, dimStyle.Render("  No files match the filter"))
	} else {
		for pos, idx := range filtered {
			rec := m.records[idx]
			selected := idx < len(m.fileSelected) && m.fileSelected[idx]
			listLines = append(listLines, ui.FileListItem(m.relPath(rec.Path), rec.Type, selected, pos == m.fileIndex))
		}
	}

	listHeight := availableHeight - 9
	if listHeight < 6 {
		listHeight = 6
	}
	listContent := applyViewportScroll(listLines, 0, m.fileIndex, listHeight)

	title := fmt.Sprintf(" Pending Changes (%d selected of %d) ", selectedCount, len(m.records))
	sections = append(sections, ui.ColumnBox(listContent, title, ui.ColorCyan, true, width-2, listHeight+1))

	if selectedCount == 0 && len(m.records) > 0 {
		hintStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		sections = append(sections, hintStyle.Render("  Nothing selected: committing will include all pending changes"))
	}

	return strings.Join(sections, "\n")
}

func (m Model) renderDiffViewWithHeight(availableHeight int) string {
	width := m.contentWidth()

	lines := strings.Split(m.diffContent, "\n")

	// Colorize diff lines
	addStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen)
	delStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
	hunkStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	var rendered []string
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			rendered = append(rendered, addStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			rendered = append(rendered, delStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			rendered = append(rendered, hunkStyle.Render(line))
		default:
			rendered = append(rendered, line)
		}
	}

	viewHeight := availableHeight - 3
	if viewHeight < 8 {
		viewHeight = 8
	}

	// Manual scroll window
	start := m.diffScroll
	if start > len(rendered)-1 {
		start = len(rendered) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + viewHeight
	if end > len(rendered) {
		end = len(rendered)
	}

	visible := rendered[start:end]
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	var content []string
	if start > 0 {
		content = append(content, dimStyle.Render("  ▲ more above"))
	}
	content = append(content, visible...)
	if end < len(rendered) {
		content = append(content, dimStyle.Render("  ▼ more below"))
	}

	title := fmt.Sprintf(" Diff: %s ", m.relPath(m.diffPath))
	return ui.ColumnBox(strings.Join(content, "\n"), title, ui.ColorMagenta, true, width-2, viewHeight+2)
}

func (m Model) renderMessageInput() string {
	var lines []string

	// Repo context
	if m.repoInfo != nil {
		labelStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		valueStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
		branchStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
		lines = append(lines, labelStyle.Render("  Repo:   ")+valueStyle.Render(m.repoInfo.DisplayName))
		lines = append(lines, labelStyle.Render("  Branch: ")+branchStyle.Render(m.repoInfo.Branch))
	}

	selectedCount := len(m.selectedPaths())
	countStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	if selectedCount == 0 {
		lines = append(lines, countStyle.Render(fmt.Sprintf("  Files:  all %d pending changes", len(m.records))))
	} else {
		lines = append(lines, countStyle.Render(fmt.Sprintf("  Files:  %d selected", selectedCount)))
	}
	lines = append(lines, "")

	// Message input box
	titleSectionStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	lines = append(lines, titleSectionStyle.Render(" Commit Message "))
	lines = append(lines, "")

	borderStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	cursorStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

	var displayText string
	var textColor lipgloss.Color
	if m.commitMessage == "" {
		displayText = "type a message or press Ctrl+G to generate"
		textColor = ui.ColorDarkGray
	} else {
		displayText = m.commitMessage
		textColor = ui.ColorWhite
	}
	// Truncate display if too long (use rune count for proper Unicode width)
	innerWidth := 50
	maxLen := innerWidth - 1 // leave room for cursor
	displayRunes := utf8.RuneCountInString(displayText)
	if displayRunes > maxLen {
		// Truncate by runes, not bytes
		runes := []rune(displayText)
		displayText = string(runes[:maxLen])
		displayRunes = maxLen
	}
	textStyle := lipgloss.NewStyle().Foreground(textColor)
	padding := innerWidth - displayRunes - 1 // -1 for cursor

	lines = append(lines, borderStyle.Render("  ┌"+strings.Repeat("─", innerWidth)+"┐"))
	lines = append(lines, borderStyle.Render("  │")+textStyle.Render(displayText)+cursorStyle.Render("█")+strings.Repeat(" ", padding)+borderStyle.Render("│"))
	lines = append(lines, borderStyle.Render("  └"+strings.Repeat("─", innerWidth)+"┘"))
	lines = append(lines, "")

	// Generation state / hints
	if m.generating {
		spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
		lines = append(lines, spinnerStyle.Render(fmt.Sprintf("  %s Generating message...", ui.Spinner(m.spinnerFrame))))
	} else if m.messageHint != "" {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		lines = append(lines, warnStyle.Render("  ⚠ "+m.messageHint))
	}

	// Amend indicator
	if m.amend {
		amendStyle := lipgloss.NewStyle().Foreground(ui.ColorMagenta).Bold(true)
		lines = append(lines, amendStyle.Render("  ↻ Amending previous commit (staging skipped)"))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	return titleStyle.Render(" ✏️  Commit Message ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderConfirmation() string {
	var lines []string
	lines = append(lines, "")

	lines = append(lines, ui.SectionHeader("SUMMARY", ui.ColorMagenta))
	lines = append(lines, "")

	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	branchStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

	if m.repoInfo != nil {
		lines = append(lines, labelStyle.Render("  Repo:    ")+repoStyle.Render(m.repoInfo.DisplayName))
		lines = append(lines, labelStyle.Render("  Branch:  ")+branchStyle.Render(m.repoInfo.Branch))
	}
	lines = append(lines, labelStyle.Render("  Message: ")+msgStyle.Render(truncateString(m.commitMessage, 48)))

	selectedCount := len(m.selectedPaths())
	if selectedCount == 0 {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("  Files:   all %d pending changes", len(m.records))))
	} else {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("  Files:   %d selected", selectedCount)))
	}

	// Toggles
	onStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	pushState := offStyle.Render("no")
	if m.push {
		pushState = onStyle.Render("yes")
	}
	amendState := offStyle.Render("no")
	if m.amend {
		amendState = onStyle.Render("yes")
	}
	lines = append(lines, labelStyle.Render("  Push:    ")+pushState+offStyle.Render("  (p to toggle)"))
	lines = append(lines, labelStyle.Render("  Amend:   ")+amendState+offStyle.Render("  (a to toggle)"))
	lines = append(lines, "")

	promptStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)
	action := "Create this commit?"
	if m.push {
		action = "Create this commit and push?"
	}
	lines = append(lines, promptStyle.Render("  "+action))
	lines = append(lines, "")
	lines = append(lines, ui.YesNoButtons(m.confirmSelection))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	return titleStyle.Render(" Confirm ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderCommitting() string {
	var lines []string
	lines = append(lines, "")

	// Main status
	spinner := ui.Spinner(m.spinnerFrame)
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	statusStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	action := "Creating commit..."
	if m.push {
		action = "Creating commit and pushing..."
	}
	lines = append(lines, fmt.Sprintf("  %s %s", spinnerStyle.Render(spinner), statusStyle.Render(action)))
	lines = append(lines, "")

	// Details section
	if m.repoInfo != nil {
		lines = append(lines, ui.SectionHeader("DETAILS", ui.ColorMagenta))
		lines = append(lines, "")

		labelStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
		branchStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
		msgStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

		lines = append(lines, labelStyle.Render("  Repo:    ")+repoStyle.Render(m.repoInfo.DisplayName))
		lines = append(lines, labelStyle.Render("  Branch:  ")+branchStyle.Render(m.repoInfo.Branch))
		lines = append(lines, labelStyle.Render("  Message: ")+msgStyle.Render(truncateString(m.commitMessage, 48)))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	return titleStyle.Render(" Committing ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderComplete() string {
	var lines []string

	// Use pulsing green effect based on sine wave
	var successColor lipgloss.Color
	pulseIntensity := (math.Sin(m.pulsePhase) + 1.0) / 2.0
	if pulseIntensity > 0.5 {
		successColor = ui.ColorGreen
	} else {
		successColor = ui.ColorLightGreen
	}

	// Typewriter effect for message
	message := "Commit Created Successfully!"
	if m.result != nil && models.IsStatusPushed(m.result.Status) {
		message = "Commit Created and Pushed!"
	}
	revealedChars := m.typewriterPos
	if revealedChars > len(message) {
		revealedChars = len(message)
	}
	revealedText := message[:revealedChars]

	successStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	iconStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s", iconStyle.Render("✓"), successStyle.Render(revealedText)))
	lines = append(lines, "")
	if m.result != nil {
		lines = append(lines, fmt.Sprintf("  %s %s", hashStyle.Render(m.result.Hash), msgStyle.Render(truncateString(m.commitMessage, 56))))

		if len(m.result.Files) > 0 {
			dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
			lines = append(lines, dimStyle.Render(fmt.Sprintf("  %d file(s) committed", len(m.result.Files))))
		}

		if m.result.FallbackClient != "" {
			noteStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
			lines = append(lines, noteStyle.Render(fmt.Sprintf("  ⚠ Completed via fallback client (%s)", m.result.FallbackClient)))
		}

		if m.result.PushError != "" {
			warnStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
			lines = append(lines, warnStyle.Render("  ⚠ Push failed: "+m.result.PushError))
			lines = append(lines, warnStyle.Render("    The commit itself is intact; push manually when ready"))
		}
	}
	lines = append(lines, "")

	// Render confetti
	confettiLines := m.renderConfetti()
	if confettiLines != "" {
		lines = append(lines, confettiLines)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorGreen)
	return titleStyle.Render(" 🎉 Success ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderConfetti() string {
	if len(m.confetti) == 0 {
		return ""
	}

	// Create a grid for confetti
	width := 80
	height := 5
	grid := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		colors[i] = make([]lipgloss.Color, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Place particles in grid
	for _, p := range m.confetti {
		x := int(p.X)
		y := int(p.Y) - 5 // offset for display area
		if x >= 0 && x < width && y >= 0 && y < height {
			grid[y][x] = p.Char
			colors[y][x] = p.Color
		}
	}

	// Render grid
	var lines []string
	for y := 0; y < height; y++ {
		var line strings.Builder
		line.WriteString("   ")
		for x := 0; x < width; x++ {
			if grid[y][x] != ' ' {
				style := lipgloss.NewStyle().Foreground(colors[y][x])
				line.WriteString(style.Render(string(grid[y][x])))
			} else {
				line.WriteRune(' ')
			}
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPreflight() string {
	var lines []string
	lines = append(lines, "")

	if m.preflight == nil {
		return ""
	}

	if m.preflight.OK {
		okStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		lines = append(lines, okStyle.Render("  ✓ Ready to commit"))
		lines = append(lines, "")
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		if m.repoInfo != nil {
			lines = append(lines, dimStyle.Render("  Repository: "+m.repoInfo.DisplayName))
		}
	} else {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
		for _, issue := range m.preflight.Issues {
			lines = append(lines, warnStyle.Render("  ⊘ "+issue))
		}
	}

	lines = append(lines, "")
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	lines = append(lines, dimStyle.Render("  Press Enter to go back"))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	return titleStyle.Render(fmt.Sprintf(" Preflight (%d issue(s)) ", len(m.preflight.Issues))) + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	var lines []string

	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)

	lines = append(lines, "")
	lines = append(lines, errorStyle.Render("   ✗ Error"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("   %s", m.errorMessage))
	lines = append(lines, "")
	lines = append(lines, "   Press Enter to go back")

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdatePrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("Update Available!", ui.ColorCyan))
	lines = append(lines, "")

	if m.updateAvailable != nil {
		versionStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		currentStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

		lines = append(lines, fmt.Sprintf("   Current version: %s", currentStyle.Render(m.version)))
		lines = append(lines, fmt.Sprintf("   New version:     %s", versionStyle.Render(update.VersionDisplay(m.updateAvailable.TagName))))
		lines = append(lines, "")
	}

	lines = append(lines, "   What would you like to do?")
	lines = append(lines, "")

	// Option buttons - fixed width for alignment
	options := []struct {
		key   string
		label string
		color lipgloss.Color
	}{
		{"y", "Update now", ui.ColorGreen},
		{"n", "Skip for now", ui.ColorYellow},
		{"s", "Skip this version", ui.ColorRed},
	}

	var buttons []string
	for i, opt := range options {
		text := fmt.Sprintf("[%s] %s", opt.key, opt.label)
		var style lipgloss.Style
		if i == m.updateSelection {
			style = lipgloss.NewStyle().
				Background(opt.color).
				Foreground(lipgloss.Color("#000000")).
				Padding(0, 1).
				Bold(true)
		} else {
			style = lipgloss.NewStyle().
				Foreground(opt.color).
				Padding(0, 1)
		}
		buttons = append(buttons, style.Render(text))
	}

	lines = append(lines, "   "+strings.Join(buttons, "   "))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m Model) renderUpdating() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("Updating...", ui.ColorCyan))
	lines = append(lines, "")

	spinner := ui.Spinner(m.spinnerFrame)
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	statusStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

	lines = append(lines, fmt.Sprintf("   %s %s",
		spinnerStyle.Render(spinner),
		statusStyle.Render("Downloading and installing update..."),
	))
	lines = append(lines, "")

	if m.updateAvailable != nil {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("   Installing version %s", update.VersionDisplay(m.updateAvailable.TagName))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderSessionHistory() string {
	var lines []string
	lines = append(lines, "")

	if len(m.sessionCommits) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dimStyle.Render("  No commits this session"))
		lines = append(lines, "")
	} else {
		for i, c := range m.sessionCommits {
			isSelected := i == m.historyIndex
			arrow := "  "
			if isSelected {
				arrow = "▶ "
			}

			var repoStyle, hashStyle, msgStyle, timeStyle, arrowStyle lipgloss.Style
			if isSelected {
				repoStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true).Background(ui.ColorDarkGray)
				hashStyle = lipgloss.NewStyle().Foreground(ui.ColorYellow).Background(ui.ColorDarkGray)
				msgStyle = lipgloss.NewStyle().Foreground(ui.ColorWhite).Background(ui.ColorDarkGray)
				timeStyle = lipgloss.NewStyle().Foreground(ui.ColorWhite).Background(ui.ColorDarkGray)
				arrowStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Background(ui.ColorDarkGray)
			} else {
				repoStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
				hashStyle = lipgloss.NewStyle().Foreground(ui.ColorYellow)
				msgStyle = lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
				timeStyle = lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
				arrowStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan)
			}

			line := arrowStyle.Render(arrow) + repoStyle.Render(c.repoName) + " " + hashStyle.Render(c.hash) + " " + timeStyle.Render("("+relativeTime(c.committedAt)+")")
			lines = append(lines, line)
			lines = append(lines, "   "+msgStyle.Render(truncateString(c.message, 60)))
			lines = append(lines, "")
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	return titleStyle.Render(fmt.Sprintf(" 📋 Session History (%d) ", len(m.sessionCommits))) + "\n" + strings.Join(lines, "\n")
}

// applyViewportScroll keeps the highlighted line visible within a fixed window
func applyViewportScroll(lines []string, headerLines int, highlightedLine int, visibleLines int) string {
	if len(lines) <= headerLines+visibleLines {
		// No scrolling needed
		return strings.Join(lines, "\n")
	}

	// Keep header lines fixed
	header := lines[:headerLines]
	content := lines[headerLines:]

	scrollOffset := 0

	if highlightedLine >= headerLines {
		// Calculate scroll offset to keep highlighted line visible
		highlightInContent := highlightedLine - headerLines

		// Keep some padding around the highlighted item
		padding := 2
		if highlightInContent >= visibleLines-padding {
			scrollOffset = highlightInContent - visibleLines + padding + 1
		}
		if scrollOffset > len(content)-visibleLines {
			scrollOffset = len(content) - visibleLines
		}
		if scrollOffset < 0 {
			scrollOffset = 0
		}
	}

	endOffset := scrollOffset + visibleLines
	if endOffset > len(content) {
		endOffset = len(content)
	}

	// Build visible content with scroll indicators (copy to avoid mutating original)
	visibleContent := make([]string, endOffset-scrollOffset)
	copy(visibleContent, content[scrollOffset:endOffset])

	// Add scroll indicators
	dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	hasAbove := scrollOffset > 0
	hasBelow := endOffset < len(content)

	if hasAbove {
		visibleContent[0] = dimStyle.Render("  ▲ more above")
	}
	if hasBelow {
		visibleContent[len(visibleContent)-1] = dimStyle.Render("  ▼ more below")
	}

	return strings.Join(append(header, visibleContent...), "\n")
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenMainMenu:
		hints = []string{
			ui.KeyBinding("1-4", "Select", ui.ColorYellow),
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("Enter", "Select", ui.ColorGreen),
			ui.KeyBinding("c", "Config", ui.ColorMagenta),
			ui.KeyBinding("u", "Update", ui.ColorCyan),
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenFileSelect:
		hints = []string{
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("Space", "Toggle", ui.ColorGreen),
			ui.KeyBinding("Enter", "Diff", ui.ColorBlue),
			ui.KeyBinding("Tab", "Continue", ui.ColorGreen),
			ui.KeyBinding("Type", "Filter", ui.ColorYellow),
			ui.KeyBinding("^R", "Refresh", ui.ColorCyan),
			ui.KeyBinding("^O", "Open", ui.ColorMagenta),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenDiffView:
		hints = []string{
			ui.KeyBinding("↑↓", "Scroll", ui.ColorWhite),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenMessageInput:
		hints = []string{
			ui.KeyBinding("Type", "Edit message", ui.ColorYellow),
			ui.KeyBinding("Ctrl+G", "Generate", ui.ColorCyan),
			ui.KeyBinding("Ctrl+A", "Amend", ui.ColorMagenta),
			ui.KeyBinding("Enter", "Continue", ui.ColorGreen),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenConfirmation:
		hints = []string{
			ui.KeyBinding("←→", "Select", ui.ColorWhite),
			ui.KeyBinding("p", "Push", ui.ColorCyan),
			ui.KeyBinding("y/n", "Quick", ui.ColorGreen),
			ui.KeyBinding("Enter", "Confirm", ui.ColorGreen),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenComplete:
		hints = []string{
			ui.KeyBinding("c", "Copy", ui.ColorBlue),
			ui.KeyBinding("Enter", "Done", ui.ColorGreen),
		}
	case ScreenPreflight:
		hints = []string{
			ui.KeyBinding("Enter", "Back", ui.ColorGreen),
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenError:
		hints = []string{
			ui.KeyBinding("Enter", "Back", ui.ColorGreen),
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenUpdatePrompt:
		hints = []string{
			ui.KeyBinding("←→", "Select", ui.ColorWhite),
			ui.KeyBinding("y", "Update", ui.ColorGreen),
			ui.KeyBinding("n", "Skip", ui.ColorYellow),
			ui.KeyBinding("s", "Skip version", ui.ColorRed),
			ui.KeyBinding("Enter", "Confirm", ui.ColorGreen),
		}
	case ScreenUpdating:
		hints = []string{}
	case ScreenSessionHistory:
		hints = []string{
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("c", "Copy", ui.ColorBlue),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	default:
		hints = []string{}
	}

	installedVersion := ""
	if m.version != "" {
		installedVersion = update.VersionDisplay(m.version)
	}

	// Don't render an empty box if there are no hints or version
	if len(hints) == 0 && m.copyFeedback == "" && installedVersion == "" {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Padding(0, 1)

	var contentLines []string

	hotkeysLine := strings.Join(hints, "  ")

	// Add copy feedback if present
	if m.copyFeedback != "" {
		feedbackStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		if strings.HasPrefix(m.copyFeedback, "✗") {
			feedbackStyle = lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
		}
		if hotkeysLine != "" {
			hotkeysLine += "  │  "
		}
		hotkeysLine += feedbackStyle.Render(m.copyFeedback)
	}

	if hotkeysLine != "" {
		contentLines = append(contentLines, hotkeysLine)
	}

	if installedVersion != "" {
		versionStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		versionLine := fmt.Sprintf("Version: %s", installedVersion)
		if m.updateCheckInProgress {
			versionLine += "  " + ui.Spinner(m.spinnerFrame) + " checking..."
		}
		contentLines = append(contentLines, versionStyle.Render(versionLine))
	}

	return borderStyle.Render(strings.Join(contentLines, "\n"))
}
