package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.quickcommit/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		m.updateAnimations()
		return m, tickCmd()

	// Task result messages
	case changesLoadedResult:
		return m.handleChangesLoaded(msg)

	case diffLoadedResult:
		m.diffPath = msg.path
		m.diffContent = msg.content
		m.diffScroll = 0
		m.screen = ScreenDiffView
		return m, nil

	case messageGenResult:
		return m.handleMessageGenResult(msg)

	case commitDoneResult:
		return m.handleCommitDone(msg)

	case preflightResult:
		m.repoInfo = msg.repo
		m.preflight = &msg.report
		m.screen = ScreenPreflight
		return m, nil

	case updateCheckResult:
		return m.handleUpdateCheckResult(msg)

	case updateDownloadResult:
		return m.handleUpdateDownloadResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear copy feedback on any keypress
	m.copyFeedback = ""

	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMainMenu:
		return m.handleMainMenuKey(msg)
	case ScreenFileSelect:
		return m.handleFileSelectKey(msg)
	case ScreenDiffView:
		return m.handleDiffViewKey(msg)
	case ScreenMessageInput:
		return m.handleMessageInputKey(msg)
	case ScreenConfirmation:
		return m.handleConfirmationKey(msg)
	case ScreenComplete:
		return m.handleCompleteKey(msg)
	case ScreenPreflight:
		return m.handlePreflightKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	case ScreenUpdatePrompt:
		return m.handleUpdatePromptKey(msg)
	case ScreenSessionHistory:
		return m.handleSessionHistoryKey(msg)
	}

	return m, nil
}

func (m Model) handleMainMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		} else {
			m.menuIndex = 3 // Wrap to bottom
		}
	case "down", "j":
		if m.menuIndex < 3 {
			m.menuIndex++
		} else {
			m.menuIndex = 0 // Wrap to top
		}
	case "enter":
		return m.selectMainMenuItem()
	case "1":
		m.menuIndex = 0
		return m.selectMainMenuItem()
	case "2":
		m.menuIndex = 1
		return m.selectMainMenuItem()
	case "3":
		m.menuIndex = 2
		return m.selectMainMenuItem()
	case "4":
		m.menuIndex = 3
		return m.selectMainMenuItem()
	case "c":
		return m, openConfigCmd()
	case "u":
		if !m.updateCheckInProgress {
			m.updateCheckInProgress = true
			return m, checkUpdateCmd(m.version, m.config.Update.Repo)
		}
	}
	return m, nil
}

func (m Model) selectMainMenuItem() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0: // Commit
		m.screen = ScreenLoading
		m.loadingMessage = "Reading repository changes..."
		return m, loadChangesCmd(m.deps, m.dryRun)
	case 1: // Preflight
		m.screen = ScreenLoading
		m.loadingMessage = "Running preflight checks..."
		return m, preflightCmd(m.deps, m.dryRun)
	case 2: // Session history
		m.screen = ScreenSessionHistory
		m.historyIndex = 0
	case 3: // Quit
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleChangesLoaded(msg changesLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}

	m.repoInfo = msg.repo
	m.records = msg.records
	m.fileSelected = make([]bool, len(msg.records))
	for i, rec := range msg.records {
		for _, path := range msg.selected {
			if rec.Path == path {
				m.fileSelected[i] = true
				break
			}
		}
	}
	m.fileIndex = 0
	m.fileFilter = ""
	m.screen = ScreenFileSelect
	return m, nil
}

// filteredFileIndexes returns record indexes matching the current filter
func (m *Model) filteredFileIndexes() []int {
	var indexes []int
	for i, rec := range m.records {
		if m.fileFilter == "" || strings.Contains(strings.ToLower(m.relPath(rec.Path)), strings.ToLower(m.fileFilter)) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (m Model) handleFileSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := m.filteredFileIndexes()

	switch msg.String() {
	case "ctrl+r":
		// Re-enumerate pending changes
		m.screen = ScreenLoading
		m.loadingMessage = "Refreshing repository changes..."
		return m, loadChangesCmd(m.deps, m.dryRun)

	case "ctrl+o":
		// Open the highlighted file with the system handler
		if len(filtered) > 0 && m.fileIndex < len(filtered) {
			return m, openFileCmd(m.records[filtered[m.fileIndex]].Path)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.fileFilter = ""
		m.screen = ScreenMainMenu
		return m, nil

	case tea.KeyTab:
		m.messageHint = ""
		m.screen = ScreenMessageInput
		return m, nil

	case tea.KeyEnter:
		// Preview the highlighted file's diff
		if len(filtered) > 0 && m.fileIndex < len(filtered) {
			rec := m.records[filtered[m.fileIndex]]
			m.screen = ScreenLoading
			m.loadingMessage = "Reading diff..."
			return m, diffCmd(m.deps, *m.repoInfo, rec, m.dryRun)
		}
		return m, nil

	case tea.KeyUp:
		if m.fileIndex > 0 {
			m.fileIndex--
		}
		return m, nil

	case tea.KeyDown:
		if m.fileIndex < len(filtered)-1 {
			m.fileIndex++
		}
		return m, nil

	case tea.KeySpace:
		return m.toggleFileSelection(filtered)

	case tea.KeyBackspace:
		if len(m.fileFilter) > 0 {
			m.fileFilter = m.fileFilter[:len(m.fileFilter)-1]
			m.clampFileIndex()
		}
		return m, nil

	case tea.KeyRunes:
		m.fileFilter += string(msg.Runes)
		m.clampFileIndex()
		return m, nil
	}

	return m, nil
}

func (m Model) toggleFileSelection(filtered []int) (tea.Model, tea.Cmd) {
	if len(filtered) == 0 || m.fileIndex >= len(filtered) {
		return m, nil
	}
	idx := filtered[m.fileIndex]
	m.fileSelected[idx] = !m.fileSelected[idx]

	// Persist immediately so the selection survives restarts
	if !m.dryRun && m.repoInfo != nil {
		_ = m.deps.Store.Toggle(*m.repoInfo, m.records[idx].Path)
	}
	return m, nil
}

func (m *Model) clampFileIndex() {
	filtered := m.filteredFileIndexes()
	if m.fileIndex >= len(filtered) {
		m.fileIndex = len(filtered) - 1
	}
	if m.fileIndex < 0 {
		m.fileIndex = 0
	}
}

func (m Model) handleDiffViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.diffScroll > 0 {
			m.diffScroll--
		}
	case "down", "j":
		lines := strings.Count(m.diffContent, "\n") + 1
		if m.diffScroll < lines-1 {
			m.diffScroll++
		}
	case "esc", "enter", "q":
		m.screen = ScreenFileSelect
	}
	return m, nil
}

func (m Model) handleMessageInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+g":
		if m.generating {
			return m, nil
		}
		selected := m.selectedPaths()
		if len(selected) == 0 {
			// Empty selection means commit everything; describe everything
			for _, rec := range m.records {
				selected = append(selected, rec.Path)
			}
		}
		m.generating = true
		m.messageHint = ""
		return m, generateMessageCmd(m.deps, *m.repoInfo, selected, m.dryRun)
	case "ctrl+a":
		m.amend = !m.amend
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		if m.generating {
			return m, nil
		}
		if strings.TrimSpace(m.commitMessage) == "" {
			m.messageHint = "commit message is empty"
			return m, nil
		}
		m.screen = ScreenConfirmation
		m.confirmSelection = 0
	case tea.KeyEsc:
		m.screen = ScreenFileSelect
	case tea.KeyBackspace:
		if len(m.commitMessage) > 0 {
			m.commitMessage = m.commitMessage[:len(m.commitMessage)-1]
		}
	case tea.KeySpace:
		m.commitMessage += " "
	case tea.KeyRunes:
		m.messageHint = ""
		m.commitMessage += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleMessageGenResult(msg messageGenResult) (tea.Model, tea.Cmd) {
	m.generating = false
	if msg.err != nil {
		m.messageHint = msg.err.Error()
		return m, nil
	}
	m.commitMessage = msg.message
	return m, nil
}

func (m Model) handleConfirmationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "left", "right", "tab":
		m.confirmSelection = 1 - m.confirmSelection
	case "p":
		m.push = !m.push
	case "a":
		m.amend = !m.amend
	case "y":
		m.confirmSelection = 0
		return m.confirmAction()
	case "n":
		return m.goBack()
	case "enter":
		if m.confirmSelection == 0 {
			return m.confirmAction()
		}
		return m.goBack()
	case "esc":
		return m.goBack()
	}
	return m, nil
}

func (m Model) confirmAction() (tea.Model, tea.Cmd) {
	m.screen = ScreenCommitting
	return m, commitCmd(m.deps, *m.repoInfo, m.commitMessage, m.amend, m.push, m.dryRun)
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	m.screen = ScreenMessageInput
	m.confirmSelection = 0
	return m, nil
}

func (m Model) handleCommitDone(msg commitDoneResult) (tea.Model, tea.Cmd) {
	m.result = &msg.result

	if !models.IsStatusSuccess(msg.result.Status) {
		m.errorMessage = models.GetStatusReason(msg.result.Status)
		m.screen = ScreenError
		return m, nil
	}

	// Record in session history
	repoName := msg.result.Repo.DisplayName
	if m.repoInfo != nil {
		repoName = m.repoInfo.DisplayName
	}
	m.sessionCommits = append(m.sessionCommits, sessionCommit{
		repoName:    repoName,
		hash:        msg.result.Hash,
		message:     m.commitMessage,
		committedAt: time.Now(),
	})
	saveHistory(m.sessionCommits)

	// Selection was cleared on success; mirror that in the UI state
	m.fileSelected = make([]bool, len(m.records))

	m.screen = ScreenComplete
	m.spawnConfetti()
	return m, nil
}

func (m Model) handleCompleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "c":
		if m.result != nil && m.result.Hash != "" {
			formatted := fmt.Sprintf("%s %s", m.result.Hash, m.commitMessage)
			if err := copyToClipboard(formatted); err == nil {
				m.copyFeedback = "✓ Copied!"
			} else {
				m.copyFeedback = "✗ Copy failed"
			}
		}
		return m, nil
	case "enter", "esc":
		return m.reset()
	}
	return m, nil
}

func (m Model) handlePreflightKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		m.preflight = nil
		m.screen = ScreenMainMenu
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "enter", "esc":
		return m.reset()
	}
	return m, nil
}

func (m Model) handleUpdateCheckResult(msg updateCheckResult) (tea.Model, tea.Cmd) {
	manual := m.updateCheckInProgress
	m.updateCheckInProgress = false

	// Record the check regardless of outcome
	m.config.RecordUpdateCheck()
	_ = m.config.Save()

	if msg.err != nil {
		if manual {
			m.copyFeedback = "✗ Update check failed"
		}
		return m, nil
	}
	if msg.release == nil || msg.release.TagName == m.config.Update.SkippedVersion {
		if manual {
			m.copyFeedback = "✓ Up to date!"
		}
		return m, nil
	}

	m.updateAvailable = msg.release
	m.updateSelection = 0
	m.screen = ScreenUpdatePrompt
	return m, nil
}

func (m Model) handleUpdatePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "up":
		if m.updateSelection > 0 {
			m.updateSelection--
		}
	case "right", "down", "tab":
		if m.updateSelection < 2 {
			m.updateSelection++
		}
	case "y":
		m.updateSelection = 0
		return m.applyUpdateSelection()
	case "n", "esc":
		m.updateSelection = 1
		return m.applyUpdateSelection()
	case "s":
		m.updateSelection = 2
		return m.applyUpdateSelection()
	case "enter":
		return m.applyUpdateSelection()
	}
	return m, nil
}

func (m Model) applyUpdateSelection() (tea.Model, tea.Cmd) {
	switch m.updateSelection {
	case 0: // Update now
		m.screen = ScreenUpdating
		return m, downloadUpdateCmd(m.updateAvailable, m.config.Update.Repo)
	case 2: // Skip this version permanently
		if m.updateAvailable != nil {
			m.config.Update.SkippedVersion = m.updateAvailable.TagName
			_ = m.config.Save()
		}
	}
	m.updateAvailable = nil
	m.screen = ScreenMainMenu
	return m, nil
}

func (m Model) handleUpdateDownloadResult(msg updateDownloadResult) (tea.Model, tea.Cmd) {
	if !msg.success {
		m.errorMessage = fmt.Sprintf("update failed: %v", msg.err)
		m.screen = ScreenError
		return m, nil
	}
	m.updateAvailable = nil
	m.copyFeedback = fmt.Sprintf("✓ Updated to v%s, restart to apply", msg.version)
	m.screen = ScreenMainMenu
	return m, nil
}

func (m Model) handleSessionHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "down", "j":
		if m.historyIndex < len(m.sessionCommits)-1 {
			m.historyIndex++
		}
	case "c":
		if m.historyIndex < len(m.sessionCommits) {
			entry := m.sessionCommits[m.historyIndex]
			formatted := fmt.Sprintf("%s %s", entry.hash, entry.message)
			if err := copyToClipboard(formatted); err == nil {
				m.copyFeedback = "✓ Copied!"
			} else {
				m.copyFeedback = "✗ Copy failed"
			}
		}
	case "enter", "esc":
		m.screen = ScreenMainMenu
	}
	return m, nil
}

// reset returns to the main menu, keeping config and session history
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.screen = ScreenMainMenu
	m.menuIndex = 0
	m.repoInfo = nil
	m.records = nil
	m.fileSelected = nil
	m.fileIndex = 0
	m.fileFilter = ""
	m.diffPath = ""
	m.diffContent = ""
	m.diffScroll = 0
	m.commitMessage = ""
	m.generating = false
	m.amend = false
	m.messageHint = ""
	m.confirmSelection = 0
	m.push = m.config.Commit.PushByDefault
	m.result = nil
	m.preflight = nil
	m.errorMessage = ""
	return m, nil
}
