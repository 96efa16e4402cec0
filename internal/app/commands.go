package app

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/wahlandcase/attuned.quickcommit/internal/commit"
	"github.com/wahlandcase/attuned.quickcommit/internal/config"
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
	"github.com/wahlandcase/attuned.quickcommit/internal/update"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type changesLoadedResult struct {
	repo     *models.RepoInfo
	records  []models.ChangeRecord
	selected []string
	err      error
}

type diffLoadedResult struct {
	path    string
	content string
}

type messageGenResult struct {
	message string
	err     error
}

type commitDoneResult struct {
	result models.CommitResult
}

type preflightResult struct {
	repo   *models.RepoInfo
	report commit.Report
}

// Update check messages
type updateCheckResult struct {
	release *update.Release
	err     error
}

type updateDownloadResult struct {
	success bool
	version string
	err     error
}

// checkUpdateCmd checks for available updates
func checkUpdateCmd(currentVersion, repo string) tea.Cmd {
	return func() tea.Msg {
		release, err := update.CheckForUpdate(currentVersion, repo)
		return updateCheckResult{release: release, err: err}
	}
}

// downloadUpdateCmd downloads and installs an update
func downloadUpdateCmd(release *update.Release, repo string) tea.Cmd {
	return func() tea.Msg {
		err := update.DownloadAndInstall(release, repo)
		if err != nil {
			return updateDownloadResult{success: false, err: err}
		}
		return updateDownloadResult{success: true, version: update.VersionDisplay(release.TagName)}
	}
}

// openConfigCmd opens the config folder in the system file manager
func openConfigCmd() tea.Cmd {
	return func() tea.Msg {
		configPath, err := config.Path()
		if err != nil {
			return nil
		}
		configDir := filepath.Dir(configPath)

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			// macOS: open folder in Finder, select the file
			cmd = exec.Command("open", "-R", configPath)
		case "linux":
			// Check if WSL
			if isWSL() {
				// Convert Linux path to Windows path and open in Explorer
				winPath, err := exec.Command("wslpath", "-w", configDir).Output()
				if err == nil {
					cmd = exec.Command("explorer.exe", strings.TrimSpace(string(winPath)))
				}
			} else {
				cmd = exec.Command("xdg-open", configDir)
			}
		}

		if cmd != nil {
			cmd.Start()
		}
		return nil
	}
}

// openFileCmd opens a file with the OS default handler
func openFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "linux":
			if isWSL() {
				winPath, err := exec.Command("wslpath", "-w", path).Output()
				if err == nil {
					cmd = exec.Command("explorer.exe", strings.TrimSpace(string(winPath)))
				}
			} else {
				cmd = exec.Command("xdg-open", path)
			}
		}

		if cmd != nil {
			cmd.Start()
		}
		return nil
	}
}

// Commands

func loadChangesCmd(deps Deps, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		// Dry run mode: return fake changes
		if dryRun {
			time.Sleep(800 * time.Millisecond)
			repo := &models.RepoInfo{Path: "/tmp/demo-repo", DisplayName: "demo-repo", Branch: "dev"}
			records := []models.ChangeRecord{
				{Path: "/tmp/demo-repo/internal/api/server.go", Type: models.ChangeModified, Category: models.CategoryUnstaged},
				{Path: "/tmp/demo-repo/internal/api/handlers.go", Type: models.ChangeAdded, Category: models.CategoryStaged},
				{Path: "/tmp/demo-repo/README.md", Type: models.ChangeModified, Category: models.CategoryUnstaged},
				{Path: "/tmp/demo-repo/docs/notes.md", Type: models.ChangeUntracked, Category: models.CategoryUntracked},
				{Path: "/tmp/demo-repo/internal/old/legacy.go", Type: models.ChangeDeleted, Category: models.CategoryStaged},
			}
			return changesLoadedResult{repo: repo, records: records}
		}

		repo, err := vcs.GetCurrentRepoInfo()
		if err != nil {
			return changesLoadedResult{err: err}
		}

		records := deps.Enumerator.ListChanges(*repo)
		selected := deps.Store.Get(*repo)

		return changesLoadedResult{repo: repo, records: records, selected: selected}
	}
}

func diffCmd(deps Deps, repo models.RepoInfo, rec models.ChangeRecord, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			content := "@@ -1,4 +1,6 @@\n context line\n-removed line\n+added line\n+another added line\n context line"
			return diffLoadedResult{path: rec.Path, content: content}
		}
		return diffLoadedResult{path: rec.Path, content: deps.Reader.Diff(repo, rec)}
	}
}

func generateMessageCmd(deps Deps, repo models.RepoInfo, selected []string, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(600 * time.Millisecond)
			return messageGenResult{message: "feat(api): add request handlers"}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		msg, err := deps.Pipeline.Generate(ctx, repo, selected)
		return messageGenResult{message: msg, err: err}
	}
}

func commitCmd(deps Deps, repo models.RepoInfo, message string, amend, push, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(1200 * time.Millisecond)
			result := models.CommitResult{
				Repo:   repo,
				Status: models.Committed,
				Hash:   "abc1234",
				Files:  []string{"internal/api/server.go", "internal/api/handlers.go", "README.md"},
			}
			if push {
				result.Status = models.Pushed
			}
			return commitDoneResult{result: result}
		}

		var result models.CommitResult
		if push {
			result = deps.Orchestrator.CommitAndPush(repo, message, amend)
		} else {
			result = deps.Orchestrator.Commit(repo, message, amend)
		}
		return commitDoneResult{result: result}
	}
}

func preflightCmd(deps Deps, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		if dryRun {
			time.Sleep(400 * time.Millisecond)
			repo := &models.RepoInfo{Path: "/tmp/demo-repo", DisplayName: "demo-repo", Branch: "dev"}
			return preflightResult{
				repo: repo,
				report: commit.Report{
					OK:     false,
					Issues: []string{"no files selected (commit would include all pending changes)"},
				},
			}
		}

		repo, err := vcs.GetCurrentRepoInfo()
		if err != nil {
			// Validate still runs; it reports the missing repository itself
			repo = &models.RepoInfo{}
		}

		records := deps.Enumerator.ListChanges(*repo)
		selected := deps.Store.Get(*repo)

		report := commit.Validate(*repo, deps.Clients, selected, records)
		return preflightResult{repo: repo, report: report}
	}
}

// isWSL checks if running under Windows Subsystem for Linux
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

// copyToClipboard copies text to the system clipboard
func copyToClipboard(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("clip")
	default: // Linux
		if isWSL() {
			// WSL: use clip.exe to reach Windows clipboard
			cmd = exec.Command("clip.exe")
		} else if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		}
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
