package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.quickcommit/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/wahlandcase/attuned.quickcommit/internal/app"
	"github.com/wahlandcase/attuned.quickcommit/internal/changes"
	"github.com/wahlandcase/attuned.quickcommit/internal/commit"
	"github.com/wahlandcase/attuned.quickcommit/internal/config"
	"github.com/wahlandcase/attuned.quickcommit/internal/message"
	"github.com/wahlandcase/attuned.quickcommit/internal/selection"
	"github.com/wahlandcase/attuned.quickcommit/internal/vcs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	dryRun     bool
	testUpdate bool
	repoPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attqc",
		Short: "TUI for selecting changes and committing them",
		RunE:  run,
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate operations without making changes")
	rootCmd.Flags().StringVar(&repoPath, "repo", "", "Operate on the given working tree instead of the current directory")
	rootCmd.Flags().BoolVar(&testUpdate, "test-update", false, "Show a fake update prompt")
	rootCmd.Flags().MarkHidden("test-update")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if repoPath != "" {
		if err := os.Chdir(repoPath); err != nil {
			return fmt.Errorf("cannot enter %s: %w", repoPath, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	deps, err := buildDeps(cfg)
	if err != nil {
		return err
	}

	model := app.New(cfg, deps, dryRun, testUpdate, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// buildDeps wires the selection store, git clients and commit services
func buildDeps(cfg *config.Config) (app.Deps, error) {
	var store selection.Store
	if dir, err := selection.DefaultDir(); err == nil {
		store = selection.NewFileStore(dir)
	} else {
		// No usable config dir; selections just won't survive restarts
		store = selection.NewMemoryStore()
	}

	primary := vcs.NewGoGit()
	secondary := vcs.NewCLI()
	clients := []vcs.Client{primary, secondary}

	enumerator := changes.NewEnumerator(primary)
	reader := changes.NewDiffReader(secondary)
	orchestrator := commit.New(clients, store, enumerator, nil)

	var assistant message.Assistant
	if claude := message.NewClaude(cfg.APIKey(), cfg.Assistant.Model); claude != nil {
		assistant = claude
	}
	pipeline := message.NewPipeline(enumerator, reader, assistant)

	return app.Deps{
		Store:        store,
		Enumerator:   enumerator,
		Reader:       reader,
		Orchestrator: orchestrator,
		Pipeline:     pipeline,
		Clients:      clients,
	}, nil
}
