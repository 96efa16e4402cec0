// Package message generates commit messages from pending changes: diffs
// are gathered into a prompt, an external assistant gets first shot
// when configured, and an ordered keyword heuristic covers the rest.
package message

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.quickcommit/internal/changes"
	"github.com/wahlandcase/attuned.quickcommit/internal/models"
)

// Generation errors. These surface as warnings, not crashes.
var (
	// ErrEmptySelection indicates there is nothing to describe
	ErrEmptySelection = errors.New("no files selected")

	// ErrNothingToAnalyze indicates no selected file produced a diff
	ErrNothingToAnalyze = errors.New("no analyzable changes in selection")
)

// Pipeline produces a commit message for the current selection
type Pipeline struct {
	enumerator *changes.Enumerator
	reader     *changes.DiffReader

	// assistant may be nil; the keyword heuristic then runs directly
	assistant Assistant
}

// NewPipeline creates a pipeline. assistant may be nil.
func NewPipeline(enumerator *changes.Enumerator, reader *changes.DiffReader, assistant Assistant) *Pipeline {
	return &Pipeline{
		enumerator: enumerator,
		reader:     reader,
		assistant:  assistant,
	}
}

// Generate builds a commit message for the selected files. The
// assistant result wins when one is configured and answers; any
// assistant failure falls back to the keyword tables. Fails only when
// the selection is empty or no selected file has pending changes.
func (p *Pipeline) Generate(ctx context.Context, repo models.RepoInfo, selected []string) (string, error) {
	if len(selected) == 0 {
		return "", ErrEmptySelection
	}

	prompt, analyzed := p.assemblePrompt(repo, selected)
	if analyzed == 0 {
		return "", ErrNothingToAnalyze
	}

	if p.assistant != nil {
		if msg, err := p.assistant.Generate(ctx, prompt); err == nil {
			return msg, nil
		}
		// Unavailable or failed; recovered locally below
	}

	return classify(prompt), nil
}

// assemblePrompt renders per-file summaries and diffs into one prompt
// and reports how many selected files had pending changes
func (p *Pipeline) assemblePrompt(repo models.RepoInfo, selected []string) (string, int) {
	byPath := make(map[string]models.ChangeRecord)
	for _, rec := range p.enumerator.ListChanges(repo) {
		byPath[rec.Path] = rec
	}

	var b strings.Builder
	b.WriteString("Write a commit message for the following changes.\n")

	analyzed := 0
	for _, path := range selected {
		rec, ok := byPath[path]
		if !ok {
			continue
		}
		analyzed++

		rel, err := filepath.Rel(repo.Path, path)
		if err != nil {
			rel = path
		}

		fmt.Fprintf(&b, "\n%s: %s\n", rec.Type, filepath.ToSlash(rel))
		b.WriteString(p.reader.Diff(repo, rec))
		b.WriteString("\n")
	}

	return b.String(), analyzed
}
