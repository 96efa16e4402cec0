package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const historyMaxAge = 24 * time.Hour

// historyEntry is the persisted form of sessionCommit
type historyEntry struct {
	RepoName    string    `json:"repo_name"`
	Hash        string    `json:"hash"`
	Message     string    `json:"message"`
	CommittedAt time.Time `json:"committed_at"`
}

func historyPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attqc-history.json"), nil
}

// loadHistory loads and prunes old entries from the history file
func loadHistory() []sessionCommit {
	path, err := historyPath()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []historyEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	// Filter to entries within 24h
	cutoff := time.Now().Add(-historyMaxAge)
	var valid []historyEntry
	for _, e := range entries {
		if e.CommittedAt.After(cutoff) {
			valid = append(valid, e)
		}
	}

	// Rewrite file if we pruned anything
	if len(valid) != len(entries) {
		saveHistoryEntries(valid)
	}

	// Convert to sessionCommit
	var result []sessionCommit
	for _, e := range valid {
		result = append(result, sessionCommit{
			repoName:    e.RepoName,
			hash:        e.Hash,
			message:     e.Message,
			committedAt: e.CommittedAt,
		})
	}
	return result
}

// saveHistory saves the current session commits to disk
func saveHistory(commits []sessionCommit) {
	var entries []historyEntry
	for _, c := range commits {
		entries = append(entries, historyEntry{
			RepoName:    c.repoName,
			Hash:        c.hash,
			Message:     c.message,
			CommittedAt: c.committedAt,
		})
	}
	saveHistoryEntries(entries)
}

func saveHistoryEntries(entries []historyEntry) {
	path, err := historyPath()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
