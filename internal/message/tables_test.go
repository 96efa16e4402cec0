package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{
			name:     "readme update",
			prompt:   "modified: README.md\n+added install instructions",
			expected: "docs(docs): update documentation",
		},
		{
			name:     "bug fix in api client",
			prompt:   "modified: internal/api/client.go\n+fix nil pointer crash",
			expected: "fix(api): fix reported issue",
		},
		{
			name:     "test file changes",
			prompt:   "modified: internal/store/store_test.go\n+new assertions",
			expected: "test(test): update tests",
		},
		{
			name:     "dependency bump",
			prompt:   "modified: go.mod\n+bump library to v2",
			expected: "chore: update dependencies",
		},
		{
			name:     "nothing recognizable",
			prompt:   "modified: data.bin\n+binary churn",
			expected: "chore: update code",
		},
		{
			name:     "unknown scope omits parentheses",
			prompt:   "modified: notes.txt\n+fix a bug",
			expected: "fix: fix reported issue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.prompt))
		})
	}
}

// The docs entry sits first in every table; a prompt touching a readme
// must win over later entries even when their keywords also appear
func TestClassifyTableOrdering(t *testing.T) {
	prompt := "modified: README.md\n+fix typo and add new test section"
	assert.Equal(t, "docs(docs): update documentation", classify(prompt))
}

func TestMatchFallback(t *testing.T) {
	assert.Equal(t, "chore", typeTable.match("nothing relevant here", defaultType))
	assert.Equal(t, "", scopeTable.match("nothing relevant here", defaultScope))
	assert.Equal(t, "update code", descriptionTable.match("nothing relevant here", defaultDescription))
}

func TestMatchCaseInsensitive(t *testing.T) {
	assert.Equal(t, "docs", typeTable.match("Modified: ReadMe.MD", defaultType))
}
