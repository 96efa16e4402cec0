package message

import "strings"

// table is an ordered list of (keywords, result) entries evaluated
// first-match-wins against the prompt text. Ordering is load-bearing:
// once an entry matches, later entries with overlapping keywords are
// unreachable. Do not reorder without a regression test.
type table []entry

type entry struct {
	keywords []string
	result   string
}

// match returns the result of the first entry whose keyword appears in
// text, or fallback when nothing matches
func (t table) match(text, fallback string) string {
	lowered := strings.ToLower(text)
	for _, e := range t {
		for _, kw := range e.keywords {
			if strings.Contains(lowered, kw) {
				return e.result
			}
		}
	}
	return fallback
}

// defaults used when a table finds no keyword
const (
	defaultType        = "chore"
	defaultScope       = "" // no scope yields the type-only form
	defaultDescription = "update code"
)

// typeTable classifies the conventional-commit type
var typeTable = table{
	{[]string{"readme", "changelog", "documentation", "docs", "doc comment"}, "docs"},
	{[]string{"fix", "bug", "crash", "regression", "broken"}, "fix"},
	{[]string{"test", "spec", "coverage"}, "test"},
	{[]string{"refactor", "restructure", "cleanup", "simplify"}, "refactor"},
	{[]string{"lint", "format", "whitespace", "typo"}, "style"},
	{[]string{"bump", "upgrade", "dependenc", "go.mod"}, "chore"},
	{[]string{"performance", "optimiz", "speed up"}, "perf"},
	{[]string{"feat", "implement", "introduce", "new "}, "feat"},
}

// scopeTable classifies the conventional-commit scope
var scopeTable = table{
	{[]string{"readme", "docs/", "documentation"}, "docs"},
	{[]string{"_test.go", "test/"}, "test"},
	{[]string{"config", "settings", ".toml", ".yaml", ".yml"}, "config"},
	{[]string{"ui", "view", "screen", "style"}, "ui"},
	// api before cli: "cli" is a substring of "client"
	{[]string{"api", "client", "server"}, "api"},
	{[]string{"cmd/", "main.go", "cli"}, "cli"},
	{[]string{"ci", "workflow", "makefile", "build"}, "build"},
}

// descriptionTable picks a short description
var descriptionTable = table{
	{[]string{"readme", "documentation", "docs"}, "update documentation"},
	{[]string{"fix", "bug", "crash"}, "fix reported issue"},
	{[]string{"test", "spec"}, "update tests"},
	{[]string{"bump", "upgrade", "dependenc"}, "update dependencies"},
	{[]string{"lint", "format", "typo"}, "apply style fixes"},
	{[]string{"remove", "delete", "drop"}, "remove unused code"},
	{[]string{"add", "new ", "implement", "introduce"}, "add new functionality"},
}

// classify composes a conventional-commit message from the prompt text
// using the three tables. Deterministic for a given prompt.
func classify(prompt string) string {
	commitType := typeTable.match(prompt, defaultType)
	scope := scopeTable.match(prompt, defaultScope)
	description := descriptionTable.match(prompt, defaultDescription)

	if scope == "" {
		return commitType + ": " + description
	}
	return commitType + "(" + scope + "): " + description
}
