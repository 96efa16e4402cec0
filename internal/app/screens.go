package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenLoading
	ScreenFileSelect
	ScreenDiffView
	ScreenMessageInput
	ScreenConfirmation
	ScreenCommitting
	ScreenComplete
	ScreenPreflight
	ScreenError
	ScreenUpdatePrompt
	ScreenUpdating
	ScreenSessionHistory
)

func (s Screen) String() string {
	names := []string{
		"MainMenu",
		"Loading",
		"FileSelect",
		"DiffView",
		"MessageInput",
		"Confirmation",
		"Committing",
		"Complete",
		"Preflight",
		"Error",
		"UpdatePrompt",
		"Updating",
		"SessionHistory",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
