package debug

import "os"

const (
	DebugShowPromptKey = "DEBUG_SHOW_PROMPT"
)

func isDebugShowPromptSet() bool {
	return os.Getenv(DebugShowPromptKey) == "true"
}
