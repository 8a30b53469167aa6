package debug

const (
	Debug = true
)

func IsDebug() bool {
	return Debug
}

func IsDebugShowPrompt() bool {
	return Debug && isDebugShowPromptSet()
}
