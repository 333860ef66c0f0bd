package types

import "time"

type ScreenMode string

const (
	ModePrompt  ScreenMode = "prompt"
	ModeOptions ScreenMode = "options"
)

// Response is anything that exposes generated text.
type Response interface {
	Text() string
}

// GenerateDoneMsg is delivered to the UI loop when a generation call returns.
type GenerateDoneMsg struct {
	ID       string
	Response Response
	Err      error
	Elapsed  time.Duration
}

// StatusMsg represents a status message to be displayed in the UI
type StatusMsg struct {
	Message  string
	Duration time.Duration
}
