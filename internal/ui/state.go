package ui

import (
	"strings"

	"github.com/VarunSharma3520/GenPad/internal/llm"
)

// Phase is the display state derived from a Generation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	}
	return "idle"
}

// errorPrefix starts every ErrorMessage.
const errorPrefix = "Error generating response: "

// Generation is the whole state of the prompt screen: what the user typed,
// what came back, whether a call is in flight and why the last one failed.
// Only the UI loop touches it.
type Generation struct {
	Input   string
	Output  string
	Loading bool
	Err     string
}

// SetInput replaces the prompt text.
func (g *Generation) SetInput(text string) {
	g.Input = text
}

// CanGenerate reports whether a click would start a request.
func (g *Generation) CanGenerate() bool {
	return !g.Loading && strings.TrimSpace(g.Input) != ""
}

// Begin starts a request if the guard allows it, clearing the previous
// result. The returned request never carries a file or function declarations.
func (g *Generation) Begin() (llm.Request, bool) {
	if !g.CanGenerate() {
		return llm.Request{}, false
	}

	g.Loading = true
	g.Err = ""
	g.Output = ""

	return llm.Request{Text: g.Input, FunctionDeclarations: nil, File: nil}, true
}

// Complete records the outcome of the in-flight request and returns the
// failure it recorded, if any. A missing or empty text counts as
// llm.ErrInvalidResponse.
func (g *Generation) Complete(resp llm.Response, err error) error {
	defer func() { g.Loading = false }()

	if err == nil {
		if text := responseText(resp); text != "" {
			g.Output = text
			g.Err = ""
			return nil
		}
		err = llm.ErrInvalidResponse
	}

	g.Err = errorPrefix + err.Error()
	g.Output = ""
	return err
}

// Phase derives the display state. Loading wins, then an error, then output.
func (g *Generation) Phase() Phase {
	switch {
	case g.Loading:
		return PhaseLoading
	case g.Err != "":
		return PhaseFailed
	case g.Output != "":
		return PhaseSuccess
	}
	return PhaseIdle
}

func responseText(resp llm.Response) (text string) {
	if resp == nil {
		return ""
	}
	// A typed nil pointer inside the interface panics on Text.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return resp.Text()
}
