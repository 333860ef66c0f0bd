// Package llm defines the generation contract the UI consumes and the
// backends that implement it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"google.golang.org/genai"

	"github.com/VarunSharma3520/GenPad/internal/config"
	"github.com/VarunSharma3520/GenPad/internal/types"
)

var (
	// ErrInvalidResponse means the call succeeded but produced no usable text.
	ErrInvalidResponse = errors.New("Invalid API response")
	// ErrUnsupported is returned when a backend cannot honor part of a Request.
	ErrUnsupported = errors.New("not supported by this backend")
)

// Response exposes the generated text. An empty Text is not a usable result.
type Response = types.Response

// File is an optional attachment. Either URI or Data is set.
type File struct {
	URI      string
	MIMEType string
	Data     []byte
}

// Request is the input of one generation call.
type Request struct {
	Text                 string
	FunctionDeclarations []*genai.FunctionDeclaration
	File                 *File
}

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// textResponse is the Response returned by backends that produce a plain string.
type textResponse string

func (r textResponse) Text() string { return string(r) }

// New builds the generator for cfg.Backend.
func New(ctx context.Context, cfg config.Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendGemini:
		g, err := NewGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.BackendOllama:
		return NewOllama(cfg), nil
	case config.BackendOpenAI:
		o, err := NewOpenAI(cfg)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// unavailable fails every call with the error that prevented construction.
type unavailable struct{ err error }

func (u unavailable) Generate(context.Context, Request) (Response, error) {
	return nil, u.err
}

// Unavailable returns a Generator whose calls all fail with err. It lets the
// UI start without credentials and show the problem in its error branch.
func Unavailable(err error) Generator {
	return unavailable{err: err}
}

// Generate calls gen and converts a panic into an error.
func Generate(ctx context.Context, gen Generator, req Request) (resp Response, err error) {
	if gen == nil {
		return nil, errors.New("no generator configured")
	}

	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("generation panic: %v", r)
		}
	}()

	return gen.Generate(ctx, req)
}

// GenerateCmd runs one generation call off the UI loop and reports the outcome
// as a types.GenerateDoneMsg carrying id.
func GenerateCmd(ctx context.Context, gen Generator, id string, req Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		resp, err := Generate(ctx, gen, req)
		return types.GenerateDoneMsg{
			ID:       id,
			Response: resp,
			Err:      err,
			Elapsed:  time.Since(start),
		}
	}
}
