package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/parakeet-nest/parakeet/completion"
	"github.com/parakeet-nest/parakeet/enums/option"
	pkllm "github.com/parakeet-nest/parakeet/llm"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

// chatStreamFunc matches completion.ChatStream.
type chatStreamFunc func(url string, query pkllm.Query, onChunk func(pkllm.Answer) error, options ...string) (pkllm.Answer, error)

// Ollama generates text with a local Ollama server through Parakeet.
// The reply is streamed and collected into one text.
type Ollama struct {
	stream      chatStreamFunc
	apiURL      string
	model       string
	temperature float64
}

// NewOllama creates an Ollama backend.
func NewOllama(cfg config.Config) *Ollama {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = config.DefaultAPIURL(config.BackendOllama)
	}
	return &Ollama{
		stream:      completion.ChatStream,
		apiURL:      apiURL,
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
	}
}

// Generate runs one chat turn. Attachments and function declarations are rejected.
func (o *Ollama) Generate(ctx context.Context, req Request) (Response, error) {
	if req.File != nil || len(req.FunctionDeclarations) > 0 {
		return nil, fmt.Errorf("ollama: files and function declarations are %w", ErrUnsupported)
	}

	q := pkllm.Query{
		Model: o.model,
		Messages: []pkllm.Message{
			{Role: "user", Content: req.Text},
		},
		Options: pkllm.SetOptions(map[string]interface{}{
			string(option.Temperature): o.temperature,
		}),
		Stream: true,
	}

	var full strings.Builder
	_, err := o.stream(o.apiURL, q, func(ans pkllm.Answer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		full.WriteString(ans.Message.Content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat: %w", err)
	}

	return textResponse(full.String()), nil
}
