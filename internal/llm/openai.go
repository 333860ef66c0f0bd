package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

// chatCompleter is the part of openai.ChatCompletionService the backend uses.
type chatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI generates text with the Chat Completions API or any compatible server.
type OpenAI struct {
	chat        chatCompleter
	model       string
	temperature float64
}

// NewOpenAI creates an OpenAI backend. cfg.APIURL, when set, replaces the base URL.
func NewOpenAI(cfg config.Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.APIURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIURL))
	}
	client := openai.NewClient(opts...)

	return newOpenAI(&client.Chat.Completions, cfg.ModelName, cfg.Temperature), nil
}

func newOpenAI(chat chatCompleter, model string, temperature float64) *OpenAI {
	return &OpenAI{chat: chat, model: model, temperature: temperature}
}

// Generate sends the prompt as a single user message and returns the first choice.
func (o *OpenAI) Generate(ctx context.Context, req Request) (Response, error) {
	if req.File != nil || len(req.FunctionDeclarations) > 0 {
		return nil, fmt.Errorf("openai: files and function declarations are %w", ErrUnsupported)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Text),
		},
		Temperature: openai.Float(o.temperature),
	}

	resp, err := o.chat.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, nil
	}
	return textResponse(resp.Choices[0].Message.Content), nil
}
