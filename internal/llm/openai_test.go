package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

func TestOpenAI_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns first choice", func(t *testing.T) {
		chat := &mockChat{
			newFunc: func(ctx context.Context, body openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
				assert.Equal(t, openai.ChatModel("gpt-4o-mini"), body.Model)
				assert.Len(t, body.Messages, 1)
				assert.InDelta(t, 0.4, body.Temperature.Value, 1e-9)
				return &openai.ChatCompletion{
					Choices: []openai.ChatCompletionChoice{
						{Message: openai.ChatCompletionMessage{Content: "Hello"}},
						{Message: openai.ChatCompletionMessage{Content: "ignored"}},
					},
				}, nil
			},
		}
		o := newOpenAI(chat, "gpt-4o-mini", 0.4)

		resp, err := o.Generate(ctx, Request{Text: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "Hello", resp.Text())
		assert.Equal(t, 1, chat.calls)
	})

	t.Run("no choices", func(t *testing.T) {
		chat := &mockChat{
			newFunc: func(context.Context, openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
				return &openai.ChatCompletion{Choices: []openai.ChatCompletionChoice{}}, nil
			},
		}

		resp, err := newOpenAI(chat, "m", 1).Generate(ctx, Request{Text: "hi"})
		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("API error", func(t *testing.T) {
		chat := &mockChat{
			newFunc: func(context.Context, openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
				return nil, errors.New("429 too many requests")
			},
		}

		_, err := newOpenAI(chat, "m", 1).Generate(ctx, Request{Text: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429 too many requests")
	})

	t.Run("rejects attachments without calling the API", func(t *testing.T) {
		chat := &mockChat{}

		_, err := newOpenAI(chat, "m", 1).Generate(ctx, Request{Text: "hi", File: &File{URI: "x"}})
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Zero(t, chat.calls)
	})
}

func TestNewOpenAI(t *testing.T) {
	_, err := NewOpenAI(config.Config{Backend: config.BackendOpenAI, ModelName: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	o, err := NewOpenAI(config.Config{Backend: config.BackendOpenAI, ModelName: "m", APIKey: "sk-test", APIURL: "http://localhost:8080/v1"})
	require.NoError(t, err)
	assert.Equal(t, "m", o.model)
}
