package llm

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

type mockModels struct {
	generateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.generateFunc(ctx, model, contents, cfg)
}

type mockChat struct {
	newFunc func(ctx context.Context, body openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
	calls   int
}

func (m *mockChat) New(ctx context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	m.calls++
	return m.newFunc(ctx, body)
}

type mockGenerator struct {
	generateFunc func(ctx context.Context, req Request) (Response, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	return m.generateFunc(ctx, req)
}

func textCandidate(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}}},
		},
	}
}
