package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/VarunSharma3520/GenPad/internal/config"
)

// contentGenerator is the part of *genai.Models the Gemini backend uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini generates text with the Gemini API.
type Gemini struct {
	models      contentGenerator
	model       string
	temperature float64
}

// NewGemini creates a Gemini backend. An API key is required.
func NewGemini(ctx context.Context, cfg config.Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.APIURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.APIURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGemini(client.Models, cfg.ModelName, cfg.Temperature), nil
}

func newGemini(models contentGenerator, model string, temperature float64) *Gemini {
	return &Gemini{models: models, model: model, temperature: temperature}
}

// Generate sends the prompt, the optional file part and any function
// declarations in a single user turn.
func (g *Gemini) Generate(ctx context.Context, req Request) (Response, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Text)}
	if req.File != nil {
		part, err := filePart(req.File)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.temperature)),
	}
	if len(req.FunctionDeclarations) > 0 {
		gc.Tools = []*genai.Tool{{FunctionDeclarations: req.FunctionDeclarations}}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, gc)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return nil, fmt.Errorf("prompt blocked: %s", fb.BlockReason)
	}
	return resp, nil
}

func filePart(f *File) (*genai.Part, error) {
	switch {
	case f.URI != "":
		return genai.NewPartFromURI(f.URI, f.MIMEType), nil
	case len(f.Data) > 0:
		if f.MIMEType == "" {
			return nil, errors.New("file data needs a MIME type")
		}
		return genai.NewPartFromBytes(f.Data, f.MIMEType), nil
	}
	return nil, errors.New("file has neither URI nor data")
}
