package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// Gemini generates text through the Gemini API.
type Gemini struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGemini creates a Gemini API client.
func NewGemini(ctx context.Context, apiKey, baseURL, model string, maxTokens int) (*Gemini, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: model, maxTokens: maxTokens}, nil
}

// Generate asks for a JSON response and returns its text.
func (g *Gemini) Generate(ctx context.Context, p Prompt) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.User), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		Temperature:       genai.Ptr(p.Temperature),
		MaxOutputTokens:   int32(g.maxTokens),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &statusError{provider: "gemini", status: apiErr.Code, err: err}
		}
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errEmptyResponse
	}
	return text, nil
}
