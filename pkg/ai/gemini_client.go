package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	apiKey string
	model  string
}

func NewGemini(apiKey, model string) Client {
	return &geminiClient{apiKey: apiKey, model: model}
}

func (c *geminiClient) Name() string { return ProviderGemini }

func (c *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	text := geminiText(resp)
	if text == "" {
		return "", fmt.Errorf("no content received from gemini")
	}
	return text, nil
}

func (c *geminiClient) Ping(ctx context.Context) error {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return err
	}
	defer client.Close()
	_, err = client.GenerativeModel(c.model).GenerateContent(ctx, genai.Text(`Respond with: {"status": "ok"}`))
	return err
}

// geminiText concatenates all text parts across candidates. Non-text parts
// are skipped.
func geminiText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
