package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const openAISystemPrompt = "You are an expert educational content creator. Generate peer study planning sheets in JSON format."

type openAIClient struct {
	model  string
	client openai.Client
}

func NewOpenAI(apiKey, model string) Client {
	c := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return &openAIClient{model: model, client: c}
}

func (c *openAIClient) Name() string { return ProviderOpenAI }

func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content received from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) Ping(ctx context.Context) error {
	_, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(`Respond with: {"status": "ok"}`),
		},
		MaxTokens: openai.Int(10),
	})
	return err
}
