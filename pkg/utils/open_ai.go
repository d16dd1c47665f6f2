package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openAIModel = openai.GPT4oMini

// ChatClient is the surface the planner needs from a text-generation
// backend. Implementations must be safe for concurrent use.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

type OpenAIChatClient struct {
	client *openai.Client
}

func NewOpenAIChatClient(apiKey string) *OpenAIChatClient {
	return &OpenAIChatClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIChatClient) chat(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Complete runs a plain chat completion and returns the raw text.
func (c *OpenAIChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	return c.chat(ctx, openai.ChatCompletionRequest{
		Model:       openAIModel,
		Temperature: 0.7,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
}

// CompleteJSON forces the JSON-object response format so callers can parse
// the reply without scraping prose.
func (c *OpenAIChatClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	out, err := c.chat(ctx, openai.ChatCompletionRequest{
		Model:       openAIModel,
		Temperature: 0.4,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}
	return CleanJSONResponse(out), nil
}
