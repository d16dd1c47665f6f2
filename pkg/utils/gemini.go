package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClient on Google's Gemini models. The
// structured-generation path prefers it because the API can force JSON-only
// output at the MIME-type level.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) generate(ctx context.Context, m *genai.GenerativeModel, systemPrompt, userPrompt string) (string, error) {
	if strings.TrimSpace(systemPrompt) != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}
	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	if maxTokens > 0 {
		m.SetMaxOutputTokens(int32(maxTokens))
	}
	return c.generate(ctx, m, systemPrompt, userPrompt)
}

func (c *GeminiChatClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	if maxTokens > 0 {
		m.SetMaxOutputTokens(int32(maxTokens))
	}

	content, err := c.generate(ctx, m, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid JSON")
	}
	return content, nil
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}

// CleanJSONResponse strips markdown fences and surrounding prose, returning
// the first balanced JSON object or array in the reply.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			return strings.TrimSpace(response[objStart : end+1])
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			return strings.TrimSpace(response[arrStart : end+1])
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelim scans for the closing delimiter, ignoring delimiters
// inside JSON string literals.
func findMatchingDelim(s string, start int, open, closing byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
