package genai

import (
	"context"
	"errors"
	"fmt"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const defaultModel = "command-r"

// CohereGenerator implements Generator using the Cohere Chat API.
type CohereGenerator struct {
	client *cohereclient.Client
	model  string
}

// NewCohereGenerator builds a generator authenticated with the given key.
func NewCohereGenerator(apiKey string) *CohereGenerator {
	return &CohereGenerator{
		client: cohereclient.NewClient(cohereclient.WithToken(apiKey)),
		model:  defaultModel,
	}
}

// Generate sends one prompt and returns the single text reply.
func (g *CohereGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &g.model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}
