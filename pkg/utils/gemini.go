package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiEmbeddingClient implements EmbeddingClientInterface using Google's
// Gemini embedding models.
type GeminiEmbeddingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEmbeddingClient(apiKey, model string) (EmbeddingClientInterface, error) {
	if model == "" {
		model = "text-embedding-004"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbeddingClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(c.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: empty response")
	}
	return pgvector.NewVector(resp.Embedding.Values), nil
}
