package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/tcsatheesh/semker/internal/domain"
)

type VertexClient struct {
	client    *genai.Client
	modelName string
}

// NewVertexClient creates a ModelClient based on Vertex AI (Gemini).
func NewVertexClient(ctx context.Context, projectID, location, modelName string) (*VertexClient, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("vertex client: project and location are required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements domain.ModelClient using Vertex AI. The model is
// forced to JSON output; whether the payload matches the requested schema
// is the caller's problem (a parse failure there is a processing failure).
func (v *VertexClient) Complete(ctx context.Context, req domain.ModelRequest) (json.RawMessage, error) {
	// History (user / agent) as conversation
	var contents []*genai.Content
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleAgent {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	// Current user message
	contents = append(contents, genai.NewContentFromText(req.Message, genai.RoleUser))

	temp := req.Temperature
	outputTokens := int32(8192)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.Instructions, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   outputTokens,
		ResponseMIMEType:  "application/json",
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return nil, fmt.Errorf("vertex returned empty text")
	}

	return json.RawMessage(text), nil
}
