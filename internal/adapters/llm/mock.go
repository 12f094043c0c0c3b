package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tcsatheesh/semker/internal/domain"
)

// MockModel is a deterministic stand-in for the real model service, useful
// for dev and tests. It routes by keyword and always produces well-formed
// structured output.
type MockModel struct{}

func NewMockModel() *MockModel {
	return &MockModel{}
}

func (m *MockModel) Complete(ctx context.Context, req domain.ModelRequest) (json.RawMessage, error) {
	switch req.Schema {
	case domain.SchemaPlannerReply:
		return m.plannerReply(req.Message), nil
	case domain.SchemaAgentReply:
		return m.agentReply(req.Message), nil
	default:
		return nil, fmt.Errorf("mock model: unknown schema %q", req.Schema)
	}
}

func (m *MockModel) plannerReply(message string) json.RawMessage {
	lower := strings.ToLower(message)

	agent := ""
	switch {
	case strings.Contains(lower, "bill"):
		agent = "Billing"
	case strings.Contains(lower, "roam"):
		agent = "Roaming"
	case strings.Contains(lower, "tariff"), strings.Contains(lower, "plan"):
		agent = "Tariff"
	case strings.Contains(lower, "?"):
		agent = "Faq"
	}

	reply := "I can help with billing, roaming, tariffs and general questions. What do you need?"
	out, _ := json.Marshal(map[string]string{
		"reply":      reply,
		"agent_name": agent,
	})
	return out
}

func (m *MockModel) agentReply(message string) json.RawMessage {
	out, _ := json.Marshal(map[string]any{
		"steps": []string{
			"Interpreting the question.",
			"Checking the tool data.",
		},
		"reply":                fmt.Sprintf("Here is what I found for %q.", message),
		"human_input_required": false,
		"able_to_serve":        true,
	})
	return out
}
