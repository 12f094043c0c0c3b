package agentflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tcsatheesh/semker/internal/app/agentflow"
	"github.com/tcsatheesh/semker/internal/domain"
)

func billingSpec() agentflow.Spec {
	catalog := testCatalog()
	spec, ok := catalog.Lookup("Billing")
	if !ok {
		panic("Billing missing from catalog")
	}
	return spec
}

func specialistInput(rec *updateRecorder) agentflow.Input {
	return agentflow.Input{
		Message:        "How much was my November bill?",
		MessageID:      "msg-7",
		ConversationID: "conv-7",
		Thread:         &domain.Thread{},
		OnUpdate:       rec.fn(),
	}
}

func TestSpecialistHappyPath(t *testing.T) {
	model := &stubModel{
		complete: func(req domain.ModelRequest) (json.RawMessage, error) {
			return json.RawMessage(`{
				"steps": ["Interpreting the question.", "Checking billing data."],
				"reply": "Your November bill was 90 EUR.",
				"human_input_required": false,
				"able_to_serve": true
			}`), nil
		},
	}
	conn := &stubConn{payload: json.RawMessage(`{"bills":[{"month":11}]}`)}
	dialer := &stubDialer{conn: conn}
	rec := &updateRecorder{}

	specialist := agentflow.NewSpecialist(billingSpec(), model, dialer)
	result, err := specialist.Process(context.Background(), specialistInput(rec))
	require.NoError(t, err)

	require.Equal(t, "Your November bill was 90 EUR.", result.Reply)
	require.Equal(t, "Billing", result.AgentName)
	require.True(t, result.AbleToServe)
	require.False(t, result.HumanInputRequired)

	// steps published in order, each tagged with the specialist's name,
	// then the "response received" marker
	require.Len(t, rec.updates, 3)
	require.Equal(t, "Interpreting the question.", rec.updates[0].Result)
	require.Equal(t, "Checking billing data.", rec.updates[1].Result)
	require.Equal(t, "Billing agent response received.", rec.updates[2].Result)
	for _, u := range rec.updates {
		require.Equal(t, domain.StatusInProgress, u.Status)
		require.Equal(t, "Billing", u.AgentName)
	}

	// tool data reached the model
	require.Len(t, model.requests, 1)
	require.Contains(t, model.requests[0].Instructions, `"bills"`)
	require.Equal(t, domain.SchemaAgentReply, model.requests[0].Schema)

	// connection closed exactly once
	require.Equal(t, 1, conn.closes)

	// thread got the exchange
	require.Equal(t, 2, result.Thread.Len())
	require.Equal(t, domain.RoleUser, result.Thread.Turns[0].Role)
	require.Equal(t, domain.RoleAgent, result.Thread.Turns[1].Role)
}

func TestSpecialistClosesToolOnModelFailure(t *testing.T) {
	model := &stubModel{
		complete: func(req domain.ModelRequest) (json.RawMessage, error) {
			return nil, errors.New("model blew up")
		},
	}
	conn := &stubConn{}
	dialer := &stubDialer{conn: conn}
	rec := &updateRecorder{}

	specialist := agentflow.NewSpecialist(billingSpec(), model, dialer)
	_, err := specialist.Process(context.Background(), specialistInput(rec))
	require.Error(t, err)
	require.Equal(t, 1, conn.closes, "tool connection must be closed exactly once on failure")
}

func TestSpecialistClosesToolOnMalformedOutput(t *testing.T) {
	model := &stubModel{
		complete: func(req domain.ModelRequest) (json.RawMessage, error) {
			return json.RawMessage(`{"reply": 42}`), nil
		},
	}
	conn := &stubConn{}
	dialer := &stubDialer{conn: conn}
	rec := &updateRecorder{}

	specialist := agentflow.NewSpecialist(billingSpec(), model, dialer)
	_, err := specialist.Process(context.Background(), specialistInput(rec))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unparseable model output")
	require.Equal(t, 1, conn.closes)
}

func TestSpecialistDialFailure(t *testing.T) {
	model := &stubModel{
		complete: func(req domain.ModelRequest) (json.RawMessage, error) {
			t.Fatal("model must not be called when the tool connect fails")
			return nil, nil
		},
	}
	dialer := &stubDialer{dialErr: errors.New("connection refused")}
	rec := &updateRecorder{}

	specialist := agentflow.NewSpecialist(billingSpec(), model, dialer)
	_, err := specialist.Process(context.Background(), specialistInput(rec))
	require.Error(t, err)
	require.Contains(t, err.Error(), "tool connect")
}

func TestSpecialistQueryFailure(t *testing.T) {
	model := &stubModel{
		complete: func(req domain.ModelRequest) (json.RawMessage, error) {
			t.Fatal("model must not be called when the tool query fails")
			return nil, nil
		},
	}
	conn := &stubConn{queryErr: errors.New("boom")}
	dialer := &stubDialer{conn: conn}
	rec := &updateRecorder{}

	specialist := agentflow.NewSpecialist(billingSpec(), model, dialer)
	_, err := specialist.Process(context.Background(), specialistInput(rec))
	require.Error(t, err)
	require.Equal(t, 1, conn.closes)
}
