package agentflow_test

import (
	"context"
	"encoding/json"

	"github.com/tcsatheesh/semker/internal/app/agentflow"
	"github.com/tcsatheesh/semker/internal/domain"
)

// stubModel lets a test script the model's structured output per request.
type stubModel struct {
	complete func(req domain.ModelRequest) (json.RawMessage, error)
	requests []domain.ModelRequest
}

func (m *stubModel) Complete(ctx context.Context, req domain.ModelRequest) (json.RawMessage, error) {
	m.requests = append(m.requests, req)
	return m.complete(req)
}

// stubConn counts closes so tests can assert leak-free tool discipline.
type stubConn struct {
	payload  json.RawMessage
	queryErr error
	closes   int
}

func (c *stubConn) Query(ctx context.Context, operation string, args map[string]any) (json.RawMessage, error) {
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	if c.payload == nil {
		return json.RawMessage(`{}`), nil
	}
	return c.payload, nil
}

func (c *stubConn) Close() error {
	c.closes++
	return nil
}

type stubDialer struct {
	conn         *stubConn
	dialErr      error
	lastEndpoint string
	lastHeaders  domain.ToolHeaders
}

func (d *stubDialer) Dial(ctx context.Context, endpoint string, headers domain.ToolHeaders) (domain.ToolConn, error) {
	d.lastEndpoint = endpoint
	d.lastHeaders = headers
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.conn, nil
}

// updateRecorder collects intermediate updates in emission order.
type updateRecorder struct {
	updates []recordedUpdate
}

type recordedUpdate struct {
	Status    domain.MessageStatus
	Result    string
	AgentName string
}

func (r *updateRecorder) fn() agentflow.UpdateFunc {
	return func(status domain.MessageStatus, result, agentName string) {
		r.updates = append(r.updates, recordedUpdate{Status: status, Result: result, AgentName: agentName})
	}
}
