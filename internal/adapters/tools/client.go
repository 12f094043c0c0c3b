package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tcsatheesh/semker/internal/domain"
)

const (
	messageIDHeader      = "x-ms-message-id"
	conversationIDHeader = "x-ms-conversation-id"

	dialTimeout    = 5 * time.Second
	requestTimeout = 60 * time.Second
)

// HTTPDialer opens connections to the domain tool services. One dialer is
// shared by all specialists; each Dial produces an independent connection
// carrying its own correlation headers.
type HTTPDialer struct {
	client *http.Client
}

func NewHTTPDialer() *HTTPDialer {
	return &HTTPDialer{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Dial performs a handshake GET against the endpoint and returns a
// connection scoped to these correlation ids.
func (d *HTTPDialer) Dial(ctx context.Context, endpoint string, headers domain.ToolHeaders) (domain.ToolConn, error) {
	hctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(hctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tool dial %s: %w", endpoint, err)
	}
	setHeaders(req, headers)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tool dial %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tool dial %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	return &httpConn{
		client:   d.client,
		endpoint: endpoint,
		headers:  headers,
	}, nil
}

// httpConn is one open tool connection. Close is idempotent-safe for the
// caller but must be invoked exactly once per Dial by contract.
type httpConn struct {
	client   *http.Client
	endpoint string
	headers  domain.ToolHeaders

	mu     sync.Mutex
	closed bool
}

// Query POSTs {endpoint}/{operation} with the args as JSON body and returns
// the raw JSON payload. Domain "unavailable" answers come back as data, not
// as an error; errors here mean transport or protocol trouble.
func (c *httpConn) Query(ctx context.Context, operation string, args map[string]any) (json.RawMessage, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("tool query %s: connection closed", operation)
	}
	c.mu.Unlock()

	body := []byte("{}")
	if len(args) > 0 {
		var err error
		body, err = json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("tool query %s: encoding args: %w", operation, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/"+operation, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tool query %s: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	setHeaders(req, c.headers)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tool query %s: %w", operation, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tool query %s: reading response: %w", operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tool query %s: status %d: %s", operation, resp.StatusCode, payload)
	}

	return json.RawMessage(payload), nil
}

func (c *httpConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("tool connection already closed")
	}
	c.closed = true
	return nil
}

func setHeaders(req *http.Request, headers domain.ToolHeaders) {
	req.Header.Set(messageIDHeader, string(headers.MessageID))
	req.Header.Set(conversationIDHeader, string(headers.ConversationID))
}
