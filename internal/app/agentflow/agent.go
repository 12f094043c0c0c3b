package agentflow

import (
	"context"

	"github.com/tcsatheesh/semker/internal/domain"
)

// UpdateFunc publishes a human-readable intermediate status string tagged
// with the emitting agent's name. Called zero or more times per agent call.
type UpdateFunc func(status domain.MessageStatus, result, agentName string)

// Input carries one message through the agent hierarchy. MessageID and
// ConversationID are correlation only; the thread is the dialogue context
// the conversation accumulated so far.
type Input struct {
	Message        string
	MessageID      domain.MessageID
	ConversationID domain.ConversationID
	Thread         *domain.Thread
	OnUpdate       UpdateFunc
}

// Result is the canonical result bundle every agent returns. AgentName is
// the agent that actually produced the reply, which on delegation is the
// specialist, not the planner.
type Result struct {
	Reply              string
	AbleToServe        bool
	HumanInputRequired bool
	Thread             *domain.Thread
	AgentName          string
}

// Agent is one node of the dispatch hierarchy. Agents are stateless per
// invocation: identity and configuration only, no mutable shared state.
// On failure the call returns an error and no partial Result.
type Agent interface {
	Name() string
	Process(ctx context.Context, in Input) (Result, error)
}
