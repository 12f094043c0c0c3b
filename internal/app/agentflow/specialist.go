package agentflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tcsatheesh/semker/internal/domain"
	"github.com/tcsatheesh/semker/internal/observability"
)

// Specialist is one domain agent (Billing, Roaming, Tariff, Faq). All four
// share this implementation; only the Spec differs. Each call opens its own
// tool connection and closes it before returning, on every path.
type Specialist struct {
	spec  Spec
	model domain.ModelClient
	tools domain.ToolDialer
}

func NewSpecialist(spec Spec, model domain.ModelClient, tools domain.ToolDialer) *Specialist {
	return &Specialist{
		spec:  spec,
		model: model,
		tools: tools,
	}
}

func (s *Specialist) Name() string {
	return s.spec.Name
}

// specialistReply is the structured output every specialist model call must
// produce. Steps are published through the callback before the final reply.
type specialistReply struct {
	Steps              []string `json:"steps"`
	Reply              string   `json:"reply"`
	HumanInputRequired bool     `json:"human_input_required"`
	AbleToServe        bool     `json:"able_to_serve"`
}

func (s *Specialist) Process(ctx context.Context, in Input) (Result, error) {
	log := observability.LoggerFromContext(ctx).With("agent", s.Name())

	conn, err := s.tools.Dial(ctx, s.spec.Endpoint, domain.ToolHeaders{
		MessageID:      in.MessageID,
		ConversationID: in.ConversationID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s agent: tool connect: %w", s.Name(), err)
	}
	// Closed exactly once, also when the model call or parsing fails.
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Error("tool close failed", "error", cerr)
		}
	}()

	toolData, err := conn.Query(ctx, s.spec.ToolOp, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%s agent: tool query %s: %w", s.Name(), s.spec.ToolOp, err)
	}

	raw, err := s.model.Complete(ctx, domain.ModelRequest{
		Instructions: s.spec.Instructions + "\nTool data:\n" + string(toolData),
		Temperature:  s.spec.Temperature,
		Schema:       domain.SchemaAgentReply,
		History:      in.Thread.Turns,
		Message:      in.Message,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s agent: model call: %w", s.Name(), err)
	}

	var reply specialistReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return Result{}, fmt.Errorf("%s agent: unparseable model output: %w", s.Name(), err)
	}

	// Intermediate reasoning first, then the "received" marker; the
	// terminal update is the processor's job.
	for _, step := range reply.Steps {
		in.OnUpdate(domain.StatusInProgress, step, s.Name())
	}
	in.OnUpdate(domain.StatusInProgress,
		fmt.Sprintf("%s agent response received.", s.Name()), s.Name())

	in.Thread.Append(domain.RoleUser, in.Message)
	in.Thread.Append(domain.RoleAgent, reply.Reply)

	log.Info("specialist done", "able_to_serve", reply.AbleToServe)

	return Result{
		Reply:              reply.Reply,
		AbleToServe:        reply.AbleToServe,
		HumanInputRequired: reply.HumanInputRequired,
		Thread:             in.Thread,
		AgentName:          s.Name(),
	}, nil
}
