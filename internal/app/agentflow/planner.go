package agentflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tcsatheesh/semker/internal/domain"
	"github.com/tcsatheesh/semker/internal/observability"
)

const plannerName = "Planner"

// Planner is the root of the dispatch hierarchy. It classifies the user
// message against the specialist catalog with one model invocation and
// either delegates to the chosen specialist or answers directly.
type Planner struct {
	model   domain.ModelClient
	tools   domain.ToolDialer
	catalog *Catalog
}

func NewPlanner(model domain.ModelClient, tools domain.ToolDialer, catalog *Catalog) *Planner {
	return &Planner{
		model:   model,
		tools:   tools,
		catalog: catalog,
	}
}

func (p *Planner) Name() string {
	return plannerName
}

// plannerReply is the structured output the planner model call must produce.
type plannerReply struct {
	Reply     string `json:"reply"`
	AgentName string `json:"agent_name"`
}

// Process routes the message. A routing tag that matches the catalog hands
// the original message, ids, thread and callback to a freshly constructed
// specialist, and whatever the specialist returns is the final result. A
// tag that matches nothing is not a failure: the planner answers with its
// own direct reply and its own name.
func (p *Planner) Process(ctx context.Context, in Input) (Result, error) {
	log := observability.LoggerFromContext(ctx).With("agent", p.Name())

	raw, err := p.model.Complete(ctx, domain.ModelRequest{
		Instructions: plannerInstructionsHeader + p.catalog.Describe() + plannerInstructionsFooter,
		Temperature:  0.0,
		Schema:       domain.SchemaPlannerReply,
		History:      in.Thread.Turns,
		Message:      in.Message,
	})
	if err != nil {
		return Result{}, fmt.Errorf("planner: model call: %w", err)
	}

	var decision plannerReply
	if err := json.Unmarshal(raw, &decision); err != nil {
		return Result{}, fmt.Errorf("planner: unparseable model output: %w", err)
	}

	in.OnUpdate(domain.StatusInProgress, "Planner agent response received.", p.Name())

	spec, ok := p.catalog.Lookup(decision.AgentName)
	if !ok {
		// Catalog miss: answer directly.
		log.Info("planner answering directly", "requested_agent", decision.AgentName)

		in.Thread.Append(domain.RoleUser, in.Message)
		in.Thread.Append(domain.RoleAgent, decision.Reply)

		return Result{
			Reply:       decision.Reply,
			AbleToServe: true,
			Thread:      in.Thread,
			AgentName:   p.Name(),
		}, nil
	}

	log.Info("planner routing", "to_agent", spec.Name)
	in.OnUpdate(domain.StatusInProgress,
		fmt.Sprintf("Planner agent routing to %s agent.", spec.Name), p.Name())

	// Specialists are built fresh per delegation, never reused.
	specialist := NewSpecialist(spec, p.model, p.tools)
	return specialist.Process(ctx, in)
}
