package processor

import (
	"context"
	"time"

	"github.com/tcsatheesh/semker/internal/app/agentflow"
	"github.com/tcsatheesh/semker/internal/domain"
	"github.com/tcsatheesh/semker/internal/observability"
)

// AgentFactory builds the top-level agent for one message+conversation.
// Construction failure counts as a processing failure.
type AgentFactory func(ctx context.Context, messageID domain.MessageID, conversationID domain.ConversationID) (agentflow.Agent, error)

// Service binds message store, update log, thread registry and the agent
// hierarchy into the submit/process/poll lifecycle.
type Service struct {
	messages domain.MessageStore
	updates  domain.UpdateLog
	threads  domain.ThreadRegistry
	newAgent AgentFactory

	now       func() time.Time
	startedAt time.Time
	version   string
}

func NewService(
	messages domain.MessageStore,
	updates domain.UpdateLog,
	threads domain.ThreadRegistry,
	newAgent AgentFactory,
	version string,
) *Service {
	return &Service{
		messages:  messages,
		updates:   updates,
		threads:   threads,
		newAgent:  newAgent,
		now:       time.Now,
		startedAt: time.Now(),
		version:   version,
	}
}

// Submit records a new message as received and returns immediately.
// No agent work happens here.
func (s *Service) Submit(ctx context.Context, content string) (*domain.Message, error) {
	msg, err := s.messages.Submit(content)
	if err != nil {
		return nil, err
	}

	s.updates.Register(msg.ID)
	observability.MessagesSubmitted.Inc()

	observability.LoggerFromContext(ctx).Info("message submitted",
		"message_id", msg.ID)

	return msg, nil
}

// Dispatch launches Process as a fire-and-forget background task. The
// context is detached on purpose: nobody waits on the result, and the HTTP
// request that triggered the submission ends long before processing does.
func (s *Service) Dispatch(messageID domain.MessageID, conversationID domain.ConversationID, content string) {
	go s.Process(context.Background(), messageID, conversationID, content)
}

// Process runs one full processing cycle for a message. Errors are not
// returned: they are converted into a failed status plus a terminal update,
// observable only by polling.
func (s *Service) Process(ctx context.Context, messageID domain.MessageID, conversationID domain.ConversationID, content string) {
	ctx = observability.WithMessageIDs(ctx, string(messageID), string(conversationID))
	log := observability.LoggerFromContext(ctx)
	start := s.now()

	if err := s.messages.MarkInProgress(messageID); err != nil {
		// Unknown id or a message already past received; nothing to update.
		log.Error("cannot start processing", "error", err)
		return
	}

	s.updates.Append(messageID, domain.StatusReceived,
		"Message received and dispatched for processing.", "")

	// Serialize cycles on the same conversation so a concurrent second
	// message cannot silently discard this one's thread update.
	release := s.threads.Lock(conversationID)
	defer release()

	thread := s.threads.GetOrCreate(conversationID)

	onUpdate := func(status domain.MessageStatus, result, agentName string) {
		s.updates.Append(messageID, status, result, agentName)
	}

	agent, err := s.newAgent(ctx, messageID, conversationID)
	if err != nil {
		s.fail(ctx, messageID, err)
		return
	}

	result, err := agent.Process(ctx, agentflow.Input{
		Message:        content,
		MessageID:      messageID,
		ConversationID: conversationID,
		Thread:         thread,
		OnUpdate:       onUpdate,
	})
	if err != nil {
		s.fail(ctx, messageID, err)
		return
	}

	s.threads.Put(conversationID, result.Thread)

	processedAt := s.now()
	if err := s.messages.MarkTerminal(messageID, domain.StatusCompleted, processedAt); err != nil {
		log.Error("cannot mark completed", "error", err)
		return
	}

	s.updates.Append(messageID, domain.StatusCompleted, result.Reply, result.AgentName)
	observability.MessagesCompleted.Inc()
	observability.ProcessingDuration.Observe(processedAt.Sub(start).Seconds())

	log.Info("message processed", "agent", result.AgentName)
}

// fail converts any processing error into the failed terminal state. The
// error text is the only failure signal a polling client gets; there is no
// agent name on a failure update.
func (s *Service) fail(ctx context.Context, messageID domain.MessageID, cause error) {
	processedAt := s.now()
	if err := s.messages.MarkTerminal(messageID, domain.StatusFailed, processedAt); err != nil {
		observability.LoggerFromContext(ctx).Error("cannot mark failed", "error", err)
	}

	s.updates.Append(messageID, domain.StatusFailed, cause.Error(), "")
	observability.MessagesFailed.Inc()

	observability.LoggerFromContext(ctx).Error("message processing failed", "error", cause)
}

// GetUpdates returns the ordered update history of a message.
func (s *Service) GetUpdates(ctx context.Context, id domain.MessageID) ([]domain.Update, error) {
	return s.updates.List(id)
}

// GetStatus returns the current record of a message.
func (s *Service) GetStatus(ctx context.Context, id domain.MessageID) (*domain.Message, error) {
	return s.messages.Get(id)
}

// ListAll returns every message in submission order.
func (s *Service) ListAll(ctx context.Context) []*domain.Message {
	return s.messages.ListAll()
}

// Health describes the service health snapshot.
type Health struct {
	Status        string
	Timestamp     time.Time
	Version       string
	UptimeSeconds float64
}

// HealthStatus reports uptime since this service was constructed, which is
// close to but not exactly process start.
func (s *Service) HealthStatus() Health {
	now := s.now()
	return Health{
		Status:        "healthy",
		Timestamp:     now,
		Version:       s.version,
		UptimeSeconds: now.Sub(s.startedAt).Seconds(),
	}
}
