package domain

import "time"

type MessageID string
type ConversationID string

type Timestamp = time.Time

// MessageStatus is the lifecycle state of a submitted message.
type MessageStatus string

const (
	StatusReceived   MessageStatus = "received"
	StatusInProgress MessageStatus = "inprogress"
	StatusCompleted  MessageStatus = "completed"
	StatusFailed     MessageStatus = "failed"
)

// Terminal reports whether the status is final. There are no transitions
// out of a terminal status.
func (s MessageStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo encodes the lifecycle state machine:
// received -> inprogress -> {completed, failed}. No step is skipped.
func (s MessageStatus) CanTransitionTo(next MessageStatus) bool {
	switch s {
	case StatusReceived:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// Message is the authoritative record of one submitted chat message.
// Created at submission, mutated only by the processor, never deleted.
type Message struct {
	ID          MessageID
	Content     string
	Status      MessageStatus
	SubmittedAt Timestamp
	ProcessedAt *Timestamp
}

// Update is one processing event in a message's history.
// Immutable once appended; insertion order is chronological order.
type Update struct {
	MessageID MessageID
	Status    MessageStatus
	Timestamp Timestamp
	Result    string
	AgentName string
}
