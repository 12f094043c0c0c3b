package observability

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey string

const (
	ctxKeyMessageID      ctxKey = "message_id"
	ctxKeyConversationID ctxKey = "conversation_id"
)

// basic global logger, JSON to stdout.
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Logger() *slog.Logger {
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// WithMessageIDs stores the correlation ids of one processing cycle in the context.
func WithMessageIDs(ctx context.Context, messageID, conversationID string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyMessageID, messageID)
	return context.WithValue(ctx, ctxKeyConversationID, conversationID)
}

// LoggerFromContext adds message_id and conversation_id if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	log := logger
	if msgID, _ := ctx.Value(ctxKeyMessageID).(string); msgID != "" {
		log = log.With("message_id", msgID)
	}
	if convID, _ := ctx.Value(ctxKeyConversationID).(string); convID != "" {
		log = log.With("conversation_id", convID)
	}
	return log
}
