package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tcsatheesh/semker/internal/app/processor"
	"github.com/tcsatheesh/semker/internal/domain"
)

const conversationIDHeader = "x-ms-conversation-id"

type Server struct {
	svc *processor.Service
}

func NewServer(svc *processor.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	// /messages            → POST: submit, GET: list all
	// /messages/{id}/updates → GET: update history
	// /messages/{id}/status  → GET: current status
	mux.HandleFunc("/messages", s.handleMessages)
	mux.HandleFunc("/messages/", s.handleMessageWithID)

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", s.handleRoot)

	return chainMiddlewares(mux, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type submitRequest struct {
	Message string `json:"message"`
}

type submitResponse struct {
	MessageID  string    `json:"message_id"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

type updateResponse struct {
	MessageID   string    `json:"message_id"`
	Status      string    `json:"status"`
	ProcessedAt time.Time `json:"processed_at"`
	Result      string    `json:"result,omitempty"`
	AgentName   string    `json:"agent_name,omitempty"`
}

type statusResponse struct {
	MessageID string    `json:"message_id"`
	Status    string    `json:"status"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type listItem struct {
	MessageID string    `json:"message_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type listResponse struct {
	TotalMessages int        `json:"total_messages"`
	Messages      []listItem `json:"messages"`
}

type healthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

// /messages
func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleSubmit(w, r)
	case http.MethodGet:
		s.handleList(w, r)
	default:
		methodNotAllowed(w)
	}
}

// /messages/{id}/updates or /messages/{id}/status
func (s *Server) handleMessageWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/messages/")
	parts := strings.Split(path, "/")

	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := domain.MessageID(parts[0])
	switch parts[1] {
	case "updates":
		s.handleUpdates(w, r, id)
	case "status":
		s.handleStatus(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	conversationID := r.Header.Get(conversationIDHeader)
	if conversationID == "" {
		badRequest(w, "Missing required header: "+conversationIDHeader)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		unprocessable(w, "message is required")
		return
	}

	msg, err := s.svc.Submit(r.Context(), req.Message)
	if err != nil {
		internalError(w, err)
		return
	}

	// Background processing; this request does not wait for it.
	s.svc.Dispatch(msg.ID, domain.ConversationID(conversationID), req.Message)

	writeJSON(w, http.StatusCreated, submitResponse{
		MessageID:  string(msg.ID),
		Status:     string(msg.Status),
		ReceivedAt: msg.SubmittedAt,
	})
}

func (s *Server) handleUpdates(w http.ResponseWriter, r *http.Request, id domain.MessageID) {
	updates, err := s.svc.GetUpdates(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	out := make([]updateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, updateResponse{
			MessageID:   string(u.MessageID),
			Status:      string(u.Status),
			ProcessedAt: u.Timestamp,
			Result:      u.Result,
			AgentName:   u.AgentName,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request, id domain.MessageID) {
	msg, err := s.svc.GetStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		MessageID: string(msg.ID),
		Status:    string(msg.Status),
		Content:   msg.Content,
		Timestamp: msg.SubmittedAt,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	msgs := s.svc.ListAll(r.Context())

	items := make([]listItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, listItem{
			MessageID: string(m.ID),
			Status:    string(m.Status),
			Timestamp: m.SubmittedAt,
		})
	}

	writeJSON(w, http.StatusOK, listResponse{
		TotalMessages: len(items),
		Messages:      items,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	h := s.svc.HealthStatus()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        h.Status,
		Timestamp:     h.Timestamp,
		Version:       h.Version,
		UptimeSeconds: h.UptimeSeconds,
	})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"detail": msg,
	})
}

func unprocessable(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
		"detail": msg,
	})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"detail": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"detail": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"detail": "method not allowed",
	})
}
