package toolserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tcsatheesh/semker/internal/observability"
)

// Server exposes the billing, roaming, tariff and faq domain-data services
// over plain JSON HTTP. A GET on a service base path is the connection
// handshake; POST {base}/{operation} runs a query. Unknown months or
// countries answer with an explicit "unavailable" payload, not an error.
type Server struct{}

func NewServer() http.Handler {
	s := &Server{}
	mux := http.NewServeMux()

	mux.HandleFunc("/bill", s.handleReady)
	mux.HandleFunc("/bill/get_billing_data", s.handleBilling)
	mux.HandleFunc("/roam", s.handleReady)
	mux.HandleFunc("/roam/get_roaming_rates", s.handleRoaming)
	mux.HandleFunc("/tariff", s.handleReady)
	mux.HandleFunc("/tariff/get_tariff_plans", s.handleTariff)
	mux.HandleFunc("/faq", s.handleReady)
	mux.HandleFunc("/faq/get_faq_data", s.handleFaq)

	return withToolLogging(mux)
}

type queryArgs struct {
	Month   *int   `json:"month,omitempty"`
	Country string `json:"country,omitempty"`
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request) {
	args, ok := decodeArgs(w, r)
	if !ok {
		return
	}

	if args.Month == nil {
		writeJSON(w, http.StatusOK, map[string]any{"bills": bills})
		return
	}

	for _, bill := range bills {
		if bill.Month == *args.Month {
			writeJSON(w, http.StatusOK, map[string]any{"bills": []Bill{bill}})
			return
		}
	}
	writeUnavailable(w, "no billing data found for the requested month")
}

func (s *Server) handleRoaming(w http.ResponseWriter, r *http.Request) {
	args, ok := decodeArgs(w, r)
	if !ok {
		return
	}

	var rates []RoamingRate
	for _, rate := range roamingRates {
		if args.Country != "" && !strings.EqualFold(rate.Country, args.Country) {
			continue
		}
		if args.Month != nil && rate.Month != *args.Month {
			continue
		}
		rates = append(rates, rate)
	}

	if len(rates) == 0 {
		writeUnavailable(w, "no roaming rates found for the requested country and month")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rates": rates})
}

func (s *Server) handleTariff(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeArgs(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": tariffPlans})
}

func (s *Server) handleFaq(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeArgs(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"faq": faqText})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func decodeArgs(w http.ResponseWriter, r *http.Request) (queryArgs, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return queryArgs{}, false
	}

	var args queryArgs
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return queryArgs{}, false
	}
	return args, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeUnavailable(w http.ResponseWriter, reason string) {
	writeJSON(w, http.StatusOK, map[string]string{"unavailable": reason})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}

// withToolLogging records every tool call with its correlation ids.
func withToolLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		observability.Logger().Info("tool call",
			"method", r.Method,
			"path", r.URL.Path,
			"message_id", r.Header.Get("x-ms-message-id"),
			"conversation_id", r.Header.Get("x-ms-conversation-id"),
		)
	})
}
