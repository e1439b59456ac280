// Package chat serves the mock chatbot endpoint.
package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// StatusSuccess is the only status the endpoint ever reports.
const StatusSuccess = "success"

// Envelope is the JSON body written for every chat call.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewEnvelope() Envelope {
	return Envelope{
		Status:  StatusSuccess,
		Message: PredefinedResponse,
	}
}

// Handler answers chat queries with the canned response after Delay.
// The request body is never read.
type Handler struct {
	Delay time.Duration
	Log   *slog.Logger
}

func NewHandler(delay time.Duration, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Delay: delay, Log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.Log
	if log == nil {
		log = slog.Default()
	}
	log.Debug("mock chatbot: received query", "remote", r.RemoteAddr)

	if h.Delay > 0 {
		t := time.NewTimer(h.Delay)
		defer t.Stop()

		select {
		case <-t.C:
		case <-r.Context().Done():
			// Client is gone, nothing to answer.
			log.Debug("mock chatbot: client went away during delay", "err", r.Context().Err())
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(NewEnvelope()); err != nil {
		log.Warn("mock chatbot: failed to encode response", "err", err)
	}
}
