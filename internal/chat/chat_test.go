package chat

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlerIgnoresBody(t *testing.T) {
	h := NewHandler(0, quietLogger())

	bodies := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"empty object", "{}"},
		{"malformed json", `{"input_value": `},
		{"binary", "\x00\xff\x10garbage"},
		{"chat payload", `{"input_value":"how many likes do reels get?","output_type":"chat"}`},
	}

	var first []byte
	for _, tc := range bodies {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content type = %q", ct)
			}
			if first == nil {
				first = rec.Body.Bytes()
				return
			}
			if got := rec.Body.Bytes(); string(got) != string(first) {
				t.Fatalf("body differs across inputs:\n%s\nvs\n%s", got, first)
			}
		})
	}
}

func TestHandlerEnvelope(t *testing.T) {
	h := NewHandler(0, quietLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Status != "success" {
		t.Fatalf("status = %q, want success", env.Status)
	}
	if env.Message != PredefinedResponse {
		t.Fatalf("message mismatch:\n%q", env.Message)
	}
	if !strings.HasPrefix(env.Message, "While specific average likes on reels can vary widely") {
		t.Fatalf("unexpected message prefix: %q", env.Message[:40])
	}
	if !strings.Contains(env.Message, "* *Average Engagement Rate:* Reels have an impressive average engagement rate of *5.2%*") {
		t.Fatal("message lost its emphasis markers")
	}
}

func TestHandlerWaitsForDelay(t *testing.T) {
	const delay = 200 * time.Millisecond
	h := NewHandler(delay, quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	rec := httptest.NewRecorder()

	start := time.Now()
	h.ServeHTTP(rec, req)
	elapsed := time.Since(start)

	if elapsed < delay*9/10 {
		t.Fatalf("responded after %v, want at least %v", elapsed, delay*9/10)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandlerStopsWhenClientLeaves(t *testing.T) {
	h := NewHandler(time.Hour, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		h.ServeHTTP(rec, req)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler kept waiting after cancellation")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body, got %q", rec.Body.String())
	}
}

func TestNewHandlerDefaultsLogger(t *testing.T) {
	h := NewHandler(0, nil)
	if h.Log == nil {
		t.Fatal("nil logger")
	}
}

func TestZeroValueHandler(t *testing.T) {
	var h Handler
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env != NewEnvelope() {
		t.Fatalf("envelope = %+v", env)
	}
}
