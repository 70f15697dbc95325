package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinichq/clinic-scheduler/pkg/logging"
)

func newBufferLogger(buf *bytes.Buffer) *logging.Logger {
	return &logging.Logger{Logger: slog.New(slog.NewJSONHandler(buf, nil))}
}

func TestRequestLoggerRecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	mw := RequestLogger(newBufferLogger(&buf))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/appointments/office", nil)
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)

	line := buf.String()
	if !strings.Contains(line, `"msg":"request completed"`) {
		t.Fatalf("expected completion log, got %q", line)
	}
	if !strings.Contains(line, `"status":201`) {
		t.Fatalf("expected status in log, got %q", line)
	}
	if !strings.Contains(line, `"bytes":11`) {
		t.Fatalf("expected body size in log, got %q", line)
	}
	if !strings.Contains(line, `"path":"/appointments/office"`) {
		t.Fatalf("expected path in log, got %q", line)
	}
}

func TestRequestLoggerEchoesSuppliedRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := RequestLogger(newBufferLogger(&buf))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("expected request id echoed on response, got %q", got)
	}
	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Fatalf("expected request id in log, got %q", buf.String())
	}
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := RequestLogger(newBufferLogger(&buf))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id on response")
	}
}
