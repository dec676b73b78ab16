package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestRequestLogger(t *testing.T) {
	tests := map[string]struct {
		status    int
		wantLevel string
	}{
		"ok":           {status: http.StatusOK, wantLevel: "info"},
		"created":      {status: http.StatusCreated, wantLevel: "info"},
		"bad request":  {status: http.StatusBadRequest, wantLevel: "warn"},
		"not found":    {status: http.StatusNotFound, wantLevel: "warn"},
		"server error": {status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			h := middleware.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte("body"))
			})))

			req := httptest.NewRequest(http.MethodGet, "/dynasties/abc/seasons/2025", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("error parsing log line '%s': %v", buf.String(), err)
			}

			if line["level"] != tc.wantLevel {
				t.Errorf("level - expected: '%s', got: '%v'", tc.wantLevel, line["level"])
			}
			if line["path"] != "/dynasties/abc/seasons/2025" || line["method"] != "GET" {
				t.Errorf("unexpected request fields: %v", line)
			}
			if int(line["status"].(float64)) != tc.status {
				t.Errorf("status - expected: %d, got: %v", tc.status, line["status"])
			}
			if int(line["bytes"].(float64)) != 4 {
				t.Errorf("bytes - expected: 4, got: %v", line["bytes"])
			}
			if line["request_id"] == "" || line["request_id"] == nil {
				t.Errorf("expected a request id, got: %v", line)
			}
		})
	}
}

func TestRequestLogger_implicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("error parsing log line '%s': %v", buf.String(), err)
	}
	if int(line["status"].(float64)) != http.StatusOK {
		t.Errorf("expected status 200, got: %v", line["status"])
	}
}

func TestInitWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitWithWriter("dynasty_test", &buf)
	logger.Info().Msg("hello")

	if !bytes.Contains(buf.Bytes(), []byte("hello")) || !bytes.Contains(buf.Bytes(), []byte("dynasty_test")) {
		t.Errorf("unexpected log output: '%s'", buf.String())
	}
}
