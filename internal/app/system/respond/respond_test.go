package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.Validation("bad"), want: http.StatusBadRequest},
		{name: "auth", err: apperr.Auth("no"), want: http.StatusUnauthorized},
		{name: "forbidden", err: apperr.Forbidden("no"), want: http.StatusForbidden},
		{name: "not found", err: apperr.NotFound("gone"), want: http.StatusNotFound},
		{name: "conflict", err: apperr.Conflict("dup"), want: http.StatusConflict},
		{name: "storage", err: apperr.Storage(errors.New("io")), want: http.StatusInternalServerError},
		{name: "foreign", err: errors.New("plain"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, zap.NewNop(), tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}

			var env Envelope
			if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
				t.Fatalf("body is not a valid envelope: %v", err)
			}
			if env.Success {
				t.Error("error envelope must not be successful")
			}
		})
	}
}

func TestError_HidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, zap.NewNop(), apperr.Storage(errors.New("dial tcp 10.0.0.5: connection refused")))

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.Message != "storage failure, please retry" {
		t.Errorf("message = %q, internal detail must not leak", env.Message)
	}
}

func TestDataMeta(t *testing.T) {
	w := httptest.NewRecorder()
	DataMeta(w, http.StatusOK, []string{"a", "b"}, Meta{Total: 2, Page: 1, Limit: 10, TotalPages: 1})

	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}

	var env struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
		Meta    *Meta    `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if !env.Success || len(env.Data) != 2 || env.Meta == nil || env.Meta.Total != 2 {
		t.Errorf("envelope = %+v", env)
	}
}

func TestMessage_OmitsEmptyFields(t *testing.T) {
	w := httptest.NewRecorder()
	Message(w, http.StatusOK, "done")

	var raw map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if _, ok := raw["data"]; ok {
		t.Error("data key must be omitted when empty")
	}
	if _, ok := raw["meta"]; ok {
		t.Error("meta key must be omitted when empty")
	}
}
