// Package respond writes the uniform JSON envelope used by every API
// endpoint: {success, message?, data?, meta?}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"go.uber.org/zap"
)

// Meta carries pagination metadata for windowed query results.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the response wrapper shared by all endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// Data writes a successful envelope carrying data.
func Data(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, Envelope{Success: true, Data: data})
}

// DataMeta writes a successful envelope carrying data plus pagination meta.
func DataMeta(w http.ResponseWriter, status int, data interface{}, meta Meta) {
	write(w, status, Envelope{Success: true, Data: data, Meta: &meta})
}

// Message writes a successful envelope with only a human-readable message.
func Message(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: true, Message: msg})
}

// DataMessage writes a successful envelope with both a message and data.
func DataMessage(w http.ResponseWriter, status int, msg string, data interface{}) {
	write(w, status, Envelope{Success: true, Message: msg, Data: data})
}

// Fail writes an unsuccessful envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, msg string) {
	write(w, status, Envelope{Success: false, Message: msg})
}

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error converts err into the failure envelope. Storage and unknown errors
// are logged with their cause and surfaced as a generic 500; everything
// else carries its client-facing message through untouched.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	Fail(w, status, apperr.MessageOf(err))
}
