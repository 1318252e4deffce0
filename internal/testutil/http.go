package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devflowhq/devflow/internal/app/system/auth"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// ManagementUser returns a TestUser with the management role.
func ManagementUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Manager",
		Email: "manager@test.com",
		Role:  models.RoleManagement,
	}
}

// TeamMemberUser returns a TestUser with the team member role.
func TeamMemberUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Member",
		Email: "member@test.com",
		Role:  models.RoleTeamMember,
	}
}

// WithUser adds a user to the request context for testing authenticated
// handlers. This bypasses the token middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// NewRequest creates an HTTP request for testing. A non-empty body is sent
// as JSON.
func NewRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target, body string, user TestUser) *http.Request {
	return WithUser(NewRequest(method, target, body), user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q; body: %s", expected, r.Body.String())
	}
}

// Envelope is the decoded JSON response shape shared by all handlers.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total      int `json:"total"`
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		TotalPages int `json:"totalPages"`
	} `json:"meta"`
}

// DecodeEnvelope parses the recorded body into an Envelope, failing the test
// on malformed JSON.
func (r *ResponseRecorder) DecodeEnvelope(t interface {
	Fatalf(string, ...any)
}) Envelope {
	var env Envelope
	if err := json.Unmarshal(r.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v; body: %s", err, r.Body.String())
	}
	return env
}
