package sanipath

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.healthHandler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	if body := w.Body.String(); body != "OK\n" {
		t.Errorf("expected body 'OK\\n', got '%s'", body)
	}
}

func TestSanitizeHandler_MissingPath(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/sanitize", nil)
	w := httptest.NewRecorder()

	server.sanitizeHandler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error == "" {
		t.Error("expected error message in response")
	}
}

func TestSanitizeHandler(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/sanitize?path="+url.QueryEscape("logs/nul.txt"), nil)
	w := httptest.NewRecorder()

	server.sanitizeHandler(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body SanitizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Sanitized != "logs/_nul_.txt" {
		t.Errorf("expected logs/_nul_.txt, got %q", body.Sanitized)
	}
	if !body.Changed {
		t.Error("expected changed=true")
	}
	if len(body.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", body.Warnings)
	}
}

func TestSanitizeHandler_CleanPath(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/sanitize?path="+url.QueryEscape("abc/def/22"), nil)
	w := httptest.NewRecorder()

	server.sanitizeHandler(w, req)

	var body SanitizeResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Changed {
		t.Error("expected changed=false for an already-legal path")
	}
	if len(body.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", body.Warnings)
	}
}

func TestSanitizeHandler_QuietPolicy(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{Quiet: true})

	req := httptest.NewRequest(http.MethodGet, "/sanitize?path="+url.QueryEscape("logs/nul.txt"), nil)
	w := httptest.NewRecorder()

	server.sanitizeHandler(w, req)

	var body SanitizeResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Quiet suppresses the warnings, not the sanitization itself.
	if body.Sanitized != "logs/_nul_.txt" {
		t.Errorf("expected logs/_nul_.txt, got %q", body.Sanitized)
	}
	if !body.Changed {
		t.Error("expected changed=true")
	}
	if len(body.Warnings) != 0 {
		t.Errorf("expected no warnings under a quiet policy, got %v", body.Warnings)
	}
}

func TestSanitizeHandler_LongUNC(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/sanitize?path="+url.QueryEscape(`\\?\C:\x`), nil)
	w := httptest.NewRecorder()

	server.sanitizeHandler(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestNodeHandler(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/node?name=NUL", nil)
	w := httptest.NewRecorder()

	server.nodeHandler(w, req)

	var body NodeResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Sanitized != "_NUL_" {
		t.Errorf("expected _NUL_, got %q", body.Sanitized)
	}
}

func TestNodeHandler_Contradiction(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/node?name=notadrive&root=true", nil)
	w := httptest.NewRecorder()

	server.nodeHandler(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Result().StatusCode)
	}
}

func TestNodeHandler_TooLong(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	req := httptest.NewRequest(http.MethodGet, "/node?name="+string(long), nil)
	w := httptest.NewRecorder()

	server.nodeHandler(w, req)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Result().StatusCode)
	}
}

func TestNodeHandler_PolicyDefaultsAndOverrides(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{FATCompatible: true})

	req := httptest.NewRequest(http.MethodGet, "/node?name=CLOCK$", nil)
	w := httptest.NewRecorder()
	server.nodeHandler(w, req)

	var body NodeResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Sanitized != "_CLOCK$_" {
		t.Errorf("configured FAT policy should apply, got %q", body.Sanitized)
	}

	req = httptest.NewRequest(http.MethodGet, "/node?name=CLOCK$&fat=false", nil)
	w = httptest.NewRecorder()
	server.nodeHandler(w, req)

	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Sanitized != "CLOCK$" {
		t.Errorf("query override should win, got %q", body.Sanitized)
	}
}

func TestNodeHandler_BadBool(t *testing.T) {
	server := NewServer(":8080", PolicyConfig{})

	req := httptest.NewRequest(http.MethodGet, "/node?name=x&file=maybe", nil)
	w := httptest.NewRecorder()

	server.nodeHandler(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Result().StatusCode)
	}
}
