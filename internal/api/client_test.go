package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDo_HeadersAndBody(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotType, gotRequestID string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c := New(server.URL+"/", WithHTTPClient(server.Client()), WithTokenSource(func() string { return "t1" }))

	resp, err := c.Post(context.Background(), "/auth/login", map[string]string{"username": "coach1"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s", gotMethod)
	}
	if gotPath != "/auth/login" {
		t.Errorf("path = %s, trailing slash in base url should be trimmed", gotPath)
	}
	if gotAuth != "Bearer t1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotRequestID == "" {
		t.Error("expected X-Request-ID header")
	}
	if gotBody["username"] != "coach1" {
		t.Errorf("body = %v", gotBody)
	}
	if resp.StatusCode != http.StatusCreated || !resp.OK() {
		t.Errorf("status = %d, OK = %v", resp.StatusCode, resp.OK())
	}
}

func TestDo_NoTokenNoAuthorization(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))
	if _, err := c.Get(context.Background(), "/trainer/players"); err != nil {
		t.Fatal(err)
	}
	if hasAuth {
		t.Error("Authorization header must be absent without a session")
	}
}

func TestDo_NonSuccessIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Credenciais inválidas"}`))
	}))
	defer server.Close()

	c := New(server.URL, WithHTTPClient(server.Client()))
	resp, err := c.Post(context.Background(), "/auth/login", nil)
	if err != nil {
		t.Fatalf("non-2xx should not be an error: %v", err)
	}
	if resp.OK() {
		t.Error("401 should not be OK")
	}
	if msg := resp.Message("Login failed"); msg != "Credenciais inválidas" {
		t.Errorf("Message = %q", msg)
	}
}

func TestDo_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url)
	_, err := c.Get(context.Background(), "/trainer/players")
	if err == nil {
		t.Fatal("expected error against a closed server")
	}
	if !errors.Is(err, ErrConnection) {
		t.Errorf("expected ErrConnection, got %v", err)
	}
}

func TestResponse_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Username já existe"}`, "Username já existe"},
		{"error field", `{"error":"Email inválido"}`, "Email inválido"},
		{"message wins", `{"message":"a","error":"b"}`, "a"},
		{"empty object", `{}`, "fallback"},
		{"not json", `<html>502</html>`, "fallback"},
		{"empty body", ``, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Response{StatusCode: 400, Body: []byte(tt.body)}
			if got := r.Message("fallback"); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
