package api

import (
	"encoding/json"
	"fmt"
)

// Response is a completed HTTP exchange. Body may be empty or not JSON.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing response JSON: %w", err)
	}
	return nil
}

// Message returns the server-provided message ("message", then "error"), or
// fallback when the body carries neither.
func (r *Response) Message(fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return fallback
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return fallback
}
