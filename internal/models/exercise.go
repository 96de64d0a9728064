package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a free-form value the server may send either as a JSON string or
// as a number ("8-12" reps, 8 reps, "60kg", 60.5).
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	if f, err := n.Float64(); err == nil {
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Blank reports whether t is empty or a numeric zero.
func (t Text) Blank() bool {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}

type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   Text   `json:"reps"`
	Weight Text   `json:"weight,omitempty"` // Blank means bodyweight.
}
