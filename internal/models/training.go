package models

import (
	"bytes"
	"encoding/json"
)

type Training struct {
	ID          int        `json:"id,omitempty"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Difficulty  string     `json:"difficulty"`
	Duration    int        `json:"duration"` // minutes
	Description *string    `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

// TrainingList decodes the /training/ response, which is either wrapped as
// {"trainings": [...]} or sent as a bare list.
type TrainingList []Training

func (l *TrainingList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var bare []Training
		if err := json.Unmarshal(data, &bare); err != nil {
			return err
		}
		*l = bare
		return nil
	}

	var envelope struct {
		Trainings []Training `json:"trainings"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	*l = envelope.Trainings
	return nil
}
