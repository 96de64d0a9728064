package app

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/dugout/internal/models"
)

// LoadTrainings fetches the training library and draws it. On failure the
// previous drawing is left alone.
func (a *App) LoadTrainings(ctx context.Context) error {
	resp, err := a.client.Get(ctx, "/training/")
	if err != nil {
		return a.connectionFailed("load_trainings", err)
	}
	if !resp.OK() {
		a.notify.Error(msgLoadTrainingsFailed)
		return &RequestError{Op: "load_trainings", StatusCode: resp.StatusCode, Message: resp.Message(msgLoadTrainingsFailed)}
	}

	var trainings models.TrainingList
	if err := resp.Decode(&trainings); err != nil {
		a.notify.Error(msgLoadTrainingsFailed)
		return fmt.Errorf("load_trainings: %w", err)
	}

	a.render(func() { a.ui.Trainings(trainings) })
	return nil
}
