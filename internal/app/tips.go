package app

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/dugout/internal/models"
)

// TipCategories are the categories the AI service accepts.
var TipCategories = []string{"batting", "pitching", "fielding", "conditioning", "base_running"}

type tipsRequest struct {
	Category   string            `json:"category"`
	PlayerInfo models.PlayerInfo `json:"player_info"`
}

type tipsResponse struct {
	Tips string `json:"tips"`
}

// GetPlayerTips asks the AI service for workout tips for the selected
// player. Results and failures are drawn in the tips panel.
func (a *App) GetPlayerTips(ctx context.Context, category string) error {
	p, ok := a.state.Selected()
	if !ok {
		a.notify.Error(msgNoPlayerSelected)
		return ErrNoPlayerSelected
	}

	a.renderTips(TipsLoading, msgTipsLoading)

	resp, err := a.client.Post(ctx, "/ai/workout-tips", tipsRequest{
		Category:   category,
		PlayerInfo: p.Info(),
	})
	if err != nil {
		a.log.Error("connection_error", "op", "workout_tips", "error", err)
		a.renderTips(TipsFailed, msgTipsConnectionErr)
		return fmt.Errorf("workout_tips: %w", err)
	}
	if !resp.OK() {
		msg := resp.Message(msgTipsUnavailable)
		a.renderTips(TipsFailed, "Error: "+msg)
		return &RequestError{Op: "workout_tips", StatusCode: resp.StatusCode, Message: msg}
	}

	var payload tipsResponse
	if err := resp.Decode(&payload); err != nil {
		a.renderTips(TipsFailed, "Error: "+msgTipsUnavailable)
		return fmt.Errorf("workout_tips: %w", err)
	}

	text := payload.Tips
	if text == "" {
		text = msgNoTips
	}
	a.renderTips(TipsReady, text)
	return nil
}

func (a *App) renderTips(state TipsState, text string) {
	a.render(func() { a.ui.Tips(TipsPanel{State: state, Text: text}) })
}
