package app

import (
	"github.com/misterclayt0n/dugout/internal/models"
	"github.com/misterclayt0n/dugout/internal/view"
)

type TipsState int

const (
	TipsLoading TipsState = iota
	TipsReady
	TipsFailed
)

// TipsPanel is what the tips area shows.
type TipsPanel struct {
	State TipsState
	Text  string
}

// Renderer draws screens. Calls are serialized by App.
type Renderer interface {
	// Section is called after every top-level transition. user is nil
	// without a session.
	Section(v view.View, user *models.User)
	// Players draws the player grid, or the empty state when players is
	// empty.
	Players(players []models.Player)
	PlayerDetail(p models.Player)
	Tab(t view.Tab)
	Trainings(trainings []models.Training)
	Tips(panel TipsPanel)
}
