package view

import (
	"math/rand"
	"testing"

	"github.com/misterclayt0n/dugout/internal/models"
)

func TestRouter_ExactlyOneVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		r := NewRouter(Landing)
		steps := rng.Intn(20)
		var last View = Landing
		for i := 0; i < steps; i++ {
			last = Views[rng.Intn(len(Views))]
			r.Show(last)
		}

		visible := r.Visible()
		if len(visible) != 1 {
			t.Fatalf("run %d: %d sections visible: %v", run, len(visible), visible)
		}
		if visible[0] != last || r.Current() != last {
			t.Fatalf("run %d: visible %v, current %v, want %v", run, visible[0], r.Current(), last)
		}
	}
}

func TestRouter_DetailResetsTab(t *testing.T) {
	r := NewRouter(PlayersList)

	if err := r.SelectTab(Trainings); err == nil {
		t.Error("tabs should not be selectable outside PlayerDetail")
	}

	r.Show(PlayerDetail)
	if r.Tab() != Overview {
		t.Fatalf("tab = %v, want overview", r.Tab())
	}

	if err := r.SelectTab(Analytics); err != nil {
		t.Fatal(err)
	}
	if r.Tab() != Analytics {
		t.Fatalf("tab = %v, want analytics", r.Tab())
	}

	r.Show(PlayersList)
	r.Show(PlayerDetail)
	if r.Tab() != Overview {
		t.Errorf("re-entering detail should reset to overview, got %v", r.Tab())
	}

	r.SelectTab(Trainings)
	r.Show(PlayerDetail)
	if r.Tab() != Overview {
		t.Errorf("showing detail again should reset to overview, got %v", r.Tab())
	}
}

func TestParseViewAndTab(t *testing.T) {
	for _, v := range Views {
		got, err := ParseView(v.String())
		if err != nil || got != v {
			t.Errorf("ParseView(%q) = %v, %v", v.String(), got, err)
		}
	}
	for _, tab := range Tabs {
		got, err := ParseTab(" " + tab.String() + " ")
		if err != nil || got != tab {
			t.Errorf("ParseTab(%q) = %v, %v", tab.String(), got, err)
		}
	}
	if _, err := ParseView("dashboard"); err == nil {
		t.Error("expected error for unknown view")
	}
	if _, err := ParseTab("stats"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestShowsNav(t *testing.T) {
	tests := map[View]bool{
		Landing:      false,
		AuthLogin:    false,
		AuthRegister: false,
		PlayersList:  true,
		AddPlayer:    true,
		PlayerDetail: true,
	}
	for v, want := range tests {
		if got := v.ShowsNav(); got != want {
			t.Errorf("%s.ShowsNav() = %v, want %v", v, got, want)
		}
	}
}

func TestState(t *testing.T) {
	var s State

	if s.Token() != "" {
		t.Error("empty state should have no token")
	}

	s.SetSession(models.Session{Token: "t1", User: models.User{Username: "coach1"}})
	if s.Token() != "t1" {
		t.Errorf("Token = %q", s.Token())
	}

	s.Select(models.Player{ID: 3, FirstName: "Leo"})
	p, ok := s.Selected()
	if !ok || p.ID != 3 {
		t.Fatalf("Selected = %+v, %v", p, ok)
	}

	// Selected is a snapshot.
	p.FirstName = "changed"
	if again, _ := s.Selected(); again.FirstName != "Leo" {
		t.Error("mutating the returned player changed state")
	}

	s.Select(models.Player{ID: 4})
	if p, _ := s.Selected(); p.ID != 4 {
		t.Error("selecting replaces the previous player")
	}

	s.ClearSelection()
	s.ClearSession()
	if _, ok := s.Session(); ok {
		t.Error("session should be cleared")
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared")
	}
}
