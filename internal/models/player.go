package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Position string

const (
	PositionPitcher     Position = "pitcher"
	PositionCatcher     Position = "catcher"
	PositionFirstBase   Position = "first_base"
	PositionSecondBase  Position = "second_base"
	PositionThirdBase   Position = "third_base"
	PositionShortstop   Position = "shortstop"
	PositionLeftField   Position = "left_field"
	PositionCenterField Position = "center_field"
	PositionRightField  Position = "right_field"
)

// Positions lists every position in field order.
var Positions = []Position{
	PositionPitcher,
	PositionCatcher,
	PositionFirstBase,
	PositionSecondBase,
	PositionThirdBase,
	PositionShortstop,
	PositionLeftField,
	PositionCenterField,
	PositionRightField,
}

// PositionNames joins the wire values of Positions for help text.
func PositionNames() string {
	names := make([]string, len(Positions))
	for i, p := range Positions {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

var positionLabels = map[Position]string{
	PositionPitcher:     "Pitcher",
	PositionCatcher:     "Catcher",
	PositionFirstBase:   "First Base",
	PositionSecondBase:  "Second Base",
	PositionThirdBase:   "Third Base",
	PositionShortstop:   "Shortstop",
	PositionLeftField:   "Left Field",
	PositionCenterField: "Center Field",
	PositionRightField:  "Right Field",
}

// Label returns the display name of the position. Values the client does not
// know are title-cased as-is.
func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	if p == "" {
		return "N/A"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(p), "_", " "))
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

type Player struct {
	ID         int      `json:"id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Position   Position `json:"position"`
	Team       *string  `json:"team,omitempty"`
	Height     *float64 `json:"height,omitempty"` // meters
	Weight     *float64 `json:"weight,omitempty"` // kg
	Strengths  *string  `json:"strengths,omitempty"`
	Weaknesses *string  `json:"weaknesses,omitempty"`
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// NewPlayer is the payload for registering a player under the current
// trainer. Absent optional fields are sent as explicit nulls.
type NewPlayer struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Position   Position `json:"position"`
	Team       *string  `json:"team"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	Strengths  *string  `json:"strengths"`
	Weaknesses *string  `json:"weaknesses"`
}

// PlayerInfo is the subset of a player the tips endpoint needs.
type PlayerInfo struct {
	Position   Position `json:"position"`
	Strengths  *string  `json:"strengths"`
	Weaknesses *string  `json:"weaknesses"`
}

func (p Player) Info() PlayerInfo {
	return PlayerInfo{
		Position:   p.Position,
		Strengths:  p.Strengths,
		Weaknesses: p.Weaknesses,
	}
}
