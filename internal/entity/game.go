package entity

import (
	"github.com/rocketscienceinc/cardgames-backend/internal/concentration"
	"github.com/rocketscienceinc/cardgames-backend/internal/setgame"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

const (
	ConcentrationKind = "concentration"
	SetKind           = "set"
)

// ConcentrationGame is a stored Concentration session.
type ConcentrationGame struct {
	ID    string              `json:"id"`
	State *concentration.Game `json:"state"`
}

func NewConcentrationGame(id string, state *concentration.Game) *ConcentrationGame {
	return &ConcentrationGame{ID: id, State: state}
}

func (that *ConcentrationGame) Status() string {
	if that.State.IsFinished() {
		return StatusFinished
	}
	return StatusOngoing
}

// SetGame is a stored Set session.
type SetGame struct {
	ID    string        `json:"id"`
	State *setgame.Game `json:"state"`
}

func NewSetGame(id string, state *setgame.Game) *SetGame {
	return &SetGame{ID: id, State: state}
}

// Status is finished once the deck is dealt out and no Set is left on the board.
func (that *SetGame) Status() string {
	if that.State.DeckSize() > 0 {
		return StatusOngoing
	}

	if _, found := that.State.FindSetOnBoard(); found {
		return StatusOngoing
	}

	return StatusFinished
}
