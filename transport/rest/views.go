package rest

import (
	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
	"github.com/rocketscienceinc/cardgames-backend/internal/grid"
	"github.com/rocketscienceinc/cardgames-backend/internal/setgame"
)

type errorView struct {
	Error string `json:"error"`
}

// concentrationCardView hides the identifier of a face-down card.
type concentrationCardView struct {
	Identifier *int `json:"identifier,omitempty"`
	FaceUp     bool `json:"face_up"`
	Matched    bool `json:"matched"`
}

type concentrationView struct {
	ID         string                  `json:"id"`
	Status     string                  `json:"status"`
	Score      int                     `json:"score"`
	FlipsCount int                     `json:"flips_count"`
	PairsLeft  int                     `json:"pairs_left"`
	FaceUp     *int                    `json:"face_up_index,omitempty"`
	Cards      []concentrationCardView `json:"cards"`
}

func newConcentrationView(game *entity.ConcentrationGame) concentrationView {
	cards := game.State.Cards()

	view := concentrationView{
		ID:         game.ID,
		Status:     game.Status(),
		Score:      game.State.Score(),
		FlipsCount: game.State.FlipsCount(),
		PairsLeft:  game.State.PairsLeft(),
		Cards:      make([]concentrationCardView, 0, len(cards)),
	}

	if index, ok := game.State.FaceUpIndex(); ok {
		view.FaceUp = &index
	}

	for _, card := range cards {
		cardView := concentrationCardView{FaceUp: card.FaceUp, Matched: card.Matched}
		if card.FaceUp || card.Matched {
			identifier := card.Identifier
			cardView.Identifier = &identifier
		}
		view.Cards = append(view.Cards, cardView)
	}

	return view
}

type setView struct {
	ID             string         `json:"id"`
	Status         string         `json:"status"`
	Score          int            `json:"score"`
	Flips          int            `json:"flips"`
	DeckSize       int            `json:"deck_size"`
	Board          []setgame.Card `json:"board"`
	Selected       []int          `json:"selected"`
	SelectionIsSet bool           `json:"selection_is_set"`
}

func newSetView(game *entity.SetGame) setView {
	selected := game.State.SelectedPositions()
	if selected == nil {
		selected = []int{}
	}

	return setView{
		ID:             game.ID,
		Status:         game.Status(),
		Score:          game.State.Score(),
		Flips:          game.State.Flips(),
		DeckSize:       game.State.DeckSize(),
		Board:          game.State.Board(),
		Selected:       selected,
		SelectionIsSet: game.State.IsSelectionSet(),
	}
}

type cheatView struct {
	Found     bool  `json:"found"`
	Positions []int `json:"positions"`
}

func newCheatView(positions [3]int, found bool) cheatView {
	if !found {
		return cheatView{Positions: []int{}}
	}

	return cheatView{Found: true, Positions: positions[:]}
}

type layoutView struct {
	Rows        int         `json:"rows"`
	Columns     int         `json:"columns"`
	CellCount   int         `json:"cell_count"`
	CellSize    grid.Size   `json:"cell_size"`
	AspectRatio float64     `json:"aspect_ratio"`
	Cells       []grid.Rect `json:"cells"`
}

func newLayoutView(cells *grid.Grid) layoutView {
	rows, columns := cells.Dimensions()

	return layoutView{
		Rows:        rows,
		Columns:     columns,
		CellCount:   cells.CellCount(),
		CellSize:    cells.CellSize(),
		AspectRatio: cells.AspectRatio(),
		Cells:       cells.Cells(),
	}
}
