package setgame

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
)

func card(shape, count, color, shading int) Card {
	return Card{Shape: shape, Count: count, Color: color, Shading: shading}
}

var (
	plantedA = card(1, 1, 1, 1)
	plantedB = card(2, 1, 1, 1)
	plantedC = card(3, 1, 1, 1)

	// cards using only values 1 and 2 never form a Set among themselves,
	// nor with the planted cards.
	fillers = []Card{
		card(1, 1, 1, 2), card(1, 1, 2, 1), card(1, 1, 2, 2),
		card(1, 2, 1, 1), card(1, 2, 1, 2), card(1, 2, 2, 1),
		card(1, 2, 2, 2), card(2, 1, 1, 2), card(2, 1, 2, 1),
	}
)

// plantedBoard places the Set A, B, C at positions 2, 5 and 9.
func plantedBoard() []Card {
	board := append([]Card(nil), fillers[:2]...)
	board = append(board, plantedA)
	board = append(board, fillers[2:4]...)
	board = append(board, plantedB)
	board = append(board, fillers[4:7]...)
	board = append(board, plantedC)
	board = append(board, fillers[7:]...)

	return board
}

func newBoardGame(board, deck []Card) *Game {
	return &Game{
		deck:     append([]Card(nil), deck...),
		board:    append([]Card(nil), board...),
		selected: make(map[int]Card),
	}
}

func selectAll(t *testing.T, game *Game, positions ...int) {
	t.Helper()

	for _, position := range positions {
		require.NoError(t, game.SelectCard(game.board[position], position))
	}
}

func TestNew(t *testing.T) {
	t.Run("Deals twelve cards from a full deck", func(t *testing.T) {
		game := New(random.New(1))

		require.Len(t, game.Board(), initialDeal)
		assert.Equal(t, DeckSize-initialDeal, game.DeckSize())
		assert.Empty(t, game.Selected())
		assert.Zero(t, game.Flips())
		assert.Zero(t, game.Score())

		seen := make(map[Card]bool)
		for _, c := range append(game.Board(), game.deck...) {
			assert.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}
		assert.Len(t, seen, DeckSize)
	})

	t.Run("Same seed deals the same board", func(t *testing.T) {
		assert.Equal(t, New(random.New(99)).Board(), New(random.New(99)).Board())
	})
}

func TestGame_FindSetOnBoard(t *testing.T) {
	t.Run("Finds the planted Set", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		positions, found := game.FindSetOnBoard()

		require.True(t, found)
		assert.Equal(t, [3]int{2, 5, 9}, positions)
	})

	t.Run("No Set among two-valued cards", func(t *testing.T) {
		board := append([]Card{plantedA, plantedB}, fillers...)
		game := newBoardGame(board, nil)

		_, found := game.FindSetOnBoard()

		assert.False(t, found)
	})

	t.Run("Empty and tiny boards", func(t *testing.T) {
		_, found := newBoardGame(nil, nil).FindSetOnBoard()
		assert.False(t, found)

		_, found = newBoardGame([]Card{plantedA}, nil).FindSetOnBoard()
		assert.False(t, found)
	})

	t.Run("Earliest pair wins", func(t *testing.T) {
		// Given: Sets at (0, 1, 3) and (1, 2, 4)
		board := []Card{card(1, 2, 2, 2), plantedA, plantedB, card(1, 3, 3, 3), plantedC, card(1, 1, 2, 2)}
		game := newBoardGame(board, nil)

		positions, found := game.FindSetOnBoard()

		// Then: (0, 1) completes with position 3 before (1, 2) with position 4
		require.True(t, found)
		assert.Equal(t, [3]int{0, 1, 3}, positions)
	})
}

func TestGame_SelectCard(t *testing.T) {
	t.Run("Selecting twice deselects", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		selectAll(t, game, 0)
		assert.Equal(t, map[int]Card{0: fillers[0]}, game.Selected())

		selectAll(t, game, 0)
		assert.Empty(t, game.Selected())
	})

	t.Run("Fourth card after a wrong triple starts a new selection", func(t *testing.T) {
		// Given: three selected cards that are not a Set
		game := newBoardGame(plantedBoard(), nil)
		selectAll(t, game, 0, 1, 3)
		require.Len(t, game.Selected(), 3)
		require.False(t, game.IsSelectionSet())

		// When: another card is selected
		selectAll(t, game, 4)

		// Then: only that card stays selected
		assert.Equal(t, []int{4}, game.SelectedPositions())
		assert.Len(t, game.Board(), initialDeal)
	})

	t.Run("Selecting after a found Set removes it from the board", func(t *testing.T) {
		// Given: the planted Set selected
		game := newBoardGame(plantedBoard(), nil)
		selectAll(t, game, 9, 2, 5)
		require.True(t, game.IsSelectionSet())

		// When: any card is touched
		selectAll(t, game, 0)

		// Then: the three Set cards are gone and the rest keep their order
		assert.Empty(t, game.Selected())
		assert.Equal(t, fillers, game.Board())
	})

	t.Run("Error on position out of range", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		err := game.SelectCard(plantedA, 12)

		require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Empty(t, game.Selected())
	})
}

func TestGame_Deal(t *testing.T) {
	t.Run("Appends from the end of the deck", func(t *testing.T) {
		deck := []Card{card(3, 3, 3, 1), card(3, 3, 3, 2), card(3, 3, 3, 3)}
		game := newBoardGame(fillers, deck)

		require.NoError(t, game.Deal(make([]int, 3), false))

		board := game.Board()
		assert.Equal(t, []Card{deck[2], deck[1], deck[0]}, board[len(fillers):])
		assert.Zero(t, game.DeckSize())
	})

	t.Run("Replacing clears the selection", func(t *testing.T) {
		deck := []Card{card(3, 3, 3, 1), card(3, 3, 3, 2)}
		game := newBoardGame(fillers, deck)
		selectAll(t, game, 1)

		require.NoError(t, game.Deal([]int{4, 7}, true))

		board := game.Board()
		assert.Equal(t, deck[1], board[4])
		assert.Equal(t, deck[0], board[7])
		assert.Empty(t, game.Selected())
	})

	t.Run("Error on empty deck", func(t *testing.T) {
		game := newBoardGame(fillers, nil)

		err := game.Deal([]int{0}, true)

		require.ErrorIs(t, err, apperror.ErrEmptyDeck)
		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Equal(t, fillers, game.Board())
	})

	t.Run("Error on replacing outside the board", func(t *testing.T) {
		game := newBoardGame(fillers, []Card{plantedC})

		err := game.Deal([]int{len(fillers)}, true)

		require.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
		assert.Equal(t, 1, game.DeckSize())
	})
}

func TestGame_Add3MoreCards(t *testing.T) {
	extra := []Card{card(3, 3, 3, 1), card(3, 3, 3, 2), card(3, 3, 3, 3), card(3, 3, 2, 1)}

	t.Run("Replaces a selected Set", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), extra)
		selectAll(t, game, 2, 5, 9)

		require.NoError(t, game.Add3MoreCards())

		board := game.Board()
		require.Len(t, board, initialDeal)
		assert.Equal(t, extra[3], board[2])
		assert.Equal(t, extra[2], board[5])
		assert.Equal(t, extra[1], board[9])
		assert.Empty(t, game.Selected())
		assert.Equal(t, 1, game.DeckSize())
	})

	t.Run("Appends three cards without a Set selected", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), extra)
		selectAll(t, game, 0)

		require.NoError(t, game.Add3MoreCards())

		assert.Len(t, game.Board(), initialDeal+3)
		assert.Equal(t, []int{0}, game.SelectedPositions())
	})

	t.Run("Nothing to deal", func(t *testing.T) {
		game := newBoardGame(fillers, nil)

		require.NoError(t, game.Add3MoreCards())

		assert.Equal(t, fillers, game.Board())
	})
}

func TestGame_DealMore(t *testing.T) {
	extra := []Card{card(3, 3, 3, 1), card(3, 3, 3, 2), card(3, 3, 3, 3)}

	t.Run("Found Set is worth three", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), extra)
		selectAll(t, game, 2, 5, 9)

		require.NoError(t, game.DealMore())

		assert.Equal(t, 3, game.Score())
		assert.Len(t, game.Board(), initialDeal)
	})

	t.Run("Missed Set costs two", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), extra)

		require.NoError(t, game.DealMore())

		assert.Equal(t, -2, game.Score())
		assert.Len(t, game.Board(), initialDeal+3)
	})

	t.Run("No Set on the board earns two", func(t *testing.T) {
		game := newBoardGame(fillers, extra)

		require.NoError(t, game.DealMore())

		assert.Equal(t, 2, game.Score())
		assert.Len(t, game.Board(), len(fillers)+3)
	})

	t.Run("Empty deck changes nothing", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		require.NoError(t, game.DealMore())

		assert.Zero(t, game.Score())
		assert.Len(t, game.Board(), initialDeal)
	})
}

func TestGame_Touch(t *testing.T) {
	t.Run("Counts a flip and selects the card", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		require.NoError(t, game.Touch(5))

		assert.Equal(t, 1, game.Flips())
		assert.Equal(t, map[int]Card{5: plantedB}, game.Selected())
	})

	t.Run("Error on position out of range", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), nil)

		require.ErrorIs(t, game.Touch(-1), apperror.ErrInvalidArgument)
		assert.Zero(t, game.Flips())
	})
}

func TestGame_Counters(t *testing.T) {
	game := newBoardGame(nil, nil)

	assert.Equal(t, "Flips: 1", game.IncrementFlips())
	assert.Equal(t, "Flips: 2", game.IncrementFlips())
	assert.Equal(t, "Score: 3", game.ChangeScore(3))
	assert.Equal(t, "Score: 1", game.ChangeScore(-2))
	assert.Equal(t, 2, game.Flips())
	assert.Equal(t, 1, game.Score())
}

func TestGame_JSON(t *testing.T) {
	t.Run("Restored game keeps its selection", func(t *testing.T) {
		game := newBoardGame(plantedBoard(), fillers[:3])
		selectAll(t, game, 2, 5, 9)

		data, err := json.Marshal(game)
		require.NoError(t, err)

		var restored Game
		require.NoError(t, json.Unmarshal(data, &restored))

		assert.True(t, restored.IsSelectionSet())
		assert.Equal(t, game.Board(), restored.Board())
		assert.Equal(t, game.DeckSize(), restored.DeckSize())
	})

	t.Run("Error on selection outside the board", func(t *testing.T) {
		data := []byte(`{"deck":[],"board":[],"selected":{"4":{"shape":1,"count":1,"color":1,"shading":1}}}`)

		var restored Game
		require.ErrorIs(t, json.Unmarshal(data, &restored), apperror.ErrIndexOutOfRange)
	})
}
