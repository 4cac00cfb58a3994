// Package setgame implements the rules of the card game Set: dealing,
// selecting, validating and finding Sets on the board.
package setgame

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
)

const (
	initialDeal  = 12
	cardsPerDeal = 3

	minShuffleSwaps   = 30
	shuffleSwapsRange = 50

	setFoundBonus      = 3
	missedSetPenalty   = -2
	noSetOnBoardReward = 2
)

// Game is one round of Set: the undealt deck, the cards on the board and
// the current selection keyed by board position.
type Game struct {
	deck     []Card
	board    []Card
	selected map[int]Card

	flipCounter  int
	scoreCounter int
}

// New shuffles a full deck with rnd and deals the first twelve cards.
func New(rnd random.Source) *Game {
	game := &Game{
		deck:     NewDeck(),
		selected: make(map[int]Card),
	}
	game.shuffle(rnd)

	// a fresh deck always holds more than the first deal
	_ = game.Deal(make([]int, initialDeal), false)

	return game
}

// shuffle applies between 30 and 79 random transpositions.
func (that *Game) shuffle(rnd random.Source) {
	swaps := rnd.Intn(shuffleSwapsRange) + minShuffleSwaps
	for range swaps {
		i, j := rnd.Intn(len(that.deck)), rnd.Intn(len(that.deck))
		that.deck[i], that.deck[j] = that.deck[j], that.deck[i]
	}
}

// Deal pops one card from the end of the deck per position. When replacing,
// the cards land on the given board positions and the selection is cleared;
// otherwise they are appended to the board and only len(positions) matters.
func (that *Game) Deal(positions []int, replacingOldCards bool) error {
	if len(that.deck) == 0 || len(that.deck) < len(positions) {
		return fmt.Errorf("%w: %d cards requested, %d left", apperror.ErrEmptyDeck, len(positions), len(that.deck))
	}

	if !replacingOldCards {
		for range positions {
			that.board = append(that.board, that.pop())
		}
		return nil
	}

	for _, position := range positions {
		if err := that.checkPosition(position); err != nil {
			return err
		}
	}

	for _, position := range positions {
		that.board[position] = that.pop()
	}
	clear(that.selected)

	return nil
}

func (that *Game) pop() Card {
	last := len(that.deck) - 1
	card := that.deck[last]
	that.deck = that.deck[:last]

	return card
}

// SelectCard toggles card at position index while fewer than three cards
// are selected. With three selected it either starts a new selection (not a
// Set) or takes the Set off the board.
func (that *Game) SelectCard(card Card, index int) error {
	if err := that.checkPosition(index); err != nil {
		return err
	}

	switch {
	case len(that.selected) < cardsPerDeal:
		if slices.Contains(slices.Collect(maps.Values(that.selected)), card) {
			delete(that.selected, index)
		} else {
			that.selected[index] = card
		}
	case !that.IsSelectionSet():
		clear(that.selected)
		that.selected[index] = card
	default:
		that.removeCards(that.SelectedPositions())
		clear(that.selected)
	}

	return nil
}

// removeCards deletes board positions from the highest down so that every
// listed position refers to the board as it was before the call.
func (that *Game) removeCards(positions []int) {
	for _, position := range slices.Backward(positions) {
		that.board = slices.Delete(that.board, position, position+1)
	}
}

// Add3MoreCards replaces a selected Set with fresh cards, or appends three
// cards to the board when there is no Set selected and the deck is not empty.
func (that *Game) Add3MoreCards() error {
	if that.IsSelectionSet() {
		return that.Deal(that.SelectedPositions(), true)
	}

	if len(that.deck) > 0 {
		return that.Deal(make([]int, cardsPerDeal), false)
	}

	return nil
}

// DealMore is the "three more cards" move with its scoring: a selected Set
// is worth 3 points, asking for cards while a Set is on the board costs 2
// and asking when there is none earns 2. Nothing happens once the deck is empty.
func (that *Game) DealMore() error {
	if len(that.deck) == 0 {
		return nil
	}

	switch {
	case that.IsSelectionSet():
		that.ChangeScore(setFoundBonus)
	case that.hasSetOnBoard():
		that.ChangeScore(missedSetPenalty)
	default:
		that.ChangeScore(noSetOnBoardReward)
	}

	return that.Add3MoreCards()
}

// Touch counts a flip and selects the board card at index.
func (that *Game) Touch(index int) error {
	if err := that.checkPosition(index); err != nil {
		return err
	}

	that.IncrementFlips()

	return that.SelectCard(that.board[index], index)
}

// FindSetOnBoard returns the first Set on the board, scanning pairs i < j
// in increasing order and looking up the card that completes them.
func (that *Game) FindSetOnBoard() ([3]int, bool) {
	for i := 0; i < len(that.board)-1; i++ {
		for j := i + 1; j < len(that.board); j++ {
			third := Third(that.board[i], that.board[j])

			k := slices.Index(that.board, third)
			if k >= 0 && k != i && k != j {
				return [3]int{i, j, k}, true
			}
		}
	}

	return [3]int{}, false
}

func (that *Game) hasSetOnBoard() bool {
	_, found := that.FindSetOnBoard()
	return found
}

// IsSelectionSet reports whether exactly three cards are selected and form a Set.
func (that *Game) IsSelectionSet() bool {
	return AreCardsSet(slices.Collect(maps.Values(that.selected)))
}

// IncrementFlips counts one flip and returns the flip label.
func (that *Game) IncrementFlips() string {
	that.flipCounter++
	return fmt.Sprintf("Flips: %d", that.flipCounter)
}

// ChangeScore adds by to the score and returns the score label.
func (that *Game) ChangeScore(by int) string {
	that.scoreCounter += by
	return fmt.Sprintf("Score: %d", that.scoreCounter)
}

func (that *Game) checkPosition(index int) error {
	if index < 0 || index >= len(that.board) {
		return fmt.Errorf("%w: position %d of %d", apperror.ErrIndexOutOfRange, index, len(that.board))
	}
	return nil
}

// Board returns a copy of the dealt cards in position order.
func (that *Game) Board() []Card {
	return slices.Clone(that.board)
}

// Selected returns a copy of the selection keyed by board position.
func (that *Game) Selected() map[int]Card {
	return maps.Clone(that.selected)
}

// SelectedPositions returns the selected board positions in increasing order.
func (that *Game) SelectedPositions() []int {
	return slices.Sorted(maps.Keys(that.selected))
}

func (that *Game) DeckSize() int {
	return len(that.deck)
}

func (that *Game) Flips() int {
	return that.flipCounter
}

func (that *Game) Score() int {
	return that.scoreCounter
}

type gameState struct {
	Deck         []Card       `json:"deck"`
	Board        []Card       `json:"board"`
	Selected     map[int]Card `json:"selected"`
	FlipCounter  int          `json:"flip_counter"`
	ScoreCounter int          `json:"score_counter"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameState{
		Deck:         that.deck,
		Board:        that.board,
		Selected:     that.selected,
		FlipCounter:  that.flipCounter,
		ScoreCounter: that.scoreCounter,
	})
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var state gameState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal set game: %w", err)
	}

	if len(state.Selected) > cardsPerDeal {
		return fmt.Errorf("%w: %d cards selected", apperror.ErrInvalidArgument, len(state.Selected))
	}

	for position := range state.Selected {
		if position < 0 || position >= len(state.Board) {
			return fmt.Errorf("%w: selected position %d", apperror.ErrIndexOutOfRange, position)
		}
	}

	if state.Selected == nil {
		state.Selected = make(map[int]Card)
	}

	that.deck = state.Deck
	that.board = state.Board
	that.selected = state.Selected
	that.flipCounter = state.FlipCounter
	that.scoreCounter = state.ScoreCounter

	return nil
}
