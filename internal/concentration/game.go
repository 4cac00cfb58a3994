// Package concentration implements the rules of the pairs-matching memory game.
package concentration

import (
	"encoding/json"
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
)

const (
	matchBonus      = 2
	mismatchPenalty = 1
)

// Game holds the cards of one Concentration round and its scoring state.
type Game struct {
	cards      []Card
	score      int
	flipsCount int

	// alreadySeen maps a card position to the identifier it showed during a
	// completed two-card attempt.
	alreadySeen *intmap.Map[int, int]
}

// New deals numberOfPairs pairs and shuffles them with rnd.
func New(numberOfPairs int, ids *IdentifierFactory, rnd random.Source) (*Game, error) {
	if numberOfPairs < 1 {
		return nil, fmt.Errorf("%w: at least one pair of cards is required, got %d", apperror.ErrInvalidArgument, numberOfPairs)
	}

	pool := make([]Card, 0, 2*numberOfPairs)
	for range numberOfPairs {
		card := Card{Identifier: ids.Next()}
		pool = append(pool, card, card)
	}

	cards := make([]Card, 0, len(pool))
	for len(pool) > 0 {
		i := rnd.Intn(len(pool))
		cards = append(cards, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	return &Game{
		cards:       cards,
		alreadySeen: intmap.New[int, int](len(cards)),
	}, nil
}

// ChooseCard flips the card at index and resolves a match attempt when
// another card is already face up.
//
// The mismatch penalty is deliberately asymmetric: besides one point for each
// position that was already seen, the previously face-up card costs an extra
// point when its identifier was seen anywhere before.
func (that *Game) ChooseCard(index int) error {
	if index < 0 || index >= len(that.cards) {
		return fmt.Errorf("%w: card %d of %d", apperror.ErrIndexOutOfRange, index, len(that.cards))
	}

	if that.cards[index].Matched {
		return nil
	}

	that.flipsCount++

	matchIndex, ok := that.FaceUpIndex()
	if !ok || matchIndex == index {
		that.showOnly(index)
		return nil
	}

	if that.cards[matchIndex].Equal(that.cards[index]) {
		that.cards[index].Matched = true
		that.cards[matchIndex].Matched = true
		that.score += matchBonus
	} else {
		if that.alreadySeen.Has(matchIndex) {
			that.score -= mismatchPenalty
		}
		if that.alreadySeen.Has(index) {
			that.score -= mismatchPenalty
		}
		if that.wasShown(that.cards[matchIndex].Identifier) {
			that.score -= mismatchPenalty
		}
	}

	that.alreadySeen.Put(index, that.cards[index].Identifier)
	that.alreadySeen.Put(matchIndex, that.cards[matchIndex].Identifier)
	that.cards[index].FaceUp = true

	return nil
}

// FaceUpIndex returns the position of the one and only face-up card.
func (that *Game) FaceUpIndex() (int, bool) {
	found := -1
	for i, card := range that.cards {
		if !card.FaceUp {
			continue
		}
		if found >= 0 {
			return 0, false
		}
		found = i
	}

	return found, found >= 0
}

// showOnly turns the card at index face up and every other card face down.
func (that *Game) showOnly(index int) {
	for i := range that.cards {
		that.cards[i].FaceUp = i == index
	}
}

func (that *Game) wasShown(identifier int) bool {
	shown := false
	that.alreadySeen.ForEach(func(_ int, seen int) bool {
		shown = seen == identifier
		return !shown
	})

	return shown
}

// Cards returns a copy of the cards in table order.
func (that *Game) Cards() []Card {
	return append([]Card(nil), that.cards...)
}

func (that *Game) Score() int {
	return that.score
}

func (that *Game) FlipsCount() int {
	return that.flipsCount
}

// PairsLeft counts pairs that are not matched yet.
func (that *Game) PairsLeft() int {
	left := 0
	for _, card := range that.cards {
		if !card.Matched {
			left++
		}
	}

	return left / 2
}

func (that *Game) IsFinished() bool {
	return that.PairsLeft() == 0
}

type gameState struct {
	Cards       []Card      `json:"cards"`
	Score       int         `json:"score"`
	FlipsCount  int         `json:"flips_count"`
	AlreadySeen map[int]int `json:"already_seen"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	state := gameState{
		Cards:       that.cards,
		Score:       that.score,
		FlipsCount:  that.flipsCount,
		AlreadySeen: make(map[int]int, that.alreadySeen.Len()),
	}

	that.alreadySeen.ForEach(func(position int, identifier int) bool {
		state.AlreadySeen[position] = identifier
		return true
	})

	return json.Marshal(state)
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var state gameState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal concentration game: %w", err)
	}

	seen := intmap.New[int, int](len(state.Cards))
	for position, identifier := range state.AlreadySeen {
		if position < 0 || position >= len(state.Cards) {
			return fmt.Errorf("%w: seen position %d", apperror.ErrIndexOutOfRange, position)
		}
		seen.Put(position, identifier)
	}

	that.cards = state.Cards
	that.score = state.Score
	that.flipsCount = state.FlipsCount
	that.alreadySeen = seen

	return nil
}
