package setgame

import "fmt"

const (
	minValue = 1
	maxValue = 3

	// DeckSize is the number of distinct cards: 3 values for each of 4 attributes.
	DeckSize = 81
)

// Card is one Set card. Every attribute takes a value in 1..3.
type Card struct {
	Shape   int `json:"shape"`
	Count   int `json:"count"`
	Color   int `json:"color"`
	Shading int `json:"shading"`
}

func (that Card) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", that.Shape, that.Count, that.Color, that.Shading)
}

// Valid reports whether all attributes are in range.
func (that Card) Valid() bool {
	for _, value := range that.attributes() {
		if value < minValue || value > maxValue {
			return false
		}
	}
	return true
}

func (that Card) attributes() [4]int {
	return [4]int{that.Shape, that.Count, that.Color, that.Shading}
}

func cardFromAttributes(values [4]int) Card {
	return Card{Shape: values[0], Count: values[1], Color: values[2], Shading: values[3]}
}

// NewDeck returns all 81 cards in nested lexicographic order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for shape := minValue; shape <= maxValue; shape++ {
		for count := minValue; count <= maxValue; count++ {
			for color := minValue; color <= maxValue; color++ {
				for shading := minValue; shading <= maxValue; shading++ {
					deck = append(deck, Card{Shape: shape, Count: count, Color: color, Shading: shading})
				}
			}
		}
	}

	return deck
}

// IsSet reports whether, for every attribute, the three values are either
// all equal or all different.
func IsSet(a, b, c Card) bool {
	first, second, third := a.attributes(), b.attributes(), c.attributes()
	for i := range first {
		allSame := first[i] == second[i] && second[i] == third[i]
		allDifferent := first[i] != second[i] && second[i] != third[i] && third[i] != first[i]
		if allSame == allDifferent {
			return false
		}
	}

	return true
}

// AreCardsSet is IsSet for a slice; anything but exactly three cards is not a Set.
func AreCardsSet(cards []Card) bool {
	if len(cards) != 3 {
		return false
	}

	return IsSet(cards[0], cards[1], cards[2])
}

// Third returns the only card that completes a Set with a and b.
func Third(a, b Card) Card {
	first, second := a.attributes(), b.attributes()

	var values [4]int
	for i := range first {
		values[i] = thirdValue(first[i], second[i])
	}

	return cardFromAttributes(values)
}

func thirdValue(a, b int) int {
	if a == b {
		return a
	}

	for value := minValue; value <= maxValue; value++ {
		if value != a && value != b {
			return value
		}
	}

	return 0
}
