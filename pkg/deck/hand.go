package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in a hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built with the wrong number of cards
var ErrInvalidHandSize = errors.New("a hand must have exactly five cards")

// Hand represents five cards
// The cards are copied in when the hand is built, so a hand never shares state with a deck.
type Hand struct {
	cards [HandSize]Card
}

// NewHand returns a hand of the cards in the order given
func NewHand(cards []Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	h := &Hand{}
	copy(h.cards[:], cards)

	return h, nil
}

// ParseHand parses a hand in any format ParseCards accepts
func ParseHand(s string) (*Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}

	return NewHand(cards)
}

// HandFromString is like ParseHand, but panics on error
func HandFromString(s string) *Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse hand: %v", err))
	}

	return h
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []Card {
	cards := make([]Card, HandSize)
	copy(cards, h.cards[:])

	return cards
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card Card) bool {
	for _, c := range h.cards {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Equal returns true if both hands hold the same cards in the same order
func (h *Hand) Equal(other *Hand) bool {
	if h == nil || other == nil {
		return h == other
	}

	return h.cards == other.cards
}

func (h *Hand) String() string {
	var sb strings.Builder
	for _, card := range h.cards {
		sb.WriteString(card.String())
	}

	return sb.String()
}

// MarshalJSON encodes the hand as a list of cards
func (h *Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.cards[:])
}

// UnmarshalJSON decodes a hand from a list of cards
func (h *Hand) UnmarshalJSON(b []byte) error {
	var cards []Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}

	hand, err := NewHand(cards)
	if err != nil {
		return err
	}

	*h = *hand
	return nil
}
