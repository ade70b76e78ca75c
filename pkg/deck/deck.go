package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/HugoManns/pokerhands-tests/internal/rng"
)

// ErrInsufficientCards is an error when DealHand() is attempted and there are not enough cards
var ErrInsufficientCards = errors.New("not enough cards left in the deck")

// Deck represents a playing deck
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a new deck of cards shuffled with a crypto-backed random source
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a new deck shuffled with the provided random source
func NewWithGenerator(gen rng.Generator) *Deck {
	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	d.shuffle()

	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, len(Suits)*(MaxRank-MinRank+1))
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	d.cards = cards
}

// shuffle is a Fisher-Yates shuffle of the remaining cards
func (d *Deck) shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealHand removes the next five cards from the deck and returns them as a hand
// If fewer than five cards remain, ErrInsufficientCards is returned and the deck is left untouched.
func (d *Deck) DealHand() (*Hand, error) {
	if !d.CanDraw(HandSize) {
		return nil, fmt.Errorf("%w: %d remaining", ErrInsufficientCards, len(d.cards))
	}

	hand, err := NewHand(d.cards[:HandSize])
	if err != nil {
		return nil, err
	}

	d.cards = d.cards[HandSize:]
	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// HashCode returns a SHA1 hash code of the remaining cards.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
