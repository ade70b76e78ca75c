package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Symbol returns the unicode symbol of the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %s", string(s)))
	}
}

// face cards
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	// MinRank is the lowest rank in the deck
	MinRank = 2
	// MaxRank is the highest rank in the deck
	MaxRank = Ace
)

// Card is an individual playing card
// Cards are values, copying one never shares state with the original.
type Card struct {
	suit Suit
	rank int
}

// NewCard returns a card with the suit and rank
func NewCard(suit Suit, rank int) Card {
	return Card{suit: suit, rank: rank}
}

// Suit returns the suit of the card
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card, 2 through 14
func (c Card) Rank() int {
	return c.rank
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.suit == card.suit && c.rank == card.rank
}

// RankString returns the single character rank, i.e., T for ten
func RankString(rank int) string {
	switch rank {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

func (c Card) String() string {
	return RankString(c.rank) + c.suit.Symbol()
}

// MarshalJSON encodes the card as its display string
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from any format ParseCard accepts
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := ParseCard(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs]|♣|♦|♥|♠|♢|♡)\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 or one of TJQKA
// and suit is one of cdhs or a suit symbol (e.g., 14s, As, A♠, 10h, Th)
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}

		rank = r
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c", "♣":
		suit = Clubs
	case "d", "♦", "♢":
		suit = Diamonds
	case "h", "♥", "♡":
		suit = Hearts
	case "s", "♠":
		suit = Spades
	default:
		// should never be hit due to the regexp
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a list of cards separated by commas and/or whitespace
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardFromString is like ParseCard, but panics on a bad card.
// Meant for tests and fixtures.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString will return a slice of cards, panicking on a bad card
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
