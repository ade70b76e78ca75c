package poker

import "fmt"

// HandRank is a poker hand category, i.e., royal flush
// Categories are ordered from weakest to strongest.
type HandRank int

// Constants for hand ranks
const (
	HighCard HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// HandRanks lists every category from weakest to strongest
var HandRanks = []HandRank{
	HighCard,
	Pair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalFlush,
}

// String returns the string representation of a hand rank
func (h HandRank) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown hand rank: %d", h))
	}
}

// MarshalText encodes the hand rank as its label
func (h HandRank) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
