package poker

import "github.com/HugoManns/pokerhands-tests/pkg/deck"

// The Is* functions answer whether the hand holds exactly that pattern, regardless of any
// stronger category it also satisfies. They return the hand on a match and nil otherwise.

// IsPair returns the hand if it holds exactly one pair and nothing of three or more
func IsPair(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetPair()
	return matched(hand, ok)
}

// IsTwoPair returns the hand if it holds two pairs
func IsTwoPair(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetTwoPair()
	return matched(hand, ok)
}

// IsThreeOfAKind returns the hand if it holds trips without a pair
func IsThreeOfAKind(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetThreeOfAKind()
	return matched(hand, ok)
}

// IsStraight returns the hand if its ranks are five in a row
func IsStraight(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetStraight()
	return matched(hand, ok)
}

// IsFlush returns the hand if all five cards share a suit
func IsFlush(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetFlush()
	return matched(hand, ok)
}

// IsFullHouse returns the hand if it holds trips and a pair
func IsFullHouse(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetFullHouse()
	return matched(hand, ok)
}

// IsFourOfAKind returns the hand if it holds four cards of one rank
func IsFourOfAKind(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetFourOfAKind()
	return matched(hand, ok)
}

// IsStraightFlush returns the hand if it is both a straight and a flush
func IsStraightFlush(hand *deck.Hand) *deck.Hand {
	_, ok := NewHandAnalyzer(hand).GetStraightFlush()
	return matched(hand, ok)
}

// IsRoyalFlush returns the hand if it is a ten-to-ace straight flush
func IsRoyalFlush(hand *deck.Hand) *deck.Hand {
	return matched(hand, NewHandAnalyzer(hand).GetRoyalFlush())
}

func matched(hand *deck.Hand, ok bool) *deck.Hand {
	if ok {
		return hand
	}

	return nil
}
