package poker

import (
	"sort"

	"github.com/HugoManns/pokerhands-tests/pkg/deck"
)

// strengthBase is larger than any rank, so a tie-break key can be encoded positionally
const strengthBase = deck.MaxRank + 1

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	hand *deck.Hand

	rankCounts  map[int]int
	suitCounts  map[deck.Suit]int
	sortedRanks []int // ascending
	maxOfRank   int

	quads    []int
	trips    []int
	pairs    []int
	straight int
	flush    []int

	handRank HandRank
	tiebreak []int
	strength int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(hand *deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{
		hand: hand,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()
	h.calculateTiebreak()

	return h
}

// analyzeHand builds the rank and suit histograms and the groups derived from them
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	cards := h.hand.Cards()

	h.rankCounts = make(map[int]int, len(cards))
	h.suitCounts = make(map[deck.Suit]int, len(deck.Suits))
	h.sortedRanks = make([]int, 0, len(cards))

	for _, card := range cards {
		h.rankCounts[card.Rank()]++
		h.suitCounts[card.Suit()]++
		h.sortedRanks = append(h.sortedRanks, card.Rank())
	}

	sort.Ints(h.sortedRanks)

	// walk the ranks high to low so each group list is already sorted descending
	for i := len(h.sortedRanks) - 1; i >= 0; i-- {
		rank := h.sortedRanks[i]
		if i < len(h.sortedRanks)-1 && h.sortedRanks[i+1] == rank {
			continue
		}

		count := h.rankCounts[rank]
		if count > h.maxOfRank {
			h.maxOfRank = count
		}

		switch count {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}

	h.straight = checkStraight(h.sortedRanks)

	for _, count := range h.suitCounts {
		if count == deck.HandSize {
			h.flush = h.GetHighCard()
		}
	}
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.handRank = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.handRank = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.handRank = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.handRank = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.handRank = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.handRank = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.handRank = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.handRank = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.handRank = Pair
	} else {
		h.handRank = HighCard
	}
}

// calculateTiebreak orders the distinct ranks: bigger groups first, then higher ranks
func (h *HandAnalyzer) calculateTiebreak() {
	ranks := make([]int, 0, len(h.rankCounts))
	for rank := range h.rankCounts {
		ranks = append(ranks, rank)
	}

	sort.Sort(sortByRankDesc{ranks: ranks, counts: h.rankCounts})
	h.tiebreak = ranks

	strength := int(h.handRank)
	for i := 0; i < deck.HandSize; i++ {
		strength *= strengthBase
		if i < len(ranks) {
			strength += ranks[i]
		}
	}

	h.strength = strength
}

// Hand returns the analyzed hand
func (h *HandAnalyzer) Hand() *deck.Hand {
	return h.hand
}

// GetHand will return the best category the cards can make
func (h *HandAnalyzer) GetHand() HandRank {
	return h.handRank
}

// GetTiebreak returns the ranks used to break a tie between two hands of the same category
// Matched groups come first, kickers after, each highest first.
func (h *HandAnalyzer) GetTiebreak() []int {
	tiebreak := make([]int, len(h.tiebreak))
	copy(tiebreak, h.tiebreak)

	return tiebreak
}

// GetStrength returns a number that orders hands: category first, then the tie-break ranks
func (h *HandAnalyzer) GetStrength() int {
	return h.strength
}

// GetRankCounts returns how many cards hold each rank
func (h *HandAnalyzer) GetRankCounts() map[int]int {
	counts := make(map[int]int, len(h.rankCounts))
	for rank, count := range h.rankCounts {
		counts[rank] = count
	}

	return counts
}

// GetSuitCounts returns how many cards hold each suit
func (h *HandAnalyzer) GetSuitCounts() map[deck.Suit]int {
	counts := make(map[deck.Suit]int, len(h.suitCounts))
	for suit, count := range h.suitCounts {
		counts[suit] = count
	}

	return counts
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	sf, ok := h.GetStraightFlush()
	return ok && sf == deck.Ace
}

// GetStraightFlush will return the high card of the straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straight > 0 && h.flush != nil {
		return h.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the rank of the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) == 1 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the trips and pair of the full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 1 && len(h.pairs) == 1 {
		return []int{h.trips[0], h.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the ranks of the flush, highest first, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the high card of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the rank of the three of a kind, if possible
// A pair alongside the trips makes it a full house instead.
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) == 1 && len(h.pairs) == 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) == 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the rank of the only pair, if possible
// Trips or quads in the hand rule it out.
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) == 1 && h.maxOfRank < 3 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return every rank, highest first
func (h *HandAnalyzer) GetHighCard() []int {
	cards := make([]int, len(h.sortedRanks))
	for i, rank := range h.sortedRanks {
		cards[len(cards)-1-i] = rank
	}

	return cards
}

// GetHighestRank returns the top rank in the hand
func (h *HandAnalyzer) GetHighestRank() int {
	return h.sortedRanks[len(h.sortedRanks)-1]
}
