package poker

import "github.com/HugoManns/pokerhands-tests/pkg/deck"

// Evaluation is the classification of a single hand
type Evaluation struct {
	Rank     HandRank `json:"rank"`
	Tiebreak []int    `json:"tiebreak"`
	Strength int      `json:"strength"`
}

// Evaluate classifies the hand
func Evaluate(hand *deck.Hand) Evaluation {
	h := NewHandAnalyzer(hand)
	return Evaluation{
		Rank:     h.GetHand(),
		Tiebreak: h.GetTiebreak(),
		Strength: h.GetStrength(),
	}
}

// Verdict is the outcome of comparing two hands
// WinningHand is nil when the hands tie. HandType is always the category of the best hand.
type Verdict struct {
	WinningHand *deck.Hand `json:"winningHand"`
	HandType    string     `json:"handType"`
}

// IsTie returns true if neither hand won
func (v Verdict) IsTie() bool {
	return v.WinningHand == nil
}

// CheckHands compares two hands
// The higher category wins. Within a category the tie-break ranks are compared highest first.
// Suits never break a tie.
func CheckHands(handA, handB *deck.Hand) Verdict {
	a := NewHandAnalyzer(handA)
	b := NewHandAnalyzer(handB)

	switch compareAnalyzers(a, b) {
	case 1:
		return Verdict{WinningHand: handA, HandType: a.GetHand().String()}
	case -1:
		return Verdict{WinningHand: handB, HandType: b.GetHand().String()}
	default:
		return Verdict{HandType: a.GetHand().String()}
	}
}

// CompareHands compares two hands and returns:
// 1 if handA wins, -1 if handB wins, 0 if tie
func CompareHands(handA, handB *deck.Hand) int {
	return compareAnalyzers(NewHandAnalyzer(handA), NewHandAnalyzer(handB))
}

func compareAnalyzers(a, b *HandAnalyzer) int {
	if a.GetHand() != b.GetHand() {
		if a.GetHand() > b.GetHand() {
			return 1
		}

		return -1
	}

	ta, tb := a.GetTiebreak(), b.GetTiebreak()
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if ta[i] > tb[i] {
			return 1
		}

		if ta[i] < tb[i] {
			return -1
		}
	}

	return 0
}

// CompareHighestCard returns the hand holding the higher top card
// Only the single highest rank of each hand is considered; on equal ranks handA is returned.
func CompareHighestCard(handA, handB *deck.Hand) *deck.Hand {
	if NewHandAnalyzer(handB).GetHighestRank() > NewHandAnalyzer(handA).GetHighestRank() {
		return handB
	}

	return handA
}
