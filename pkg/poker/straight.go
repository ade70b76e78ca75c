package poker

import "github.com/HugoManns/pokerhands-tests/pkg/deck"

// checkStraight returns the highest rank of the straight, or zero if the sorted ranks do not form one
// The ranks must be sorted ascending. An ace only plays high.
func checkStraight(sortedRanks []int) int {
	if len(sortedRanks) != deck.HandSize {
		return 0
	}

	for i := 1; i < len(sortedRanks); i++ {
		if sortedRanks[i] != sortedRanks[i-1]+1 {
			return 0
		}
	}

	return sortedRanks[len(sortedRanks)-1]
}
