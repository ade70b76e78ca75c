package poker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandRank_String(t *testing.T) {
	expected := []string{
		"High Card",
		"Pair",
		"Two Pair",
		"Three of a Kind",
		"Straight",
		"Flush",
		"Full House",
		"Four of a Kind",
		"Straight Flush",
		"Royal Flush",
	}

	assert.Len(t, HandRanks, len(expected))
	for i, rank := range HandRanks {
		assert.Equal(t, expected[i], rank.String())
		if i > 0 {
			assert.True(t, rank > HandRanks[i-1])
		}
	}

	assert.PanicsWithValue(t, "unknown hand rank: -1", func() {
		_ = HandRank(-1).String()
	})
}

func TestHandRank_MarshalText(t *testing.T) {
	b, err := json.Marshal(map[string]HandRank{"rank": FullHouse})
	assert.NoError(t, err)
	assert.Equal(t, `{"rank":"Full House"}`, string(b))
}
