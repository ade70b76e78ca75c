package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 10, Ten)
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestNewCard(t *testing.T) {
	card := NewCard(Hearts, Ace)
	assert.Equal(t, Hearts, card.Suit())
	assert.Equal(t, Ace, card.Rank())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♥", NewCard(Hearts, 2).String())
	assert.Equal(t, "9♣", NewCard(Clubs, 9).String())
	assert.Equal(t, "T♣", NewCard(Clubs, 10).String())
	assert.Equal(t, "J♣", NewCard(Clubs, Jack).String())
	assert.Equal(t, "Q♦", NewCard(Diamonds, Queen).String())
	assert.Equal(t, "K♦", NewCard(Diamonds, King).String())
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())

	assert.PanicsWithValue(t, "unknown suit: stars", func() {
		_ = NewCard(Suit("stars"), 2).String()
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(NewCard(Clubs, 5).Equal(NewCard(Clubs, 5)))
	a.False(NewCard(Clubs, 5).Equal(NewCard(Spades, 5)))
	a.False(NewCard(Clubs, 5).Equal(NewCard(Clubs, 6)))
	a.True(NewCard(Clubs, 5) == CardFromString("5c"))
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"2c", NewCard(Clubs, 2)},
		{"10h", NewCard(Hearts, 10)},
		{"Th", NewCard(Hearts, 10)},
		{"14s", NewCard(Spades, Ace)},
		{"as", NewCard(Spades, Ace)},
		{"A♠", NewCard(Spades, Ace)},
		{"K♦", NewCard(Diamonds, King)},
		{"Q♢", NewCard(Diamonds, Queen)},
		{"J♥", NewCard(Hearts, Jack)},
		{"5♣", NewCard(Clubs, 5)},
		{" 9D ", NewCard(Diamonds, 9)},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			card, err := ParseCard(test.in)
			assert.NoError(t, err)
			assert.Equal(t, test.want, card)
		})
	}

	for _, bad := range []string{"", "1c", "15c", "Xc", "5x", "5", "c5", "10cc"} {
		_, err := ParseCard(bad)
		assert.True(t, errors.Is(err, ErrInvalidCard), bad)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("2c, 3d 4h,\t14s")
	assert.NoError(t, err)
	assert.Equal(t, "2c,3d,4h,14s", CardsToString(cards))

	cards, err = ParseCards("")
	assert.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("2c,3z")
	assert.EqualError(t, err, `invalid card: "3z"`)
}

func TestCardFromString_panics(t *testing.T) {
	assert.Panics(t, func() {
		_ = CardFromString("zz")
	})

	assert.Panics(t, func() {
		_ = CardsFromString("2c,zz")
	})
}

func TestCard_JSON(t *testing.T) {
	b, err := json.Marshal(NewCard(Diamonds, King))
	assert.NoError(t, err)
	assert.Equal(t, `"K♦"`, string(b))

	var card Card
	assert.NoError(t, json.Unmarshal([]byte(`"10s"`), &card))
	assert.Equal(t, NewCard(Spades, 10), card)

	assert.Error(t, json.Unmarshal([]byte(`"11x"`), &card))
	assert.Error(t, json.Unmarshal([]byte(`11`), &card))
}
