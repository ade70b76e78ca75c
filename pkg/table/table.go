package table

import (
	"fmt"
	"sync"
	"time"

	"github.com/HugoManns/pokerhands-tests/internal/rng"
	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// handsPerRound is the number of hands dealt for a showdown
const handsPerRound = 2

// Table is a heads-up showdown session
// A table owns its deck. Rounds are dealt from it until it runs out of cards.
type Table struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`

	deck   *deck.Deck
	rounds []*Round
	logger logrus.FieldLogger
	lock   sync.Mutex
}

// Round is the result of a single showdown
type Round struct {
	UUID    string        `json:"uuid"`
	Number  int           `json:"number"`
	Hands   [2]*deck.Hand `json:"hands"`
	Types   [2]string     `json:"handTypes"`
	Verdict poker.Verdict `json:"verdict"`
	// Winner is 1 or 2 for the winning hand, 0 on a tie
	Winner int `json:"winner"`
}

// New returns a new table with a fresh deck shuffled by gen
func New(name string, gen rng.Generator, logger logrus.FieldLogger) *Table {
	t := &Table{
		UUID:    uuid.New().String(),
		Name:    name,
		Created: time.Now(),
		deck:    deck.NewWithGenerator(gen),
	}

	t.logger = logger.WithFields(logrus.Fields{
		"uuid": t.UUID,
		"name": t.Name,
	})
	t.logger.WithField("deckHash", t.deck.HashCode()).Debug("table created")

	return t
}

// PlayRound deals two hands and compares them
// If the deck cannot cover both hands, ErrTableExhausted is returned and no cards are dealt.
func (t *Table) PlayRound() (*Round, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.deck.CanDraw(handsPerRound * deck.HandSize) {
		return nil, fmt.Errorf("%w: %w", ErrTableExhausted, deck.ErrInsufficientCards)
	}

	var hands [handsPerRound]*deck.Hand
	for i := range hands {
		hand, err := t.deck.DealHand()
		if err != nil {
			return nil, err
		}

		hands[i] = hand
	}

	verdict := poker.CheckHands(hands[0], hands[1])
	round := &Round{
		UUID:    uuid.New().String(),
		Number:  len(t.rounds) + 1,
		Hands:   hands,
		Verdict: verdict,
	}

	for i, hand := range hands {
		round.Types[i] = poker.NewHandAnalyzer(hand).GetHand().String()
		if verdict.WinningHand == hand {
			round.Winner = i + 1
		}
	}

	t.rounds = append(t.rounds, round)
	t.logger.WithFields(logrus.Fields{
		"round":     round.Number,
		"hands":     fmt.Sprintf("%s vs %s", hands[0], hands[1]),
		"handType":  verdict.HandType,
		"winner":    round.Winner,
		"cardsLeft": t.deck.CardsLeft(),
	}).Info("round played")

	return round, nil
}

// CardsLeft returns the number of cards left in the table's deck
func (t *Table) CardsLeft() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.deck.CardsLeft()
}

// Rounds returns the rounds played so far
func (t *Table) Rounds() []*Round {
	t.lock.Lock()
	defer t.lock.Unlock()

	rounds := make([]*Round, len(t.rounds))
	copy(rounds, t.rounds)

	return rounds
}
