package main

import (
	"fmt"

	"github.com/HugoManns/pokerhands-tests/internal/rng"
	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
	"github.com/sirupsen/logrus"
)

// maxDealHands is how many hands fit in one deck
const maxDealHands = 52 / deck.HandSize

// DealCmd deals hands from a fresh deck
type DealCmd struct {
	Hands int   `short:"n" help:"Number of hands to deal (1-10)" default:"2"`
	Seed  int64 `short:"s" help:"Random seed for a reproducible deal, falls back to the configured seed"`
}

// Run deals the hands and, when exactly two are dealt, shows them down
func (c *DealCmd) Run(rc *runContext) error {
	if c.Hands < 1 || c.Hands > maxDealHands {
		return fmt.Errorf("hands must be between 1 and %d", maxDealHands)
	}

	seed := c.Seed
	if seed == 0 {
		seed = rc.cfg.Seed
	}

	var gen rng.Generator = rng.Crypto{}
	if seed != 0 {
		gen = rng.NewSeeded(seed)
	}

	d := deck.NewWithGenerator(gen)
	rc.logger.WithFields(logrus.Fields{
		"seed":     seed,
		"deckHash": d.HashCode(),
	}).Debug("deck shuffled")

	hands := make([]*deck.Hand, 0, c.Hands)
	for i := 0; i < c.Hands; i++ {
		hand, err := d.DealHand()
		if err != nil {
			return err
		}

		hands = append(hands, hand)
	}

	fmt.Fprintln(rc.out, headerStyle.Render("Deal"))
	for i, hand := range hands {
		fmt.Fprintf(rc.out, "  %d. %s  %s\n", i+1, renderHand(hand), renderCategory(poker.NewHandAnalyzer(hand).GetHand()))
	}

	if len(hands) == 2 {
		fmt.Fprintln(rc.out, renderVerdict(poker.CheckHands(hands[0], hands[1]), hands...))
	}

	fmt.Fprintf(rc.out, "%d cards left\n", d.CardsLeft())
	return nil
}
