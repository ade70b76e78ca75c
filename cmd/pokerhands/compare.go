package main

import (
	"encoding/json"
	"fmt"

	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
)

// CompareCmd compares two hands given on the command line
type CompareCmd struct {
	Hands []string `arg:"" help:"Two hands of five cards, each quoted (e.g. '5c 5s 4s 7c 9s')"`
	JSON  bool     `help:"Print the verdict as JSON"`
}

type compareOutput struct {
	Verdict     poker.Verdict      `json:"verdict"`
	Winner      int                `json:"winner"`
	Evaluations []poker.Evaluation `json:"evaluations"`
}

// Run parses both hands and prints the verdict
func (c *CompareCmd) Run(rc *runContext) error {
	if len(c.Hands) != 2 {
		return fmt.Errorf("exactly two hands are required, got %d", len(c.Hands))
	}

	hands := make([]*deck.Hand, len(c.Hands))
	for i, s := range c.Hands {
		hand, err := deck.ParseHand(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		hands[i] = hand
	}

	out := compareOutput{
		Verdict: poker.CheckHands(hands[0], hands[1]),
	}

	for i, hand := range hands {
		out.Evaluations = append(out.Evaluations, poker.Evaluate(hand))
		if out.Verdict.WinningHand == hand {
			out.Winner = i + 1
		}
	}

	if c.JSON {
		enc := json.NewEncoder(rc.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(rc.out, headerStyle.Render("Showdown"))
	for i, hand := range hands {
		fmt.Fprintf(rc.out, "  %d. %s  %s\n", i+1, renderHand(hand), renderCategory(out.Evaluations[i].Rank))
	}

	fmt.Fprintln(rc.out, renderVerdict(out.Verdict, hands...))
	return nil
}
