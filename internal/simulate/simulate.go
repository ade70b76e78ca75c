// Package simulate deals large numbers of hands to measure how often each category occurs
package simulate

import (
	"context"
	"errors"
	"time"

	"github.com/HugoManns/pokerhands-tests/internal/rng"
	"github.com/HugoManns/pokerhands-tests/pkg/deck"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidOptions is returned when the options cannot produce a simulation
var ErrInvalidOptions = errors.New("workers and hands must be positive")

// checkEvery is how many hands a worker deals between context checks
const checkEvery = 1024

// Options configures a simulation
type Options struct {
	Workers int
	Hands   int
	// Seed makes the result reproducible when non-zero
	// Worker n is seeded with Seed+n.
	Seed int64
}

// Result holds the tallies of a simulation
type Result struct {
	Hands    int
	Counts   map[poker.HandRank]int
	Duration time.Duration

	// heads-up showdowns between consecutive hands from the same deck
	Showdowns int
	Ties      int
}

// Frequency returns the share of hands that made the category
func (r *Result) Frequency(rank poker.HandRank) float64 {
	if r.Hands == 0 {
		return 0
	}

	return float64(r.Counts[rank]) / float64(r.Hands)
}

type workerResult struct {
	counts    map[poker.HandRank]int
	hands     int
	showdowns int
	ties      int
}

// Run deals opts.Hands hands spread across opts.Workers goroutines
// Every worker owns its decks, nothing is shared between them.
func Run(ctx context.Context, opts Options, logger logrus.FieldLogger) (*Result, error) {
	if opts.Workers <= 0 || opts.Hands <= 0 {
		return nil, ErrInvalidOptions
	}

	start := time.Now()
	perWorker := opts.Hands / opts.Workers
	remainder := opts.Hands % opts.Workers

	g, ctx := errgroup.WithContext(ctx)
	results := make([]workerResult, opts.Workers)

	for w := 0; w < opts.Workers; w++ {
		hands := perWorker
		if w < remainder {
			hands++
		}

		var gen rng.Generator = rng.Crypto{}
		if opts.Seed != 0 {
			gen = rng.NewSeeded(opts.Seed + int64(w))
		}

		w := w
		g.Go(func() error {
			res, err := runWorker(ctx, gen, hands)
			if err != nil {
				return err
			}

			results[w] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Result{
		Counts: make(map[poker.HandRank]int, len(poker.HandRanks)),
	}

	for _, res := range results {
		total.Hands += res.hands
		total.Showdowns += res.showdowns
		total.Ties += res.ties
		for rank, count := range res.counts {
			total.Counts[rank] += count
		}
	}

	total.Duration = time.Since(start)
	logger.WithFields(logrus.Fields{
		"workers":  opts.Workers,
		"hands":    total.Hands,
		"ties":     total.Ties,
		"duration": total.Duration,
	}).Info("simulation finished")

	return total, nil
}

func runWorker(ctx context.Context, gen rng.Generator, hands int) (workerResult, error) {
	res := workerResult{
		counts: make(map[poker.HandRank]int, len(poker.HandRanks)),
	}

	d := deck.NewWithGenerator(gen)
	var previous *deck.Hand

	for i := 0; i < hands; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		if !d.CanDraw(deck.HandSize) {
			d = deck.NewWithGenerator(gen)
			previous = nil
		}

		hand, err := d.DealHand()
		if err != nil {
			return res, err
		}

		res.counts[poker.NewHandAnalyzer(hand).GetHand()]++
		res.hands++

		if previous == nil {
			previous = hand
			continue
		}

		res.showdowns++
		if poker.CompareHands(previous, hand) == 0 {
			res.ties++
		}

		previous = nil
	}

	return res, nil
}
