package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/HugoManns/pokerhands-tests/internal/simulate"
	"github.com/HugoManns/pokerhands-tests/pkg/poker"
)

// SimulateCmd measures category frequencies
type SimulateCmd struct {
	Workers int   `short:"w" help:"Number of worker goroutines, falls back to the configuration"`
	Hands   int   `short:"n" help:"Number of hands to deal, falls back to the configuration"`
	Seed    int64 `short:"s" help:"Random seed for reproducible results, falls back to the configured seed"`
}

// Run deals the hands and prints a frequency table
func (c *SimulateCmd) Run(rc *runContext) error {
	opts := simulate.Options{
		Workers: rc.cfg.Simulate.Workers,
		Hands:   rc.cfg.Simulate.Hands,
		Seed:    rc.cfg.Seed,
	}

	if c.Workers != 0 {
		opts.Workers = c.Workers
	}

	if c.Hands != 0 {
		opts.Hands = c.Hands
	}

	if c.Seed != 0 {
		opts.Seed = c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := simulate.Run(ctx, opts, rc.logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(rc.out, headerStyle.Render(fmt.Sprintf("%d hands, %d workers, %s", res.Hands, opts.Workers, res.Duration.Round(time.Millisecond))))

	tw := tabwriter.NewWriter(rc.out, 0, 0, 2, ' ', 0)
	for i := len(poker.HandRanks) - 1; i >= 0; i-- {
		rank := poker.HandRanks[i]
		fmt.Fprintf(tw, "  %s\t%d\t%.4f%%\n", rank, res.Counts[rank], res.Frequency(rank)*100)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(rc.out, "%d of %d showdowns tied\n", res.Ties, res.Showdowns)
	return nil
}
