package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/HugoManns/pokerhands-tests/internal/config"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	var cli CLI
	parser, err := newParser(&cli, &out)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), err
	}

	logger, _ := test.NewNullLogger()
	err = ctx.Run(&runContext{
		cfg:    cfg,
		out:    &out,
		logger: logger,
	})

	return out.String(), err
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, config.DefaultConfig(), "compare", "5c 5s 4s 7c 9s", "5c 5s 4d 4c 9s")
	require.NoError(t, err)
	assert.Contains(t, out, "Showdown")
	assert.Contains(t, out, "Hand 2 wins with Two Pair")
	assert.Contains(t, out, "4♦")

	out, err = run(t, config.DefaultConfig(), "compare", "5c 5s 4s 7c 9s", "5d 5h 4c 7d 9h")
	require.NoError(t, err)
	assert.Contains(t, out, "Tie with Pair")
}

func TestCompareCmd_json(t *testing.T) {
	out, err := run(t, config.DefaultConfig(), "compare", "--json", "Tc,Jc,Qc,Kc,Ac", "5c,5s,5d,5h,9s")
	require.NoError(t, err)

	var result struct {
		Verdict struct {
			WinningHand []string `json:"winningHand"`
			HandType    string   `json:"handType"`
		} `json:"verdict"`
		Winner int `json:"winner"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1, result.Winner)
	assert.Equal(t, "Royal Flush", result.Verdict.HandType)
	assert.Equal(t, []string{"T♣", "J♣", "Q♣", "K♣", "A♣"}, result.Verdict.WinningHand)
}

func TestCompareCmd_errors(t *testing.T) {
	_, err := run(t, config.DefaultConfig(), "compare", "5c 5s 4s 7c 9s")
	assert.EqualError(t, err, "exactly two hands are required, got 1")

	_, err = run(t, config.DefaultConfig(), "compare", "5c 5s 4s 7c", "5c 5s 4d 4c 9s")
	assert.EqualError(t, err, "hand 1: a hand must have exactly five cards: got 4")

	_, err = run(t, config.DefaultConfig(), "compare", "5c 5s 4s 7c 9s", "5c 5s 4d 4c 1s")
	assert.EqualError(t, err, `hand 2: invalid card: "1s"`)
}

func TestDealCmd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 42

	out, err := run(t, cfg, "deal")
	require.NoError(t, err)
	assert.Contains(t, out, "Deal")
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "2. ")
	assert.Contains(t, out, "42 cards left")

	// same seed, same deal
	again, err := run(t, cfg, "deal")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = run(t, config.DefaultConfig(), "deal", "-n", "10", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "10. ")
	assert.Contains(t, out, "2 cards left")
	assert.NotContains(t, out, "wins")

	_, err = run(t, config.DefaultConfig(), "deal", "-n", "11")
	assert.EqualError(t, err, "hands must be between 1 and 10")

	_, err = run(t, config.DefaultConfig(), "deal", "-n", "0")
	assert.EqualError(t, err, "hands must be between 1 and 10")
}

func TestSimulateCmd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Simulate.Hands = 1000000

	out, err := run(t, cfg, "simulate", "-n", "500", "-w", "2", "-s", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "500 hands, 2 workers")
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "High Card")
	assert.Contains(t, out, "showdowns tied")

	cfg.Simulate.Workers = 0
	_, err = run(t, cfg, "simulate", "-n", "10")
	assert.Error(t, err)
}
