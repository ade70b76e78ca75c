package main

import (
	"io"
	"os"

	"github.com/HugoManns/pokerhands-tests/internal/config"
	"github.com/HugoManns/pokerhands-tests/internal/logging"
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// version is set by ldflags during build
var version = "dev"

// CLI is the pokerhands command line
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Deal hands from a fresh deck and show them down"`
	Compare  CompareCmd       `cmd:"" help:"Compare two hands, e.g. '5c 5s 4s 7c 9s' 'Ah Kh Qh Jh Th'"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many hands and report how often each category occurs"`
}

// runContext is bound to every command's Run method
type runContext struct {
	cfg    config.Config
	out    io.Writer
	logger logrus.FieldLogger
}

func newParser(cli *CLI, out io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("pokerhands"),
		kong.Description("Deal, evaluate and compare five card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Writers(out, os.Stderr),
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cfg := config.Instance()
	if err := logging.Setup(logrus.StandardLogger(), cfg.Log); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	err = ctx.Run(&runContext{
		cfg:    cfg,
		out:    os.Stdout,
		logger: logrus.StandardLogger(),
	})
	ctx.FatalIfErrorf(err)
}
