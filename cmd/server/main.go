package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/HugoManns/pokerhands-tests/internal/config"
	"github.com/HugoManns/pokerhands-tests/internal/logging"
	"github.com/HugoManns/pokerhands-tests/internal/mux"
	"github.com/HugoManns/pokerhands-tests/internal/rng"
	"github.com/HugoManns/pokerhands-tests/pkg/table"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := logging.Setup(logrus.StandardLogger(), cfg.Log); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	tables := table.NewRegistry(newGenerator(cfg.Seed), logrus.StandardLogger())

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(Version, tables))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":    srv.Addr,
		"version": Version,
		"seeded":  cfg.Seed != 0,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newGenerator returns the random source factory for new tables
// A non-zero seed makes every table deal reproducibly, each from its own offset of the seed.
func newGenerator(seed int64) func() rng.Generator {
	if seed == 0 {
		return func() rng.Generator {
			return rng.Crypto{}
		}
	}

	next := seed
	return func() rng.Generator {
		gen := rng.NewSeeded(next)
		next++
		return gen
	}
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}
