package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/dynasty_tracker/config"
	"github.com/mww/dynasty_tracker/controller"
	"github.com/mww/dynasty_tracker/db"
	"github.com/mww/dynasty_tracker/logging"
	"github.com/mww/dynasty_tracker/web"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init("dynasty_tracker")
		log.Fatal().Err(err).Msg("error loading config")
	}
	logging.Init(cfg.LogApp)

	clock := clock.New()
	store, err := openStore(cfg, clock)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.StoreDriver).Msg("cannot connect to DB")
	}
	defer store.Close()

	ctrl, err := controller.New(clock, store)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating a new controller")
	}

	server, err := web.NewServer(cfg.Port, ctrl, cfg.RequestTimeout, cfg.ShutdownTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating new web server")
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, cfg.ShutdownTimeout); err != nil {
			log.Error().Msg("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info().Msg("server shutdown")
}

func openStore(cfg config.Config, clock clock.Clock) (db.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.StoreMongo:
		return db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, clock)
	default:
		return db.NewPostgres(ctx, cfg.PostgresConnString, clock)
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
