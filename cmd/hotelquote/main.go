// Command hotelquote reads stay requests from stdin and prints the cheapest
// hotel for each one.
//
//	$ hotelquote
//	Input:
//	Regular: 16Mar2009(mon), 17Mar2009(tues), 18Mar2009(wed)
//	Output:
//	Lakewood
//
// An empty line or the end of input stops the program.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tarifa/money/internal/config"
	"github.com/tarifa/money/internal/logging"
	"github.com/tarifa/money/lodging"
)

func main() {
	showPrices := flag.Bool("prices", false, "print the total of every hotel")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = logging.New(cfg.AppEnv, cfg.LogLevel)

	catalog, err := lodging.DefaultCatalog(cfg.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog failed")
	}
	log.Debug().Int("hotels", catalog.Len()).Stringer("currency", cfg.Currency).Msg("catalog loaded")

	q := &quoter{
		catalog:    catalog,
		prompt:     cfg.Prompt,
		showPrices: cfg.ShowPrices || *showPrices,
		logger:     log.Logger,
	}
	if err := q.run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("quote loop failed")
	}
}
