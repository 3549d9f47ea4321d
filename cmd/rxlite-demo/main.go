package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	start := time.Now()
	log.Trace().Msgf("Top of execution - %s", start.UTC())
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("rxlite-demo failed")
		os.Exit(1)
	}
	log.Trace().Msgf("Execution finished - %s", time.Since(start))
}
