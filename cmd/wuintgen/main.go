// Command wuintgen is the build-time half of the literal transform and
// a generator whose templates render the core of a U<width>/Bits<width>
// menu type (the shipped u*.go and bits*.go files carry a larger,
// hand-maintained surface): Go has neither macros nor token-tree
// rewriting, so the `_U<width>`/`_B<width>` literal suffix grammar and
// the const-generic-shaped menu of fixed-width types are both handled
// here instead, by a command run before the build, rather than at
// compile time.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wuintgen failed")
		os.Exit(1)
	}
}
