// Command fairdice plays a provably fair non-transitive dice game in the
// console.
//
// Each die is given as a positional argument: a comma-separated list of six
// integer face values. At least three dice are required.
//
//	fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3
//
// Every random decision (who moves first, and both rolls) runs a
// commit-reveal exchange: the program publishes an HMAC-SHA256 commitment
// to its value before asking for yours, then reveals the key so you can
// verify it never changed its mind. At any prompt, X exits and ? shows the
// pairwise win probability table.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fairdice/fairdice/console"
	"github.com/fairdice/fairdice/dice"
	"github.com/fairdice/fairdice/game"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()
	log := newLogger()

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			printUsage()
			return 0
		}
	}

	set, err := dice.ParseSet(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The console input channel is the session's single external resource;
	// releasing it is guaranteed on every exit path.
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	defer prompter.Close()

	session, err := game.NewSession(game.Config{
		Dice:     set,
		Random:   rand.Reader,
		Provider: prompter,
		Menu:     prompter,
		Display:  console.NewSink(os.Stdout),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	session.SetLogger(log)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		// Interrupts funnel into the same exit transition as a menu cancel.
		session.Cancel()
		cancel()
	}()

	outcome, err := session.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("session aborted")
		return 1
	}
	log.Debug().Stringer("outcome", outcome).Msg("session ended")
	return 0
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		level = lvl
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: os.Getenv("NO_COLOR") != ""}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func printUsage() {
	fmt.Println(`fairdice - provably fair non-transitive dice game

Usage:
  fairdice <die> <die> <die> [die...]

Each die is a comma-separated list of 6 integer face values. At least 3
dice are required and every die must have exactly 6 faces.

At any prompt: enter the shown number, X to exit, ? for the probability
table.

Environment:
  LOG_LEVEL   debug|info|warn|error (default: warn)
  NO_COLOR    disable colored log output when set

Example:
  fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3`)
}
