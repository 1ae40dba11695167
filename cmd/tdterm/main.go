// cmd/tdterm/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go-hive-defense/internal/app"
	"go-hive-defense/internal/audio"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/term"
	"go-hive-defense/internal/utils"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run возвращает код выхода; os.Exit только в main, чтобы отработали defer.
func run(args []string) int {
	fs := flag.NewFlagSet("tdterm", flag.ContinueOnError)
	levelNum := fs.Int("level", 1, "level to start from")
	seed := fs.Int64("seed", 0, "random seed, 0 means time-based")
	defsPath := fs.String("defs", "", "JSON file overriding unit definitions")
	mute := fs.Bool("mute", false, "disable sound")
	logPath := fs.String("log", "", "write log to this file instead of discarding it")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Терминал занят tcell, поэтому лог уходит в файл или никуда.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *defsPath != "" {
		if err := defs.LoadUnitDefinitions(*defsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load unit definitions: %v\n", err)
			return 1
		}
	}

	rng := utils.NewPRNGService(*seed)
	dispatcher := event.NewDispatcher()
	cues := audio.NewCues(*mute)
	defer cues.Close()
	cues.Attach(dispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}

	load := func(n int) (*app.Game, error) { return app.LoadGame(n, rng, dispatcher) }
	loop, err := term.NewLoop(screen, load, *levelNum)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start level %d: %v\n", *levelNum, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = loop.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
