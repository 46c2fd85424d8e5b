package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"lifeboard/internal/app"
	"lifeboard/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 40, 20
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file instead of discarding it")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// Log lines would corrupt the screen while the terminal is in raw mode.
		log.SetOutput(io.Discard)
	}

	session, err := cfg.Session()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, session).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
