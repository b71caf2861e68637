package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	clog "github.com/charmbracelet/log"

	"pomoglass/internal/app"
	"pomoglass/internal/ui"
)

func main() {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "pomoglass"})

	fs := flag.NewFlagSet("pomoglass", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config.yaml (defaults to the user config dir)")
	theme := fs.String("theme", "", "theme variant: glass_light or glass_dark")
	preset := fs.String("preset", "", "duration preset to start with")
	debug := fs.Bool("debug", false, "verbose console logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `pomoglass - a glassy Pomodoro timer for the terminal

Usage: pomoglass [flags] [command]

Commands:
  (none)      Interactive timer
  bridge      JSON command loop on stdin/stdout
  countdown   Standalone one-shot countdown

Flags:
`)
		fs.PrintDefaults()
	}

	args := os.Args[1:]
	command := ""
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		command = args[0]
		args = args[1:]
	}
	_ = fs.Parse(args)

	if *debug {
		logger.SetLevel(clog.DebugLevel)
	}

	if command == "countdown" {
		minutes := 5.0
		if rest := fs.Args(); len(rest) > 0 {
			fmt.Sscanf(rest[0], "%f", &minutes)
		}
		m := ui.NewCountdown(minutes, *theme)
		if err := m.Run(); err != nil {
			logger.Fatal("countdown failed", "err", err)
		}
		return
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *preset != "" {
		cfg.Preset = *preset
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal("startup failed", "err", err)
	}
	defer a.Close()

	switch command {
	case "":
		runTimer(a, cfg, *debug, logger)
	case "bridge":
		runBridge(a, logger)
	default:
		fs.Usage()
		os.Exit(2)
	}
}

func runTimer(a *app.App, cfg app.Config, debug bool, logger *clog.Logger) {
	eng := a.Engine()
	eng.Run()
	defer eng.Stop()

	m := ui.New(ui.Options{
		Controller: eng,
		History:    a.History(),
		Variant:    cfg.Theme,
		Preset:     cfg.Preset,
		Debug:      debug,
	})
	if err := m.Run(); err != nil {
		logger.Fatal("ui failed", "err", err)
	}
}

func runBridge(a *app.App, logger *clog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.RunBridge(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("bridge failed", "err", err)
	}
}
