package main

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/slidingpanel/assets/icon"
	"github.com/depeter/slidingpanel/internal/app"
	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// First run: write the defaults so there is a file to edit
	if err := cfg.EnsureFile(config.ConfigPath()); err != nil {
		log.Printf("Failed to write default config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create panel: %v", err)
	}

	// Reload panel settings when the config file changes
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := config.Watch(ctx, config.ConfigPath(), game.ApplyConfig); err != nil {
			log.Printf("Config watch stopped: %v", err)
		}
	}()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Sliding Panel")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
