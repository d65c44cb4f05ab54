package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI; log to a file when asked to
	if path := os.Getenv("SLIDINGPANEL_LOG"); path != "" {
		f, err := tea.LogToFile(path, "slidingpanel")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := cfg.EnsureFile(config.ConfigPath()); err != nil {
		log.Printf("write default config: %v", err)
	}

	m, err := tui.New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := config.Watch(ctx, config.ConfigPath(), func(c *config.Config, err error) {
			p.Send(tui.ConfigMsg{Config: c, Err: err})
		})
		// the panel still works without live reload
		if err != nil {
			log.Printf("config watch stopped: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	return g.Wait()
}
