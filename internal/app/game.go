package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/motion"
	"github.com/depeter/slidingpanel/internal/panel"
	"github.com/depeter/slidingpanel/internal/ui"
)

// inboxSize bounds the events queued from other goroutines between frames.
const inboxSize = 32

// Game implements ebiten.Game and hosts a background panel with a sliding
// foreground panel on top.
type Game struct {
	Config *config.Config
	Panel  *panel.Controller
	Inbox  *panel.Inbox

	Width, Height int

	driver     *motion.Driver
	recognizer panel.DragRecognizer
	view       ui.PanelView
	errors     ui.ErrorDisplay
	now        func() time.Time
}

// NewGame creates the Game from cfg. The panel geometry starts at the
// configured window height and follows the real one from the first Layout.
func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{
		Config: cfg,
		Inbox:  panel.NewInbox(inboxSize),
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		driver: motion.NewDriver(cfg.Panel.EasingFunc()),
		now:    time.Now,
	}

	geom, err := panel.NewGeometry(cfg.UI.Height, cfg.Panel.AnchoredRatio, cfg.Panel.CollapsedRatio)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Panel.Options(),
		panel.WithAnimationDriver(g.driver),
		panel.WithStateListener(func(s panel.State) {
			log.Printf("Panel settled at %s", s)
		}),
	)
	g.Panel, err = panel.NewController(geom, opts...)
	if err != nil {
		return nil, err
	}

	g.recognizer.Slop = ui.DragSlop
	g.view = ui.PanelView{
		Background:      g.newButtonColumn(),
		Foreground:      g.newButtonColumn(),
		BackgroundTitle: "Background",
		ForegroundTitle: "Sliding panel",
	}
	return g, nil
}

// newButtonColumn builds one button per state plus the drag toggle.
func (g *Game) newButtonColumn() *ui.ButtonColumn {
	buttons := make([]*ui.Button, 0, len(panel.States)+1)
	for _, s := range panel.States {
		s := s
		buttons = append(buttons, &ui.Button{
			Label:   strings.ToUpper(s.String()),
			OnClick: func() { g.animateTo(s) },
		})
	}
	buttons = append(buttons, &ui.Button{Label: "TOGGLE DRAG", OnClick: g.toggleDrag})
	return ui.NewButtonColumn(buttons...)
}

func (g *Game) animateTo(s panel.State) {
	if err := g.Panel.AnimateTo(s); err != nil {
		log.Printf("Animate to %s: %v", s, err)
		g.errors.Show(err.Error())
	}
}

func (g *Game) toggleDrag() {
	enabled := !g.Panel.Enabled()
	if !enabled {
		g.recognizer.Cancel(g.Panel)
	}
	g.Panel.SetEnabled(enabled)
	log.Printf("Panel drag enabled: %v", enabled)
}

// ApplyConfig queues a reloaded config for the next frame. It is safe to call
// from any goroutine, typically the config watcher.
func (g *Game) ApplyConfig(cfg *config.Config, err error) {
	if err != nil {
		log.Printf("Config reload failed: %v", err)
	}
	if postErr := g.Inbox.TryPost(reloadEvent(g, cfg, err)); postErr != nil {
		log.Printf("Config reload dropped: %v", postErr)
	}
}

// reloadEvent applies cfg on the game goroutine. A failed load surfaces its
// error through the inbox so it reaches the error banner.
func reloadEvent(g *Game, cfg *config.Config, loadErr error) panel.Event {
	return panel.EventFunc(func(c *panel.Controller) error {
		if loadErr != nil {
			return loadErr
		}
		if err := cfg.Panel.Apply(c); err != nil {
			return err
		}
		g.driver.SetEasing(cfg.Panel.EasingFunc())
		g.Config.Panel = cfg.Panel
		g.Config.Keybinds = cfg.Keybinds
		log.Printf("Config reloaded")
		return nil
	})
}

// frameDuration is the time one Update covers.
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Inbox.Drain(g.Panel); err != nil {
		log.Printf("Panel event failed: %v", err)
		g.errors.Show(err.Error())
	}

	g.handleKeys()
	g.handlePointer()

	g.driver.Advance(frameDuration(), g.Panel)
	g.view.Layout(g.Panel.CurrentOffset())

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	g.view.Draw(screen, g.status(), cx, cy)
	g.errors.Draw(screen)
	ui.DrawDebugOverlay(screen, g.debugLines())
}

// Layout follows the outside size so the panel always spans the real screen.
// A height change is queued as a geometry update for the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideHeight != g.Height {
		if err := g.Inbox.TryPost(panel.HeightEvent(outsideHeight)); err != nil {
			log.Printf("Resize to %d dropped: %v", outsideHeight, err)
		}
	}
	g.Width, g.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) status() ui.PanelStatus {
	return ui.PanelStatus{
		Offset:  g.Panel.CurrentOffset(),
		State:   stateLabel(g.Panel),
		Enabled: g.Panel.Enabled(),
		Anchors: g.Panel.Geometry().Anchors(),
	}
}

// stateLabel names the resting state, or the phase and target while moving.
func stateLabel(c *panel.Controller) string {
	if s, ok := c.CurrentState(); ok {
		return s.String()
	}
	return fmt.Sprintf("%s -> %s", c.Phase(), c.TargetState())
}

func (g *Game) debugLines() []string {
	p := g.Panel.Progress()
	return []string{
		fmt.Sprintf("Phase: %s", g.Panel.Phase()),
		fmt.Sprintf("Offset: %.1f", g.Panel.CurrentOffset()),
		fmt.Sprintf("Target: %s", g.Panel.TargetState()),
		fmt.Sprintf("Between: %s..%s %.0f%%", p.From, p.To, p.Fraction*100),
		fmt.Sprintf("Velocity: %.0f px/s", g.recognizer.Velocity()),
		fmt.Sprintf("Geometry: %s", g.Panel.Geometry()),
		fmt.Sprintf("Drag: %v", g.Panel.Enabled()),
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
	}
}
