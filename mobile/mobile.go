// Package mobile is the entry point for ebitenmobile bind. The host app embeds
// the generated view and the panel fills it.
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/depeter/slidingpanel/internal/app"
	"github.com/depeter/slidingpanel/internal/config"
	"github.com/depeter/slidingpanel/internal/ui"
)

func init() {
	// No config file on device; the defaults cover every setting and the
	// geometry follows the view size from the first layout.
	cfg := config.DefaultConfig()

	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}
	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create panel: %v", err)
	}
	mobile.SetGame(game, nil)
}

// Dummy is exported so the bound package is not empty.
func Dummy() {}
