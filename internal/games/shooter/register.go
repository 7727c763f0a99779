package shooter

import "github.com/vovakirdan/tui-shooter/internal/registry"

func init() {
	registry.Register("shooter", func(opts registry.Options) registry.Game {
		return New(opts.Config, opts.Sprites)
	})
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)
