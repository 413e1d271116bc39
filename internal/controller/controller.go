// Package controller owns the application state machine and the single
// active game instance. The presentation layer calls Update once per frame;
// the controller forwards the frame to the active game, persists results on
// completion, and moves the app between its screens.
package controller

import (
	"github.com/dkotlyar/mindgym/internal/config"
	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/storage"
)

// Screen is the coarse application state.
type Screen int

const (
	ScreenGameSelection Screen = iota
	ScreenGameConfig
	ScreenPlaying
	ScreenResults
	ScreenHistory
)

// Controller drives the app. It is used from the single UI goroutine only.
type Controller struct {
	screen     Screen
	screenType game.Type // game the config/playing screen refers to

	store *storage.Store

	current       game.Game
	currentResult *game.Result
}

// New creates a controller over the given store.
func New(store *storage.Store) *Controller {
	return &Controller{
		screen: ScreenGameSelection,
		store:  store,
	}
}

// Screen returns the current application screen.
func (c *Controller) Screen() Screen { return c.screen }

// ScreenType returns the game type the config or playing screen refers to.
func (c *Controller) ScreenType() game.Type { return c.screenType }

// SetScreen moves the app to a screen that needs no game type.
func (c *Controller) SetScreen(s Screen) {
	c.screen = s
}

// OpenConfig moves to the config screen for a game type.
func (c *Controller) OpenConfig(t game.Type) {
	c.screenType = t
	c.screen = ScreenGameConfig
}

// Config returns the effective config for a game type: the stored one when
// present, otherwise the built-in default.
func (c *Controller) Config(t game.Type) game.Config {
	if cfg, ok := c.store.Config(t); ok {
		return config.Normalize(t, cfg)
	}
	return config.Default(t)
}

// SetConfig stores and persists a config for a game type.
func (c *Controller) SetConfig(t game.Type, cfg game.Config) {
	c.store.SaveConfig(t, config.Normalize(t, cfg))
}

// StartGame constructs the game for the type with its effective config and
// moves to the playing screen. Any previous instance is discarded.
func (c *Controller) StartGame(t game.Type) error {
	g, err := game.Create(t, c.Config(t))
	if err != nil {
		return err
	}
	c.current = g
	c.screenType = t
	c.screen = ScreenPlaying
	return nil
}

// StartGameWith is StartGame with an explicit config, bypassing the stored
// one. Used by the CLI's --difficulty and --config overrides.
func (c *Controller) StartGameWith(t game.Type, cfg game.Config) error {
	g, err := game.Create(t, config.Normalize(t, cfg))
	if err != nil {
		return err
	}
	c.current = g
	c.screenType = t
	c.screen = ScreenPlaying
	return nil
}

// CurrentGame returns the active game instance, nil when none is running.
func (c *Controller) CurrentGame() game.Game { return c.current }

// Update forwards one frame to the active game and reacts to its run state:
// on Finished the result is persisted, captured as current, and the app
// moves to the results screen; on Aborted the instance is dropped and the
// app returns to game selection. No-op when no game is active.
func (c *Controller) Update(f game.Frame) {
	if c.current == nil {
		return
	}

	c.current.Update(f)

	switch c.current.RunState() {
	case game.Playing:
		// keep going

	case game.Finished:
		if r := c.current.Result(); r != nil {
			c.store.SaveResult(*r)
			c.currentResult = r
		}
		c.screen = ScreenResults
		c.current = nil

	case game.Aborted:
		c.screen = ScreenGameSelection
		c.current = nil
	}
}

// NeedsRepaint delegates to the active game, false when none is active.
func (c *Controller) NeedsRepaint() bool {
	if c.current == nil {
		return false
	}
	return c.current.NeedsRepaint()
}

// CurrentResult returns the result of the last finished game, nil if none.
func (c *Controller) CurrentResult() *game.Result { return c.currentResult }

// ClearCurrentResult forgets the last finished result.
func (c *Controller) ClearCurrentResult() { c.currentResult = nil }

// StatsForGame returns aggregate stats for a game type.
func (c *Controller) StatsForGame(t game.Type) game.Stats {
	return c.store.StatsForGame(t)
}

// AllResults returns the full stored history in chronological order.
func (c *Controller) AllResults() []game.Result {
	return c.store.AllResults()
}

// ClearAllResults empties the stored history.
func (c *Controller) ClearAllResults() {
	c.store.ClearAllResults()
}
