package game

import (
	"fmt"
	"sync"
)

// Game is the contract every mini-game implements. Games contain pure state
// machine logic with no external dependencies (especially no Bubble Tea).
// The host owns input widgets, timing and rendering.
type Game interface {
	// Type returns the game's identity in the Type enum.
	Type() Type

	// Update advances one frame's worth of logic. It never blocks; display
	// timers are realized by comparing a captured start timestamp against
	// the frame's Now on every call.
	Update(f Frame)

	// RunState is a pure read of the coarse status derived from the
	// finished/aborted flags set during Update.
	RunState() RunState

	// Result returns the completed attempt once RunState is Finished, nil
	// otherwise. Repeated calls after finishing return the same value.
	Result() *Result

	// NeedsRepaint is true only while a time-driven display phase is
	// active, signalling the host to redraw continuously so countdowns
	// stay current rather than repainting only on input.
	NeedsRepaint() bool
}

// Factory creates a new game instance for one session.
type Factory func(cfg Config) Game

var (
	mu        sync.RWMutex
	factories = make(map[Type]Factory)
)

// Register adds a game factory. Each game package calls this from init(),
// so the set of playable games is exactly the set of imported packages.
// Panics on duplicate registration.
func Register(t Type, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[t]; exists {
		panic(fmt.Sprintf("game: %q already registered", t))
	}
	factories[t] = f
}

// Create instantiates a game of the given type with the given config.
func Create(t Type, cfg Config) (Game, error) {
	mu.RLock()
	f, ok := factories[t]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("game: unknown game %q", t)
	}
	return f(cfg), nil
}

// Registered reports whether a factory exists for the given type.
func Registered(t Type) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[t]
	return ok
}
