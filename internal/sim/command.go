package sim

import "pond-pet/widget/internal/pond"

// CommandType enumerates the input-triggered effects the engine accepts.
type CommandType string

const (
	// CommandSplash throws a single water drop. Any otherwise unbound key.
	CommandSplash CommandType = "Splash"
	// CommandBurst throws a handful of drops at once. The space key.
	CommandBurst CommandType = "Burst"
	// CommandRainBurst forces a volley of rain. The R key.
	CommandRainBurst CommandType = "RainBurst"
	// CommandPoke raises a ripple and a drop where the water was clicked.
	CommandPoke CommandType = "Poke"
)

// Command is an input intent captured for processing on the next tick.
// Commands enqueued before a tick take effect within that same tick's
// snapshot.
type Command struct {
	Type CommandType
	// Pos carries the click position for CommandPoke.
	Pos pond.Vec2
}
