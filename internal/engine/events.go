package engine

// EventKind identifies a discrete engine event.
type EventKind int

const (
	// EventBallJumped fires on every accepted jump command.
	EventBallJumped EventKind = iota
	// EventRotateBall asks the presentation layer to play a spin animation.
	// The engine has no notion of animation duration or easing.
	EventRotateBall
	// EventItemCollected fires when a box is broken or a collectible picked up.
	EventItemCollected
	// EventGameOver fires exactly once per session, on ground or hazard contact.
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBallJumped:
		return "BallJumped"
	case EventRotateBall:
		return "RotateBall"
	case EventItemCollected:
		return "ItemCollected"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete notification for external collaborators (audio,
// presentation, persistence). Events never carry engine state references;
// collaborators must not mutate engine state.
type Event struct {
	Kind       EventKind
	Points     int // Points awarded, for ItemCollected
	FinalScore int // Session score, for GameOver
}
