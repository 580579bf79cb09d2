package engine

// Snapshot is an immutable copy of the full engine state, published once per
// tick for the presentation layer. Entity slices are copies; consumers may
// hold a snapshot across ticks without racing the simulation.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Ball          Ball
	Camera        float64
	Score         int
	LastMilestone int
	PlayerName    string
	Boxes         []Box
	Collectibles  []Collectible
	Hazards       []Hazard
}

// Snapshot returns an immutable copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	boxes := make([]Box, len(e.boxes))
	copy(boxes, e.boxes)

	collectibles := make([]Collectible, len(e.collectibles))
	copy(collectibles, e.collectibles)

	hazards := make([]Hazard, len(e.hazards))
	copy(hazards, e.hazards)

	return Snapshot{
		Tick:          e.tick,
		Phase:         e.phase,
		Ball:          e.ball,
		Camera:        e.camera,
		Score:         e.score,
		LastMilestone: e.lastMilestone,
		PlayerName:    e.playerName,
		Boxes:         boxes,
		Collectibles:  collectibles,
		Hazards:       hazards,
	}
}
