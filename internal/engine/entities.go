package engine

// Ball is the player-controlled ball. Position is the center of its hitbox,
// in world units. Exactly one ball exists per session.
type Ball struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
}

// BoxKind distinguishes regular spawner boxes from milestone bonus boxes.
type BoxKind int

const (
	BoxNormal BoxKind = iota
	BoxMilestone
)

// Box is a breakable obstacle worth points on first ball contact.
// Once Broken it is inert and waits to scroll out behind the camera.
type Box struct {
	ID     int
	X, Y   float64
	Kind   BoxKind
	Points int
	Broken bool
}

// Collectible is a pickup worth a fixed number of points.
// Its spawn rule ships disabled; see config.SpawningConfig.CollectiblesEnabled.
type Collectible struct {
	ID        int
	X, Y      float64
	Collected bool
}

// Hazard is a fatal obstacle. Hit is set at the instant it ends the game;
// the entity is not reused afterward.
type Hazard struct {
	ID   int
	X, Y float64
	Hit  bool
}
