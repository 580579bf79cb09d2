// Package config provides YAML-based game configuration loading for the
// bouncer game. The defaults encode the tuned gameplay constants; custom
// configs are for experimentation, not the supported game balance.
package config

// BouncerConfig contains all configuration for the bouncer game.
type BouncerConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Entities EntitiesConfig `yaml:"entities"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Spawning SpawningConfig `yaml:"spawning"`
}

// WorldConfig defines the world-space geometry.
// All values are in world units, not screen cells.
type WorldConfig struct {
	Width       float64 `yaml:"width"`        // Viewport width in world units
	Height      float64 `yaml:"height"`       // Viewport height in world units
	GroundLevel float64 `yaml:"ground_level"` // Y at which ground contact ends the game
	SpawnX      float64 `yaml:"spawn_x"`      // Ball spawn position
	SpawnY      float64 `yaml:"spawn_y"`
}

// PhysicsConfig defines ball kinematics parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration per tick
	JumpPower      float64 `yaml:"jump_power"`      // Vertical velocity set on jump (negative = up)
	HorizontalJump float64 `yaml:"horizontal_jump"` // Horizontal velocity set on a directed jump
	Friction       float64 `yaml:"friction"`        // Per-tick horizontal velocity multiplier
}

// EntitiesConfig defines hitbox sizes. Positions are centers; hitboxes are
// squares of the given side length.
type EntitiesConfig struct {
	BallSize        float64 `yaml:"ball_size"`
	BoxSize         float64 `yaml:"box_size"`
	CollectibleSize float64 `yaml:"collectible_size"`
	HazardSize      float64 `yaml:"hazard_size"`
}

// ScoringConfig defines point values and milestone progression.
type ScoringConfig struct {
	BoxPoints          int `yaml:"box_points"`           // Normal box reward
	MilestoneBoxPoints int `yaml:"milestone_box_points"` // Milestone box reward
	CollectiblePoints  int `yaml:"collectible_points"`
	MilestoneInterval  int `yaml:"milestone_interval"` // Score step that spawns a milestone box
}

// SpawningConfig defines the procedural spawn and cull rules.
type SpawningConfig struct {
	MinLiveBoxes        int     `yaml:"min_live_boxes"`        // Spawn a batch when fewer unbroken boxes remain
	BoxBatch            int     `yaml:"box_batch"`             // Boxes per spawn burst
	BoxSpacing          float64 `yaml:"box_spacing"`           // Base horizontal distance between batch boxes
	BoxJitter           float64 `yaml:"box_jitter"`            // Random extra horizontal offset per box
	BoxBandTop          float64 `yaml:"box_band_top"`          // Box spawn band, as height above ground
	BoxBandBottom       float64 `yaml:"box_band_bottom"`
	MilestoneBoxHeight  float64 `yaml:"milestone_box_height"`  // Milestone box height above ground
	HazardScore         int     `yaml:"hazard_score"`          // Score at which hazards may start spawning
	HazardChance        float64 `yaml:"hazard_chance"`         // Per-tick spawn probability once unlocked
	HazardBandTop       float64 `yaml:"hazard_band_top"`       // Hazard spawn band, as height above ground
	HazardBandBottom    float64 `yaml:"hazard_band_bottom"`
	HazardJitter        float64 `yaml:"hazard_jitter"`         // Random horizontal offset past the viewport
	CollectiblesEnabled bool    `yaml:"collectibles_enabled"`  // Dormant spawn rule, off in the shipped balance
	CollectibleChance   float64 `yaml:"collectible_chance"`    // Per-tick spawn probability when enabled
	CullMargin          float64 `yaml:"cull_margin"`           // Distance behind the camera before removal
}

// MinNameLength is the minimum accepted player name length.
// Enforced by the name entry screen before the engine ever sees the name.
const MinNameLength = 2
