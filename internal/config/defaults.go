package config

import (
	_ "embed"
)

//go:embed defaults/bouncer.yaml
var defaultBouncerYAML []byte

// DefaultBouncerConfig returns the default bouncer configuration.
// Kept in sync with defaults/bouncer.yaml as a fallback if the embed
// fails to parse.
func DefaultBouncerConfig() BouncerConfig {
	return BouncerConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			GroundLevel: 500,
			SpawnX:      100,
			SpawnY:      300,
		},
		Physics: PhysicsConfig{
			Gravity:        0.8,
			JumpPower:      -15,
			HorizontalJump: 5,
			Friction:       0.95,
		},
		Entities: EntitiesConfig{
			BallSize:        30,
			BoxSize:         40,
			CollectibleSize: 20,
			HazardSize:      25,
		},
		Scoring: ScoringConfig{
			BoxPoints:          10,
			MilestoneBoxPoints: 50,
			CollectiblePoints:  25,
			MilestoneInterval:  100,
		},
		Spawning: SpawningConfig{
			MinLiveBoxes:        10,
			BoxBatch:            3,
			BoxSpacing:          200,
			BoxJitter:           100,
			BoxBandTop:          260,
			BoxBandBottom:       60,
			MilestoneBoxHeight:  40,
			HazardScore:         500,
			HazardChance:        0.015,
			HazardBandTop:       160,
			HazardBandBottom:    40,
			HazardJitter:        300,
			CollectiblesEnabled: false,
			CollectibleChance:   0.01,
			CullMargin:          100,
		},
	}
}
