package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultBouncerConfig(t *testing.T) {
	cfg := DefaultBouncerConfig()

	// The tuned gameplay constants the simulation depends on.
	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("Gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpPower != -15 {
		t.Errorf("JumpPower = %v, expected -15", cfg.Physics.JumpPower)
	}
	if cfg.Physics.HorizontalJump != 5 {
		t.Errorf("HorizontalJump = %v, expected 5", cfg.Physics.HorizontalJump)
	}
	if cfg.Physics.Friction != 0.95 {
		t.Errorf("Friction = %v, expected 0.95", cfg.Physics.Friction)
	}

	if cfg.Entities.BallSize != 30 || cfg.Entities.BoxSize != 40 ||
		cfg.Entities.CollectibleSize != 20 || cfg.Entities.HazardSize != 25 {
		t.Errorf("entity sizes = %+v, expected 30/40/20/25", cfg.Entities)
	}

	if cfg.Scoring.BoxPoints != 10 {
		t.Errorf("BoxPoints = %d, expected 10", cfg.Scoring.BoxPoints)
	}
	if cfg.Scoring.MilestoneBoxPoints != 50 {
		t.Errorf("MilestoneBoxPoints = %d, expected 50", cfg.Scoring.MilestoneBoxPoints)
	}
	if cfg.Scoring.CollectiblePoints != 25 {
		t.Errorf("CollectiblePoints = %d, expected 25", cfg.Scoring.CollectiblePoints)
	}
	if cfg.Scoring.MilestoneInterval != 100 {
		t.Errorf("MilestoneInterval = %d, expected 100", cfg.Scoring.MilestoneInterval)
	}

	if cfg.Spawning.MinLiveBoxes != 10 || cfg.Spawning.BoxBatch != 3 {
		t.Errorf("box spawn rule = %d/%d, expected 10/3", cfg.Spawning.MinLiveBoxes, cfg.Spawning.BoxBatch)
	}
	if cfg.Spawning.HazardScore != 500 {
		t.Errorf("HazardScore = %d, expected 500", cfg.Spawning.HazardScore)
	}
	if cfg.Spawning.HazardChance != 0.015 {
		t.Errorf("HazardChance = %v, expected 0.015", cfg.Spawning.HazardChance)
	}
	if cfg.Spawning.CullMargin != 100 {
		t.Errorf("CullMargin = %v, expected 100", cfg.Spawning.CullMargin)
	}
	if cfg.Spawning.CollectiblesEnabled {
		t.Error("CollectiblesEnabled = true, collectibles ship disabled")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BouncerConfig
	if err := yaml.Unmarshal(defaultBouncerYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBouncerConfig() {
		t.Errorf("embedded default = %+v, out of sync with DefaultBouncerConfig", cfg)
	}
}

func TestLoadBouncerCustomPath(t *testing.T) {
	custom := `
world:
  width: 400
  height: 300
  ground_level: 250
  spawn_x: 50
  spawn_y: 150
physics:
  gravity: 1.2
  jump_power: -20
  horizontal_jump: 8
  friction: 0.9
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	cfg, err := LoadBouncer(path)
	if err != nil {
		t.Fatalf("LoadBouncer failed: %v", err)
	}
	if cfg.World.Width != 400 {
		t.Errorf("Width = %v, expected 400", cfg.World.Width)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
}

func TestLoadBouncerMissingCustomPath(t *testing.T) {
	_, err := LoadBouncer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestLoadBouncerInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [not a map"), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	if _, err := LoadBouncer(path); err == nil {
		t.Error("expected a parse error for invalid YAML")
	}
}
