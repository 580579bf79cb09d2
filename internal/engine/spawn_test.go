package engine

import (
	"testing"

	"github.com/vovakirdan/tui-bouncer/internal/config"
)

func TestBoxSpawnProgression(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	e := newPlayingEngine(t, 3)

	// The ball hovers so the session never ends while we watch the spawner
	// top the pool up batch by batch to the minimum, then stop.
	want := cfg.Spawning.BoxBatch
	for i := 0; i < 6; i++ {
		if e.liveBoxCount() != want {
			t.Fatalf("iteration %d: live boxes = %d, expected %d", i, e.liveBoxCount(), want)
		}
		e.ball.Y = cfg.World.SpawnY
		e.ball.VY = 0
		e.Tick()
		if want < cfg.Spawning.MinLiveBoxes {
			want += cfg.Spawning.BoxBatch
		}
	}
	if e.liveBoxCount() < cfg.Spawning.MinLiveBoxes {
		t.Errorf("live boxes = %d, expected at least %d", e.liveBoxCount(), cfg.Spawning.MinLiveBoxes)
	}
}

func TestSpawnBoxPlacement(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	e := newPlayingEngine(t, 3)
	e.boxes = e.boxes[:0]
	e.camera = 1000

	e.spawnBoxes()

	if len(e.boxes) != cfg.Spawning.BoxBatch {
		t.Fatalf("spawned %d boxes, expected %d", len(e.boxes), cfg.Spawning.BoxBatch)
	}
	ahead := e.camera + cfg.World.Width
	for i, b := range e.boxes {
		lo := ahead + float64(i)*cfg.Spawning.BoxSpacing
		hi := lo + cfg.Spawning.BoxJitter
		if b.X < lo || b.X > hi {
			t.Errorf("box %d at x=%v, expected within [%v, %v]", i, b.X, lo, hi)
		}
		top := cfg.World.GroundLevel - cfg.Spawning.BoxBandTop
		bottom := cfg.World.GroundLevel - cfg.Spawning.BoxBandBottom
		if b.Y < top || b.Y > bottom {
			t.Errorf("box %d at y=%v, expected within band [%v, %v]", i, b.Y, top, bottom)
		}
	}

	// Ids stay unique across bursts.
	seen := make(map[int]bool)
	e.spawnBoxes()
	for _, b := range e.boxes {
		if seen[b.ID] {
			t.Fatalf("duplicate box id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestMilestoneSpawnsBonusBox(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	e := newPlayingEngine(t, 3)

	// Crossing 100 and 150 both resolve to milestone 100; only the first
	// crossing spawns a box.
	e.score = 150
	e.checkMilestone()

	if e.lastMilestone != 100 {
		t.Fatalf("lastMilestone = %d, expected 100", e.lastMilestone)
	}
	var milestones []Box
	for _, b := range e.boxes {
		if b.Kind == BoxMilestone {
			milestones = append(milestones, b)
		}
	}
	if len(milestones) != 1 {
		t.Fatalf("milestone boxes = %d, expected 1", len(milestones))
	}
	mb := milestones[0]
	if mb.Points != cfg.Scoring.MilestoneBoxPoints {
		t.Errorf("milestone box points = %d, expected %d", mb.Points, cfg.Scoring.MilestoneBoxPoints)
	}
	if mb.X != e.camera+cfg.World.Width+milestoneBoxLead {
		t.Errorf("milestone box at x=%v, expected just past the viewport", mb.X)
	}
	if mb.Y != cfg.World.GroundLevel-cfg.Spawning.MilestoneBoxHeight {
		t.Errorf("milestone box at y=%v, expected near the ground", mb.Y)
	}

	// Same milestone again: no second box.
	e.checkMilestone()
	count := 0
	for _, b := range e.boxes {
		if b.Kind == BoxMilestone {
			count++
		}
	}
	if count != 1 {
		t.Errorf("milestone boxes after repeat check = %d, expected still 1", count)
	}

	// The next interval spawns the next one.
	e.score = 250
	e.checkMilestone()
	if e.lastMilestone != 200 {
		t.Errorf("lastMilestone = %d, expected 200", e.lastMilestone)
	}
}

func TestHazardsGatedByScore(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	e := newPlayingEngine(t, 9)

	// Below the threshold the roll never runs, whatever the rng says.
	for i := 0; i < 500; i++ {
		e.maybeSpawnHazard()
	}
	if len(e.hazards) != 0 {
		t.Fatalf("hazards = %d below the score threshold, expected 0", len(e.hazards))
	}

	e.score = cfg.Spawning.HazardScore
	for i := 0; i < 2000 && len(e.hazards) == 0; i++ {
		e.maybeSpawnHazard()
	}
	if len(e.hazards) == 0 {
		t.Fatal("no hazard spawned in 2000 rolls past the threshold")
	}

	h := e.hazards[0]
	if h.X < e.camera+cfg.World.Width {
		t.Errorf("hazard at x=%v, expected past the viewport edge", h.X)
	}
	top := cfg.World.GroundLevel - cfg.Spawning.HazardBandTop
	bottom := cfg.World.GroundLevel - cfg.Spawning.HazardBandBottom
	if h.Y < top || h.Y > bottom {
		t.Errorf("hazard at y=%v, expected within band [%v, %v]", h.Y, top, bottom)
	}
}

func TestCollectiblesDormantByDefault(t *testing.T) {
	e := newPlayingEngine(t, 5)

	for i := 0; i < 1000; i++ {
		e.maybeSpawnCollectible()
	}
	if len(e.collectibles) != 0 {
		t.Fatalf("collectibles = %d with the rule disabled, expected 0", len(e.collectibles))
	}
}

func TestCollectiblesWhenEnabled(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	cfg.Spawning.CollectiblesEnabled = true
	cfg.Spawning.CollectibleChance = 1.0

	e := New(cfg, 5)
	e.SetPlayerName("tester")
	e.Reset()

	e.maybeSpawnCollectible()
	if len(e.collectibles) != 1 {
		t.Fatalf("collectibles = %d, expected 1", len(e.collectibles))
	}

	// Collecting awards the configured points exactly once.
	c := &e.collectibles[0]
	c.X = e.ball.X
	c.Y = e.ball.Y
	e.resolveCollisions()

	if !c.Collected {
		t.Fatal("overlapping collectible was not collected")
	}
	if e.score != cfg.Scoring.CollectiblePoints {
		t.Errorf("score = %d, expected %d", e.score, cfg.Scoring.CollectiblePoints)
	}
	e.resolveCollisions()
	if e.score != cfg.Scoring.CollectiblePoints {
		t.Errorf("score = %d after re-check, collected item re-awarded points", e.score)
	}
}

func TestCullRemovesEntitiesBehindCamera(t *testing.T) {
	cfg := config.DefaultBouncerConfig()
	e := newPlayingEngine(t, 1)
	e.boxes = e.boxes[:0]
	e.camera = 1000
	limit := e.camera - cfg.Spawning.CullMargin

	e.boxes = append(e.boxes,
		Box{ID: e.allocID(), X: limit - 1, Y: 400},
		Box{ID: e.allocID(), X: limit, Y: 400},
		Box{ID: e.allocID(), X: limit + 1, Y: 400},
	)
	e.collectibles = append(e.collectibles,
		Collectible{ID: e.allocID(), X: limit - 50, Y: 400},
		Collectible{ID: e.allocID(), X: limit + 50, Y: 400},
	)
	e.hazards = append(e.hazards,
		Hazard{ID: e.allocID(), X: limit - 50, Y: 400},
		Hazard{ID: e.allocID(), X: limit + 50, Y: 400},
	)

	e.cull()

	if len(e.boxes) != 2 {
		t.Errorf("boxes = %d, expected 2 (exactly at the limit survives)", len(e.boxes))
	}
	for _, b := range e.boxes {
		if b.X < limit {
			t.Errorf("box at x=%v survived past the cull limit %v", b.X, limit)
		}
	}
	if len(e.collectibles) != 1 {
		t.Errorf("collectibles = %d, expected 1", len(e.collectibles))
	}
	if len(e.hazards) != 1 {
		t.Errorf("hazards = %d, expected 1", len(e.hazards))
	}
}
