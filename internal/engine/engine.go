// Package engine implements the bouncer simulation: ball kinematics, camera
// scroll, procedural spawning, collision detection, scoring and milestone
// progression. The engine is pure state transformation with no I/O; it is
// single-writer and advances one fixed tick at a time. Rendering, input
// capture, audio and persistence live in collaborator packages that only
// ever see snapshots and events.
package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
)

// Phase is the top-level game mode.
type Phase int

const (
	PhaseNameEntry Phase = iota
	PhaseMenu
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNameEntry:
		return "NameEntry"
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Direction is the horizontal hint attached to a jump command.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Result is returned by Tick: the post-tick snapshot plus every event that
// occurred since the previous tick (including jumps taken between ticks).
type Result struct {
	Snapshot Snapshot
	Events   []Event
}

// Engine owns all mutable game state. It is not safe for concurrent use;
// the platform drives it from a single goroutine.
type Engine struct {
	cfg config.BouncerConfig
	rng *rand.Rand

	phase         Phase
	ball          Ball
	boxes         []Box
	collectibles  []Collectible
	hazards       []Hazard
	camera        float64
	score         int
	lastMilestone int
	playerName    string

	tick    uint64
	nextID  int
	pending []Event
}

// New creates an engine in the NameEntry phase. Hosts that already know the
// player (a stored profile) call SetPlayerName immediately to reach the menu.
func New(cfg config.BouncerConfig, seed int64) *Engine {
	return &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhaseNameEntry,
	}
}

// Phase returns the current game phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current session score.
func (e *Engine) Score() int {
	return e.score
}

// PlayerName returns the accepted player name, empty before name entry.
func (e *Engine) PlayerName() string {
	return e.playerName
}

// SetPlayerName records the player name and, from the NameEntry phase,
// advances to the menu. Validation (minimum length) is the caller's job.
func (e *Engine) SetPlayerName(name string) {
	e.playerName = name
	if e.phase == PhaseNameEntry {
		e.phase = PhaseMenu
	}
}

// Reset starts a new session: all entities cleared, ball at the spawn point
// with zero velocity, camera, score and milestone tracking zeroed, phase set
// to Playing, followed by one initial burst of normal boxes.
//
// Reset is only honored from the Menu or GameOver phase. Calling it while
// Playing (or before a name is set) is ignored.
func (e *Engine) Reset() {
	if e.phase != PhaseMenu && e.phase != PhaseGameOver {
		return
	}

	e.ball = Ball{X: e.cfg.World.SpawnX, Y: e.cfg.World.SpawnY}
	e.boxes = e.boxes[:0]
	e.collectibles = e.collectibles[:0]
	e.hazards = e.hazards[:0]
	e.camera = 0
	e.score = 0
	e.lastMilestone = 0
	e.tick = 0
	e.pending = e.pending[:0]
	e.phase = PhasePlaying

	e.spawnBoxes()
}

// Dismiss leaves the game-over screen and returns to the menu.
// No-op in any other phase.
func (e *Engine) Dismiss() {
	if e.phase == PhaseGameOver {
		e.phase = PhaseMenu
	}
}

// Jump applies a jump impulse: vertical velocity set to the jump power and,
// for a directed jump, horizontal velocity set toward that side. Silent
// no-op outside the Playing phase.
func (e *Engine) Jump(dir Direction) {
	if e.phase != PhasePlaying {
		return
	}

	e.ball.VY = e.cfg.Physics.JumpPower
	switch dir {
	case DirLeft:
		e.ball.VX = -e.cfg.Physics.HorizontalJump
	case DirRight:
		e.ball.VX = e.cfg.Physics.HorizontalJump
	}

	e.emit(Event{Kind: EventBallJumped})
	e.emit(Event{Kind: EventRotateBall})
}

// Tick advances the simulation by one fixed step and returns the post-tick
// snapshot together with all events since the previous tick. Outside the
// Playing phase the state is left untouched.
func (e *Engine) Tick() Result {
	if e.phase != PhasePlaying {
		return e.finishTick()
	}

	e.tick++

	// Kinematics: gravity, integration, then horizontal damping.
	e.ball.VY += e.cfg.Physics.Gravity
	e.ball.X += e.ball.VX
	e.ball.Y += e.ball.VY
	e.ball.VX *= e.cfg.Physics.Friction

	// Ground contact ends the session immediately; nothing else runs this tick.
	if e.ball.Y >= e.cfg.World.GroundLevel {
		e.gameOver()
		return e.finishTick()
	}

	// Camera follows once the ball crosses the right half of the viewport.
	// It never moves backward.
	if e.ball.X > e.camera+e.cfg.World.Width/2 {
		e.camera = e.ball.X - e.cfg.World.Width/2
	}

	if e.liveBoxCount() < e.cfg.Spawning.MinLiveBoxes {
		e.spawnBoxes()
	}
	e.maybeSpawnHazard()
	e.maybeSpawnCollectible()

	e.cull()
	e.checkMilestone()
	e.resolveCollisions()

	return e.finishTick()
}

// finishTick builds the tick result and drains pending events.
func (e *Engine) finishTick() Result {
	events := e.pending
	e.pending = nil
	return Result{Snapshot: e.Snapshot(), Events: events}
}

// emit queues an event for delivery with the next tick result.
func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// gameOver transitions Playing -> GameOver and emits the GameOver event.
// Only reachable from the Playing phase, so the event fires exactly once
// per session.
func (e *Engine) gameOver() {
	e.phase = PhaseGameOver
	e.emit(Event{Kind: EventGameOver, FinalScore: e.score})
}

// checkMilestone rewards every crossed multiple of the milestone interval
// with one bonus box placed just ahead of the viewport, near the ground.
func (e *Engine) checkMilestone() {
	interval := e.cfg.Scoring.MilestoneInterval
	if interval <= 0 {
		return
	}
	m := (e.score / interval) * interval
	if m > e.lastMilestone && m > 0 {
		e.lastMilestone = m
		e.spawnMilestoneBox()
	}
}

// resolveCollisions tests the ball against every live entity, in spawn
// order: boxes, collectibles, then hazards. Entities with a terminal flag
// set are inert. A hazard hit ends the tick immediately.
func (e *Engine) resolveCollisions() {
	ballRect := core.RectAround(e.ball.X, e.ball.Y, e.cfg.Entities.BallSize)

	for i := range e.boxes {
		b := &e.boxes[i]
		if b.Broken {
			continue
		}
		if ballRect.Intersects(core.RectAround(b.X, b.Y, e.cfg.Entities.BoxSize)) {
			b.Broken = true
			e.score += b.Points
			e.emit(Event{Kind: EventItemCollected, Points: b.Points})
		}
	}

	for i := range e.collectibles {
		c := &e.collectibles[i]
		if c.Collected {
			continue
		}
		if ballRect.Intersects(core.RectAround(c.X, c.Y, e.cfg.Entities.CollectibleSize)) {
			c.Collected = true
			e.score += e.cfg.Scoring.CollectiblePoints
			e.emit(Event{Kind: EventItemCollected, Points: e.cfg.Scoring.CollectiblePoints})
		}
	}

	for i := range e.hazards {
		h := &e.hazards[i]
		if h.Hit {
			continue
		}
		if ballRect.Intersects(core.RectAround(h.X, h.Y, e.cfg.Entities.HazardSize)) {
			h.Hit = true
			e.gameOver()
			return
		}
	}
}

// allocID returns the next entity id. Ids are unique among live entities;
// a plain counter satisfies that contract.
func (e *Engine) allocID() int {
	e.nextID++
	return e.nextID
}
