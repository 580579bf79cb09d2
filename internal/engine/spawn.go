package engine

// milestoneBoxLead is how far past the right viewport edge a milestone box
// appears, in world units.
const milestoneBoxLead = 50.0

// liveBoxCount returns the number of unbroken boxes.
func (e *Engine) liveBoxCount() int {
	n := 0
	for i := range e.boxes {
		if !e.boxes[i].Broken {
			n++
		}
	}
	return n
}

// spawnBoxes generates one burst of normal boxes ahead of the camera, spaced
// by the configured base distance plus a random jitter, with heights drawn
// from the spawn band above the ground.
func (e *Engine) spawnBoxes() {
	sp := e.cfg.Spawning
	ahead := e.camera + e.cfg.World.Width

	for i := 0; i < sp.BoxBatch; i++ {
		e.boxes = append(e.boxes, Box{
			ID:     e.allocID(),
			X:      ahead + float64(i)*sp.BoxSpacing + e.rng.Float64()*sp.BoxJitter,
			Y:      e.bandY(sp.BoxBandTop, sp.BoxBandBottom),
			Kind:   BoxNormal,
			Points: e.cfg.Scoring.BoxPoints,
		})
	}
}

// spawnMilestoneBox places a single bonus box just ahead of the viewport,
// close to the ground so it is hard to miss.
func (e *Engine) spawnMilestoneBox() {
	e.boxes = append(e.boxes, Box{
		ID:     e.allocID(),
		X:      e.camera + e.cfg.World.Width + milestoneBoxLead,
		Y:      e.cfg.World.GroundLevel - e.cfg.Spawning.MilestoneBoxHeight,
		Kind:   BoxMilestone,
		Points: e.cfg.Scoring.MilestoneBoxPoints,
	})
}

// maybeSpawnHazard rolls the per-tick hazard spawn once the score threshold
// has been reached. Below the threshold no hazard ever exists.
func (e *Engine) maybeSpawnHazard() {
	sp := e.cfg.Spawning
	if e.score < sp.HazardScore {
		return
	}
	if e.rng.Float64() >= sp.HazardChance {
		return
	}

	e.hazards = append(e.hazards, Hazard{
		ID: e.allocID(),
		X:  e.camera + e.cfg.World.Width + e.rng.Float64()*sp.HazardJitter,
		Y:  e.bandY(sp.HazardBandTop, sp.HazardBandBottom),
	})
}

// maybeSpawnCollectible rolls the per-tick collectible spawn. The rule ships
// disabled and only runs when enabled in the config; do not remove it, the
// balance may re-enable it.
func (e *Engine) maybeSpawnCollectible() {
	sp := e.cfg.Spawning
	if !sp.CollectiblesEnabled {
		return
	}
	if e.rng.Float64() >= sp.CollectibleChance {
		return
	}

	e.collectibles = append(e.collectibles, Collectible{
		ID: e.allocID(),
		X:  e.camera + e.cfg.World.Width + e.rng.Float64()*sp.HazardJitter,
		Y:  e.bandY(sp.BoxBandTop, sp.BoxBandBottom),
	})
}

// bandY picks a random y within a band above the ground. The band is given
// as heights above ground level, top > bottom.
func (e *Engine) bandY(top, bottom float64) float64 {
	height := bottom + e.rng.Float64()*(top-bottom)
	return e.cfg.World.GroundLevel - height
}

// cull compacts the entity slices in place, removing everything that has
// scrolled more than the cull margin behind the camera. Entity order is
// preserved.
func (e *Engine) cull() {
	limit := e.camera - e.cfg.Spawning.CullMargin

	boxes := e.boxes[:0]
	for _, b := range e.boxes {
		if b.X >= limit {
			boxes = append(boxes, b)
		}
	}
	e.boxes = boxes

	collectibles := e.collectibles[:0]
	for _, c := range e.collectibles {
		if c.X >= limit {
			collectibles = append(collectibles, c)
		}
	}
	e.collectibles = collectibles

	hazards := e.hazards[:0]
	for _, h := range e.hazards {
		if h.X >= limit {
			hazards = append(hazards, h)
		}
	}
	e.hazards = hazards
}
