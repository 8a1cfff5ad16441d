package game

// Pick returns the index of the catalog entry whose cumulative weight band
// contains draw, or -1 when draw is past the last band.
func (c Config) Pick(draw float64) int {
	cum := 0.0
	for i, e := range c.Item.Items {
		cum += e.SpawnChance
		if draw < cum {
			return i
		}
	}
	return -1
}

// spawnItems accumulates time and spawns at most one item per interval. Any
// time past the interval is dropped.
func (g *Game) spawnItems(dt float64) {
	g.spawnTimer += dt

	rate := g.speed * g.Config.Item.SpawnIntervalFactor
	if !(rate > 0) {
		return
	}
	if g.spawnTimer <= 1/rate {
		return
	}
	g.spawnTimer = 0

	g.spawn(g.rng.Float64() * 100)
}

// spawn instantiates the entry chosen by draw just above the top edge.
func (g *Game) spawn(draw float64) *FallingEntity {
	idx := g.Config.Pick(draw)
	if idx < 0 {
		return nil
	}
	entry := g.Config.Item.Items[idx]
	w, h := g.Config.EntrySize(entry)

	maxX := g.viewport.Width - w
	if maxX < 0 {
		maxX = 0
	}

	it := g.Items.Acquire()
	it.X = g.rng.Float64() * maxX
	it.Y = -h
	it.Width = w
	it.Height = h
	it.Category = entry.Type
	it.Value = entry.Value
	it.Speed = entry.Speed
	it.Penalty = entry.Deduct
	it.Image = entry.Image
	it.Kind = idx
	return it
}
