package game

type Terrain struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Target int            `json:"target"`
	Totals map[Player]int `json:"totals"`
}

func newTerrain(cfg TerrainConfig, dice *Dice, jitter int) *Terrain {
	return &Terrain{
		ID:     cfg.ID,
		Name:   cfg.Name,
		Target: cfg.BaseTarget + dice.IntBetween(-jitter, jitter),
		Totals: map[Player]int{PlayerA: 0, PlayerB: 0},
	}
}

func (t *Terrain) Total(p Player) int {
	return t.Totals[p]
}

func (t *Terrain) clone() Terrain {
	out := *t
	out.Totals = make(map[Player]int, len(t.Totals))
	for p, v := range t.Totals {
		out.Totals[p] = v
	}
	return out
}
