package game

// Snapshot is a render-ready view. Undealt couriers are left out so the
// hidden pool stays hidden.
type Snapshot struct {
	Started       bool                 `json:"started"`
	Seed          uint64               `json:"-"` // replays every future draw, never sent to clients
	Round         int                  `json:"round"`
	Rounds        int                  `json:"rounds"`
	NextRoundSize int                  `json:"next_round_size"`
	DealPointer   map[Player]int       `json:"deal_pointer"`
	Terrains      []TerrainView        `json:"terrains"`
	Benches       map[Player][]Courier `json:"benches"`
}

type TerrainView struct {
	Terrain
	Lanes map[Player][]Courier `json:"lanes"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Started:       g.started,
		Seed:          g.dice.Seed(),
		Round:         g.round,
		Rounds:        len(g.rules.DealRounds),
		NextRoundSize: g.NextRoundSize(),
		DealPointer:   make(map[Player]int, len(Players)),
		Terrains:      make([]TerrainView, 0, len(g.order)),
		Benches:       make(map[Player][]Courier, len(Players)),
	}

	for _, p := range Players {
		s.DealPointer[p] = g.pointer[p]
		s.Benches[p] = g.Bench(p)
	}

	for _, t := range g.Terrains() {
		view := TerrainView{Terrain: t, Lanes: make(map[Player][]Courier, len(Players))}
		for _, p := range Players {
			view.Lanes[p] = g.Placed(t.ID, p)
		}
		s.Terrains = append(s.Terrains, view)
	}

	return s
}
