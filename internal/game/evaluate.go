package game

type Verdict string

const (
	VerdictPlayerA Verdict = "Player A"
	VerdictPlayerB Verdict = "Player B"
	VerdictTie     Verdict = "Tie"
	VerdictDraw    Verdict = "Draw"
)

func verdictFor(p Player) Verdict {
	return Verdict(p.String())
}

type TerrainResult struct {
	TerrainID string  `json:"terrain_id"`
	Name      string  `json:"name"`
	Target    int     `json:"target"`
	TotalA    int     `json:"total_a"`
	TotalB    int     `json:"total_b"`
	DiffA     int     `json:"diff_a"`
	DiffB     int     `json:"diff_b"`
	Winner    Verdict `json:"winner"`
}

type Outcome struct {
	Terrains []TerrainResult `json:"terrains"`
	WinsA    int             `json:"wins_a"`
	WinsB    int             `json:"wins_b"`
	Winner   Verdict         `json:"winner"`
}

// Evaluate scores the current totals. It reads state only, so it can be
// called any number of times.
func (g *Game) Evaluate() Outcome {
	out := Outcome{Terrains: make([]TerrainResult, 0, len(g.order)), Winner: VerdictDraw}

	for _, id := range g.order {
		t := g.terrains[id]
		res := ScoreTerrain(t.Target, t.Totals[PlayerA], t.Totals[PlayerB])
		res.TerrainID = t.ID
		res.Name = t.Name

		switch res.Winner {
		case VerdictPlayerA:
			out.WinsA++
		case VerdictPlayerB:
			out.WinsB++
		}
		out.Terrains = append(out.Terrains, res)
	}

	need := g.rules.WinThreshold()
	switch {
	case out.WinsA >= need:
		out.Winner = VerdictPlayerA
	case out.WinsB >= need:
		out.Winner = VerdictPlayerB
	}

	return out
}

// ScoreTerrain decides one lane: the total closest to target wins, equal
// distances tie.
func ScoreTerrain(target, totalA, totalB int) TerrainResult {
	res := TerrainResult{
		Target: target,
		TotalA: totalA,
		TotalB: totalB,
		DiffA:  abs(totalA - target),
		DiffB:  abs(totalB - target),
		Winner: VerdictTie,
	}

	if res.DiffA < res.DiffB {
		res.Winner = verdictFor(PlayerA)
	} else if res.DiffB < res.DiffA {
		res.Winner = verdictFor(PlayerB)
	}

	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Headline is the one-line match result.
func (o Outcome) Headline() string {
	if o.Winner == VerdictDraw {
		return "Draw!"
	}
	return string(o.Winner) + " conquers CourierVerse!"
}
