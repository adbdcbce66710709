package game

import "fmt"

type DealResult struct {
	Round    int                 `json:"round"`
	Count    int                 `json:"count"`
	Revealed map[Player][]string `json:"revealed"`
}

func (r DealResult) String() string {
	return fmt.Sprintf("Round %d: %d couriers deployed for each player.", r.Round, r.Count)
}

// DealNextRound reveals the next batch of each player's deck. Once every
// round is dealt it returns ErrRoundsExhausted and changes nothing.
func (g *Game) DealNextRound() (DealResult, error) {
	if !g.started {
		return DealResult{}, ErrNotStarted
	}
	if g.round >= len(g.rules.DealRounds) {
		return DealResult{}, ErrRoundsExhausted
	}

	count := g.rules.DealRounds[g.round]
	res := DealResult{
		Round:    g.round + 1,
		Count:    count,
		Revealed: make(map[Player][]string, len(Players)),
	}

	for _, p := range Players {
		deck := g.decks[p]
		start := g.pointer[p]
		end := min(start+count, len(deck))

		ids := make([]string, 0, end-start)
		for _, id := range deck[start:end] {
			g.couriers[id].Dealt = true
			ids = append(ids, id)
		}

		res.Revealed[p] = ids
		g.pointer[p] = end
	}

	g.round++
	return res, nil
}

func (g *Game) RoundsRemaining() int {
	return len(g.rules.DealRounds) - g.round
}

// NextRoundSize is the batch size of the next deal, or 0 when none is left.
func (g *Game) NextRoundSize() int {
	if g.round >= len(g.rules.DealRounds) {
		return 0
	}
	return g.rules.DealRounds[g.round]
}
