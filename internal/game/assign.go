package game

import "fmt"

// Assign places a dealt courier on its owner's lane of a terrain with a fresh
// roll. Re-assigning replaces the previous placement and rolls again.
func (g *Game) Assign(courierID, terrainID string, player Player) (Assignment, error) {
	if !g.started {
		return Assignment{}, ErrNotStarted
	}

	c, ok := g.couriers[courierID]
	if !ok {
		return Assignment{}, fmt.Errorf("courier %q: %w", courierID, ErrUnknownEntity)
	}
	t, ok := g.terrains[terrainID]
	if !ok {
		return Assignment{}, fmt.Errorf("terrain %q: %w", terrainID, ErrUnknownEntity)
	}
	if c.Player != player {
		return Assignment{}, fmt.Errorf("courier %q belongs to %s, not %s: %w", courierID, c.Player, player, ErrInvalidAssignment)
	}
	if !c.Dealt {
		return Assignment{}, fmt.Errorf("courier %q has not been dealt: %w", courierID, ErrInvalidAssignment)
	}

	roll := g.dice.IntBetween(c.MinRange, c.MaxRange)
	bonus := 0
	if c.Preference != "" && c.Preference == t.Name {
		bonus = c.PreferenceBonus
	}

	a := Assignment{
		TerrainID: terrainID,
		Player:    player,
		BaseRoll:  roll,
		Bonus:     bonus,
		Value:     roll + bonus,
	}
	c.Assignment = &a

	g.recomputeTotals()
	return a, nil
}

// Unassign sends a courier back to its bench. It is a no-op for a courier
// that is already on the bench.
func (g *Game) Unassign(courierID string) error {
	if !g.started {
		return ErrNotStarted
	}

	c, ok := g.couriers[courierID]
	if !ok {
		return fmt.Errorf("courier %q: %w", courierID, ErrUnknownEntity)
	}

	c.Assignment = nil
	g.recomputeTotals()
	return nil
}

// recomputeTotals rebuilds every lane total from the current assignments.
func (g *Game) recomputeTotals() {
	for _, t := range g.terrains {
		for _, p := range Players {
			t.Totals[p] = 0
		}
	}

	for _, c := range g.couriers {
		if c.Assignment == nil {
			continue
		}
		t, ok := g.terrains[c.Assignment.TerrainID]
		if !ok {
			continue
		}
		t.Totals[c.Assignment.Player] += c.Assignment.Value
	}
}
