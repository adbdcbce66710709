package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignValueWithinBounds(t *testing.T) {
	g := newTestGame(t, 11)
	dealAll(t, g)

	for _, p := range Players {
		for _, c := range g.Bench(p) {
			for _, tr := range g.Terrains() {
				for i := 0; i < 50; i++ {
					a, err := g.Assign(c.ID, tr.ID, p)
					require.NoError(t, err)

					wantBonus := 0
					if c.Preference == tr.Name {
						wantBonus = c.PreferenceBonus
					}
					assert.Equal(t, wantBonus, a.Bonus)
					assert.GreaterOrEqual(t, a.BaseRoll, c.MinRange)
					assert.LessOrEqual(t, a.BaseRoll, c.MaxRange)
					assert.Equal(t, a.BaseRoll+a.Bonus, a.Value)
					assert.Equal(t, tr.ID, a.TerrainID)
					assert.Equal(t, p, a.Player)
				}
			}
		}
	}
}

func TestReassignRerolls(t *testing.T) {
	g := newTestGame(t, 12)
	dealAll(t, g)

	c := g.Bench(PlayerA)[0]
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		a, err := g.Assign(c.ID, "village", PlayerA)
		require.NoError(t, err)
		seen[a.Value] = true

		got, _ := g.Courier(c.ID)
		assert.Equal(t, a, *got.Assignment)
	}

	assert.Greater(t, len(seen), 1, "re-assigning never changed the delivered value")
}

func TestReassignMovesCourier(t *testing.T) {
	g := newTestGame(t, 13)
	dealAll(t, g)

	c := g.Bench(PlayerB)[0]
	_, err := g.Assign(c.ID, "city", PlayerB)
	require.NoError(t, err)
	a, err := g.Assign(c.ID, "town", PlayerB)
	require.NoError(t, err)

	city, _ := g.Terrain("city")
	town, _ := g.Terrain("town")
	assert.Zero(t, city.Total(PlayerB))
	assert.Equal(t, a.Value, town.Total(PlayerB))
	assert.Empty(t, g.Placed("city", PlayerB))
	assert.Len(t, g.Placed("town", PlayerB), 1)
	assert.Len(t, g.Bench(PlayerB), 9)
}

func TestTotalsMatchRecomputation(t *testing.T) {
	g := newTestGame(t, 21)
	dealAll(t, g)
	dice := NewDice(22)

	terrains := g.Terrains()
	var ids []string
	for _, p := range Players {
		ids = append(ids, g.Deck(p)...)
	}

	for step := 0; step < 500; step++ {
		id := ids[dice.IntBetween(0, len(ids)-1)]
		c, _ := g.Courier(id)

		if dice.Float64() < 0.3 {
			require.NoError(t, g.Unassign(id))
		} else {
			tr := terrains[dice.IntBetween(0, len(terrains)-1)]
			_, err := g.Assign(id, tr.ID, c.Player)
			require.NoError(t, err)
		}

		want := map[string]map[Player]int{}
		for _, tr := range terrains {
			want[tr.ID] = map[Player]int{PlayerA: 0, PlayerB: 0}
		}
		for _, cid := range ids {
			cc, _ := g.Courier(cid)
			if cc.Assignment != nil {
				want[cc.Assignment.TerrainID][cc.Assignment.Player] += cc.Assignment.Value
			}
		}

		for _, tr := range g.Terrains() {
			assert.Equal(t, want[tr.ID], tr.Totals, "step %d terrain %s", step, tr.ID)
		}
	}
}

func TestUnassign(t *testing.T) {
	g := newTestGame(t, 31)
	dealAll(t, g)

	c := g.Bench(PlayerA)[0]
	_, err := g.Assign(c.ID, "city", PlayerA)
	require.NoError(t, err)

	require.NoError(t, g.Unassign(c.ID))
	got, _ := g.Courier(c.ID)
	assert.Nil(t, got.Assignment)
	assert.Equal(t, "Awaiting assignment", got.Delivery())

	city, _ := g.Terrain("city")
	assert.Zero(t, city.Total(PlayerA))

	// already benched
	require.NoError(t, g.Unassign(c.ID))
	assert.ErrorIs(t, g.Unassign("nope"), ErrUnknownEntity)
}

func TestAssignRejectsWithoutMutation(t *testing.T) {
	g := newTestGame(t, 41)
	_, err := g.DealNextRound()
	require.NoError(t, err)

	dealtA := g.Bench(PlayerA)[0]
	undealtA := g.Deck(PlayerA)[9]

	_, err = g.Assign(dealtA.ID, "city", PlayerA)
	require.NoError(t, err)
	before := g.Snapshot()

	cases := []struct {
		name      string
		courierID string
		terrainID string
		player    Player
		want      error
	}{
		{"unknown courier", "A-missing", "city", PlayerA, ErrUnknownEntity},
		{"unknown terrain", dealtA.ID, "moon", PlayerA, ErrUnknownEntity},
		{"wrong player", dealtA.ID, "town", PlayerB, ErrInvalidAssignment},
		{"bogus player", dealtA.ID, "town", Player("C"), ErrInvalidAssignment},
		{"not dealt", undealtA, "town", PlayerA, ErrInvalidAssignment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Assign(tc.courierID, tc.terrainID, tc.player)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestDeliveryText(t *testing.T) {
	c := Courier{Assignment: &Assignment{BaseRoll: 12, Bonus: 6, Value: 18}}
	assert.Equal(t, "Delivered 18 (roll 12 + bonus 6)", c.Delivery())

	c.Assignment = &Assignment{BaseRoll: 9, Value: 9}
	assert.Equal(t, "Delivered 9 (roll 9)", c.Delivery())
}
