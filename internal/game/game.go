package game

import (
	"fmt"
)

// Game is the whole mutable state of one match. It is not safe for
// concurrent use: a single owner applies events in arrival order.
type Game struct {
	rules Rules
	dice  *Dice

	started  bool
	terrains map[string]*Terrain
	order    []string // terrain ids in rules order
	couriers map[string]*Courier
	decks    map[Player][]string
	pointer  map[Player]int
	round    int
}

func New(rules Rules, dice *Dice) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if dice == nil {
		dice = NewDice(0)
	}

	return &Game{rules: rules, dice: dice}, nil
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Seed() uint64 {
	return g.dice.Seed()
}

func (g *Game) Started() bool {
	return g.started
}

// Start builds fresh terrains and decks. Calling it on a running game is a reset.
func (g *Game) Start() {
	g.terrains = make(map[string]*Terrain, len(g.rules.Terrains))
	g.order = make([]string, 0, len(g.rules.Terrains))
	g.couriers = make(map[string]*Courier, g.rules.DeckSize*len(Players))
	g.decks = make(map[Player][]string, len(Players))
	g.pointer = make(map[Player]int, len(Players))
	g.round = 0

	for _, cfg := range g.rules.Terrains {
		g.terrains[cfg.ID] = newTerrain(cfg, g.dice, g.rules.TargetJitter)
		g.order = append(g.order, cfg.ID)
	}

	for _, p := range Players {
		g.buildDeck(p)
	}

	g.started = true
}

// Reset discards every assignment, target and deck and deals a new match.
func (g *Game) Reset() {
	g.Start()
}

func (g *Game) buildDeck(player Player) {
	deck := make([]string, 0, g.rules.DeckSize)
	for i := 0; i < g.rules.DeckSize; i++ {
		c := CreateCourier(g.rules, g.dice, player)
		g.couriers[c.ID] = &c
		deck = append(deck, c.ID)
	}
	g.decks[player] = deck
}

// Terrains returns copies in rules order.
func (g *Game) Terrains() []Terrain {
	out := make([]Terrain, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.terrains[id].clone())
	}
	return out
}

func (g *Game) Terrain(id string) (Terrain, bool) {
	t, ok := g.terrains[id]
	if !ok {
		return Terrain{}, false
	}
	return t.clone(), true
}

func (g *Game) Courier(id string) (Courier, bool) {
	c, ok := g.couriers[id]
	if !ok {
		return Courier{}, false
	}
	return c.clone(), true
}

// Deck returns the player's courier ids in deal order, dealt or not.
func (g *Game) Deck(player Player) []string {
	return append([]string(nil), g.decks[player]...)
}

// Bench lists the player's dealt couriers that are not placed on a terrain.
func (g *Game) Bench(player Player) []Courier {
	var out []Courier
	for _, id := range g.decks[player][:g.pointer[player]] {
		c := g.couriers[id]
		if c.Assignment == nil {
			out = append(out, c.clone())
		}
	}
	return out
}

// Placed lists the player's couriers currently assigned to terrainID.
func (g *Game) Placed(terrainID string, player Player) []Courier {
	var out []Courier
	for _, id := range g.decks[player] {
		c := g.couriers[id]
		if c.Assignment != nil && c.Assignment.TerrainID == terrainID {
			out = append(out, c.clone())
		}
	}
	return out
}

func (g *Game) DealPointer(player Player) int {
	return g.pointer[player]
}

// Round is the number of rounds dealt so far.
func (g *Game) Round() int {
	return g.round
}

func (c *Courier) clone() Courier {
	out := *c
	if c.Assignment != nil {
		a := *c.Assignment
		out.Assignment = &a
	}
	return out
}
