package game

import (
	"fmt"

	"github.com/google/uuid"
)

type Player string

const (
	PlayerA Player = "A"
	PlayerB Player = "B"
)

// Players in seat order.
var Players = []Player{PlayerA, PlayerB}

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	return "Player " + string(p)
}

type Assignment struct {
	TerrainID string `json:"terrain_id"`
	Player    Player `json:"player"`
	BaseRoll  int    `json:"base_roll"`
	Bonus     int    `json:"bonus"`
	Value     int    `json:"value"`
}

type Courier struct {
	ID              string      `json:"id"`
	Player          Player      `json:"player"`
	Rarity          Rarity      `json:"rarity"`
	Label           string      `json:"label"`
	MinRange        int         `json:"min_range"`
	MaxRange        int         `json:"max_range"`
	Preference      string      `json:"preference,omitempty"` // terrain name, legendary only
	PreferenceBonus int         `json:"preference_bonus"`
	Dealt           bool        `json:"dealt"`
	Assignment      *Assignment `json:"assignment,omitempty"`
}

// Delivery describes the last assignment the way a card face shows it.
func (c *Courier) Delivery() string {
	a := c.Assignment
	if a == nil {
		return "Awaiting assignment"
	}
	if a.Bonus != 0 {
		return fmt.Sprintf("Delivered %d (roll %d + bonus %d)", a.Value, a.BaseRoll, a.Bonus)
	}
	return fmt.Sprintf("Delivered %d (roll %d)", a.Value, a.BaseRoll)
}

// CreateCourier draws a fresh card for player. It never fails; a broken
// rules table is caught by Rules.Validate before a game is built.
func CreateCourier(rules Rules, dice *Dice, player Player) Courier {
	rule := pickRarity(rules.Rarities, dice.Float64())

	lo := dice.IntBetween(rule.BaseMin.Min, rule.BaseMin.Max)
	hi := lo + dice.IntBetween(rule.Spread.Min, rule.Spread.Max)

	c := Courier{
		ID:       newCourierID(dice, player),
		Player:   player,
		Rarity:   rule.Rarity,
		Label:    rule.Label,
		MinRange: lo,
		MaxRange: hi,
	}

	if rule.Rarity == rules.PreferredRarity && len(rules.Terrains) > 0 {
		c.Preference = rules.Terrains[dice.IntBetween(0, len(rules.Terrains)-1)].Name
		c.PreferenceBonus = rule.PreferenceBonus
	}

	return c
}

// pickRarity does a cumulative-threshold draw of roll in [0, 1) over the
// normalised weights. Float rounding can leave the draw unmatched; the last
// drawable rule catches it.
func pickRarity(rules []RarityRule, roll float64) RarityRule {
	total := 0.0
	for _, r := range rules {
		total += r.Weight
	}

	cumulative := 0.0
	for _, r := range rules {
		cumulative += r.Weight / total
		if roll < cumulative {
			return r
		}
	}

	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].Weight > 0 {
			return rules[i]
		}
	}
	return rules[0]
}

func newCourierID(dice *Dice, player Player) string {
	id, err := uuid.NewRandomFromReader(dice)
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s-%s", string(player), id)
}
