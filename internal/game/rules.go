package game

import (
	"errors"
	"fmt"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

type TerrainConfig struct {
	ID         string
	Name       string
	BaseTarget int
}

type RarityRule struct {
	Rarity          Rarity
	Label           string
	BaseMin         Range
	Spread          Range
	PreferenceBonus int
	Weight          float64
}

// Rules holds every tunable constant of a match.
type Rules struct {
	Terrains     []TerrainConfig
	Rarities     []RarityRule // order matters for the weighted draw; first entry is the fallback
	DeckSize     int
	DealRounds   []int
	TargetJitter int
	// Only couriers of this rarity get a preferred terrain and a bonus.
	PreferredRarity Rarity
}

func DefaultRules() Rules {
	return Rules{
		Terrains: []TerrainConfig{
			{ID: "city", Name: "City", BaseTarget: 100},
			{ID: "town", Name: "Town", BaseTarget: 70},
			{ID: "village", Name: "Village", BaseTarget: 50},
		},
		Rarities: []RarityRule{
			{Rarity: RarityCommon, Label: "Common", BaseMin: Range{6, 10}, Spread: Range{3, 6}, Weight: 0.45},
			{Rarity: RarityRare, Label: "Rare", BaseMin: Range{9, 12}, Spread: Range{4, 7}, Weight: 0.35},
			{Rarity: RarityLegendary, Label: "Legendary", BaseMin: Range{11, 14}, Spread: Range{5, 8}, PreferenceBonus: 6, Weight: 0.20},
		},
		DeckSize:        10,
		DealRounds:      []int{3, 3, 4},
		TargetJitter:    10,
		PreferredRarity: RarityLegendary,
	}
}

func (r Rules) Rule(rarity Rarity) (RarityRule, bool) {
	for _, rule := range r.Rarities {
		if rule.Rarity == rarity {
			return rule, true
		}
	}
	return RarityRule{}, false
}

// WinThreshold is the number of terrain wins that takes the match.
func (r Rules) WinThreshold() int {
	return len(r.Terrains)/2 + 1
}

func (r Rules) Validate() error {
	var errs []error

	if len(r.Terrains) == 0 {
		errs = append(errs, errors.New("at least one terrain is required"))
	}
	seen := make(map[string]bool, len(r.Terrains))
	for _, t := range r.Terrains {
		if t.ID == "" || t.Name == "" {
			errs = append(errs, fmt.Errorf("terrain %q: id and name are required", t.ID))
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("terrain %q: duplicate id", t.ID))
		}
		seen[t.ID] = true
	}

	if len(r.Rarities) == 0 {
		errs = append(errs, errors.New("at least one rarity is required"))
	}
	total := 0.0
	preferredFound := false
	for _, rule := range r.Rarities {
		if rule.Rarity == r.PreferredRarity {
			preferredFound = true
		} else if rule.PreferenceBonus != 0 {
			errs = append(errs, fmt.Errorf("rarity %q: preference_bonus is only used by the preferred rarity %q", rule.Rarity, r.PreferredRarity))
		}
		if rule.BaseMin.Min > rule.BaseMin.Max {
			errs = append(errs, fmt.Errorf("rarity %q: base_min %d > %d", rule.Rarity, rule.BaseMin.Min, rule.BaseMin.Max))
		}
		if rule.Spread.Min < 0 || rule.Spread.Min > rule.Spread.Max {
			errs = append(errs, fmt.Errorf("rarity %q: invalid spread [%d, %d]", rule.Rarity, rule.Spread.Min, rule.Spread.Max))
		}
		if rule.Weight < 0 {
			errs = append(errs, fmt.Errorf("rarity %q: negative weight", rule.Rarity))
		}
		total += rule.Weight
	}
	if r.PreferredRarity != "" && !preferredFound {
		errs = append(errs, fmt.Errorf("preferred rarity %q is not in the rarity table", r.PreferredRarity))
	}
	if len(r.Rarities) > 0 && total <= 0 {
		errs = append(errs, errors.New("rarity weights must sum above zero"))
	}

	if r.DeckSize <= 0 {
		errs = append(errs, fmt.Errorf("deck size must be positive, got %d", r.DeckSize))
	}
	if len(r.DealRounds) == 0 {
		errs = append(errs, errors.New("at least one deal round is required"))
	}
	for i, n := range r.DealRounds {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("deal round %d: size must be positive, got %d", i+1, n))
		}
	}
	if r.TargetJitter < 0 {
		errs = append(errs, fmt.Errorf("target jitter must not be negative, got %d", r.TargetJitter))
	}

	return errors.Join(errs...)
}
