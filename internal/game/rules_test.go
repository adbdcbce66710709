package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules()

	assert.NoError(t, rules.Validate())
	assert.Equal(t, 2, rules.WinThreshold())

	sum := 0
	for _, n := range rules.DealRounds {
		sum += n
	}
	assert.Equal(t, rules.DeckSize, sum)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(r *Rules){
		"no terrains":       func(r *Rules) { r.Terrains = nil },
		"duplicate terrain": func(r *Rules) { r.Terrains = append(r.Terrains, r.Terrains[0]) },
		"no rarities":       func(r *Rules) { r.Rarities = nil },
		"inverted base min": func(r *Rules) { r.Rarities[0].BaseMin = Range{Min: 10, Max: 6} },
		"negative spread":   func(r *Rules) { r.Rarities[1].Spread = Range{Min: -1, Max: 2} },
		"negative weight":   func(r *Rules) { r.Rarities[2].Weight = -0.2 },
		"zero weights": func(r *Rules) {
			for i := range r.Rarities {
				r.Rarities[i].Weight = 0
			}
		},
		"zero deck":         func(r *Rules) { r.DeckSize = 0 },
		"no rounds":         func(r *Rules) { r.DealRounds = nil },
		"empty round":       func(r *Rules) { r.DealRounds = []int{3, 0} },
		"negative jitter":   func(r *Rules) { r.TargetJitter = -1 },
		"unknown preferred": func(r *Rules) { r.PreferredRarity = "mythic" },
		"stray bonus":       func(r *Rules) { r.Rarities[0].PreferenceBonus = 9 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rules := DefaultRules()
			mutate(&rules)
			assert.Error(t, rules.Validate())
		})
	}
}
