package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "COURIERVERSE_SEED", "COURIERVERSE_RULES", "COURIERVERSE_DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.RulesFile)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COURIERVERSE_SEED", "1234")
	t.Setenv("COURIERVERSE_RULES", "/tmp/rules.yaml")
	t.Setenv("COURIERVERSE_DEBUG", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "/tmp/rules.yaml", cfg.RulesFile)
	assert.True(t, cfg.Debug)
}

func TestFromEnvBadSeed(t *testing.T) {
	t.Setenv("COURIERVERSE_SEED", "lots")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "parse env:")
}

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultRules(), rules)

	rules, err = ParseRules(nil)
	require.NoError(t, err)
	assert.Equal(t, game.DefaultRules(), rules)
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := `
deck_size: 6
deal_rounds: [2, 2, 2]
target_jitter: 0
terrains:
  - id: harbor
    name: Harbor
    base_target: 40
  - id: desert
    name: Desert
    base_target: 60
rarities:
  - key: common
    label: Common
    base_min: [1, 2]
    spread: [0, 1]
    weight: 3
  - key: legendary
    base_min: [5, 5]
    spread: [2, 2]
    preference_bonus: 4
    weight: 1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, 6, rules.DeckSize)
	assert.Equal(t, []int{2, 2, 2}, rules.DealRounds)
	assert.Zero(t, rules.TargetJitter)
	assert.Equal(t, []game.TerrainConfig{
		{ID: "harbor", Name: "Harbor", BaseTarget: 40},
		{ID: "desert", Name: "Desert", BaseTarget: 60},
	}, rules.Terrains)
	require.Len(t, rules.Rarities, 2)
	assert.Equal(t, game.Range{Min: 1, Max: 2}, rules.Rarities[0].BaseMin)
	assert.Equal(t, "legendary", rules.Rarities[1].Label)
	assert.Equal(t, 4, rules.Rarities[1].PreferenceBonus)
	assert.Equal(t, game.RarityLegendary, rules.PreferredRarity)
	assert.Equal(t, 2, rules.WinThreshold())

	g, err := game.New(rules, game.NewDice(3))
	require.NoError(t, err)
	g.Start()
	for i, tr := range g.Terrains() {
		assert.Equal(t, rules.Terrains[i].BaseTarget, tr.Target)
	}
}

func TestParseRulesErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":              "deck_sise: 4\n",
		"short range":              "rarities:\n  - key: common\n    base_min: [3]\n    spread: [1, 2]\n    weight: 1\n",
		"invalid rules":            "deal_rounds: [3, -1]\n",
		"not yaml":                 "deck_size: [\n",
		"unknown preferred rarity": "preferred_rarity: mythic\n",
		"bonus on common":          "rarities:\n  - key: common\n    base_min: [6, 10]\n    spread: [3, 6]\n    preference_bonus: 9\n    weight: 1\n  - key: legendary\n    base_min: [11, 14]\n    spread: [5, 8]\n    preference_bonus: 6\n    weight: 1\n",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRules([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "load rules")
}
