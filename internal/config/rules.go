package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"gopkg.in/yaml.v3"
)

// rulesFile mirrors game.Rules on disk. Omitted keys keep their defaults.
type rulesFile struct {
	DeckSize     *int          `yaml:"deck_size"`
	DealRounds   []int         `yaml:"deal_rounds"`
	TargetJitter *int          `yaml:"target_jitter"`
	Terrains     []terrainFile `yaml:"terrains"`
	Rarities     []rarityFile  `yaml:"rarities"`
	Preferred    string        `yaml:"preferred_rarity"`
}

type terrainFile struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	BaseTarget int    `yaml:"base_target"`
}

type rarityFile struct {
	Key             string  `yaml:"key"`
	Label           string  `yaml:"label"`
	BaseMin         []int   `yaml:"base_min"`
	Spread          []int   `yaml:"spread"`
	PreferenceBonus int     `yaml:"preference_bonus"`
	Weight          float64 `yaml:"weight"`
}

// LoadRules reads a rules file on top of game.DefaultRules. An empty path
// returns the defaults.
func LoadRules(path string) (game.Rules, error) {
	if path == "" {
		return game.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return game.Rules{}, fmt.Errorf("load rules: %w", err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return game.Rules{}, fmt.Errorf("load rules %s: %w", path, err)
	}
	return rules, nil
}

func ParseRules(data []byte) (game.Rules, error) {
	rules := game.DefaultRules()

	var f rulesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return game.Rules{}, fmt.Errorf("decode yaml: %w", err)
	}

	if f.DeckSize != nil {
		rules.DeckSize = *f.DeckSize
	}
	if f.DealRounds != nil {
		rules.DealRounds = f.DealRounds
	}
	if f.TargetJitter != nil {
		rules.TargetJitter = *f.TargetJitter
	}
	if f.Preferred != "" {
		rules.PreferredRarity = game.Rarity(f.Preferred)
	}

	if len(f.Terrains) > 0 {
		rules.Terrains = make([]game.TerrainConfig, 0, len(f.Terrains))
		for _, t := range f.Terrains {
			rules.Terrains = append(rules.Terrains, game.TerrainConfig{ID: t.ID, Name: t.Name, BaseTarget: t.BaseTarget})
		}
	}

	if len(f.Rarities) > 0 {
		rules.Rarities = make([]game.RarityRule, 0, len(f.Rarities))
		for _, r := range f.Rarities {
			baseMin, err := toRange(r.BaseMin)
			if err != nil {
				return game.Rules{}, fmt.Errorf("rarity %q base_min: %w", r.Key, err)
			}
			spread, err := toRange(r.Spread)
			if err != nil {
				return game.Rules{}, fmt.Errorf("rarity %q spread: %w", r.Key, err)
			}

			label := r.Label
			if label == "" {
				label = r.Key
			}
			rules.Rarities = append(rules.Rarities, game.RarityRule{
				Rarity:          game.Rarity(r.Key),
				Label:           label,
				BaseMin:         baseMin,
				Spread:          spread,
				PreferenceBonus: r.PreferenceBonus,
				Weight:          r.Weight,
			})
		}
	}

	if err := rules.Validate(); err != nil {
		return game.Rules{}, err
	}
	return rules, nil
}

func toRange(v []int) (game.Range, error) {
	if len(v) != 2 {
		return game.Range{}, fmt.Errorf("want [min, max], got %v", v)
	}
	return game.Range{Min: v[0], Max: v[1]}, nil
}
