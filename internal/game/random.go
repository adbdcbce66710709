package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Dice is the only source of randomness in a game. Seeding it makes every
// draw (targets, couriers, ids, rolls) reproducible.
type Dice struct {
	seed uint64
	src  *rand.ChaCha8
	rng  *rand.Rand
}

// NewDice builds a dice stream from seed. A zero seed picks one from crypto/rand.
func NewDice(seed uint64) *Dice {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		}
		if seed == 0 {
			seed = 1
		}
	}

	var key [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], seed+uint64(i)*0x9e3779b97f4a7c15)
	}

	src := rand.NewChaCha8(key)
	return &Dice{seed: seed, src: src, rng: rand.New(src)}
}

func (d *Dice) Seed() uint64 {
	return d.seed
}

// IntBetween returns a uniform int in [lo, hi] inclusive.
func (d *Dice) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + d.rng.IntN(hi-lo+1)
}

func (d *Dice) Float64() float64 {
	return d.rng.Float64()
}

// Read fills p from the same stream, so ids drawn through it follow the seed.
func (d *Dice) Read(p []byte) (int, error) {
	return d.src.Read(p)
}
