package game

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/recall/parameter"
)

// Generator produces per-round target sequences
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a sequence generator
// Seed 0 derives one from the wall clock for normal play; any other
// value gives a fully reproducible game
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SequenceLength returns the target sequence length for a round
// (2, 4, 6, 8, 10 for rounds 1 through 5)
func SequenceLength(round int) int {
	return parameter.SequenceBaseLength + (round-1)*parameter.SequenceGrowth
}

// Generate draws a fresh sequence for the round. Each position is an
// independent uniform draw over the difficulty alphabet; repeats are
// allowed
func (g *Generator) Generate(round int, d Difficulty) []rune {
	alphabet := d.Alphabet()
	seq := make([]rune, SequenceLength(round))
	for i := range seq {
		seq[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return seq
}
