package directory

import (
	"math/rand/v2"
	"sync"

	"chamber-directory/internal/model"
)

// DefaultSpotlightCount is how many members the home page features.
const DefaultSpotlightCount = 4

// Spotlight is the result of one selection.
type Spotlight struct {
	Members []model.Member
}

// Empty reports whether no member qualified.
func (s Spotlight) Empty() bool { return len(s.Members) == 0 }

// Picker performs the random spotlight selection. The selection has no
// fairness guarantee; pass a fixed source for reproducible output.
type Picker struct {
	mu    sync.Mutex
	rng   *rand.Rand
	count int
}

// NewPicker creates a picker. A nil src uses a randomly seeded PCG.
func NewPicker(count int, src rand.Source) *Picker {
	if count <= 0 {
		count = DefaultSpotlightCount
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Picker{rng: rand.New(src), count: count}
}

// NewSeededPicker is NewPicker with a PCG seeded from seed. Zero seed means
// a random source.
func NewSeededPicker(count int, seed uint64) *Picker {
	if seed == 0 {
		return NewPicker(count, nil)
	}
	return NewPicker(count, rand.NewPCG(seed, seed))
}

// Pick filters members to Silver and Gold, then selects up to the picker's
// count distinct members at random. The input slice is not modified.
func (p *Picker) Pick(members []model.Member) Spotlight {
	var qualified []model.Member
	for _, m := range members {
		if Featured(int(m.MembershipLevel)) {
			qualified = append(qualified, m)
		}
	}
	if len(qualified) == 0 {
		return Spotlight{}
	}

	p.mu.Lock()
	p.rng.Shuffle(len(qualified), func(i, j int) {
		qualified[i], qualified[j] = qualified[j], qualified[i]
	})
	p.mu.Unlock()

	if len(qualified) > p.count {
		qualified = qualified[:p.count]
	}
	return Spotlight{Members: qualified}
}
