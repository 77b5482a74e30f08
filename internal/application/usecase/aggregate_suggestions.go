package usecase

import (
	"math/rand/v2"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// Shuffler permutes n elements through swap, like rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// AggregateSuggestions drops suggestions too small to be useful and
// returns the rest in random order, so no fetcher is favoured by position.
// A nil shuffle uses math/rand/v2.
func AggregateSuggestions(suggestions []entity.Suggestion, shuffle Shuffler) []entity.Suggestion {
	out := make([]entity.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.IsValid() {
			out = append(out, s)
		}
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
