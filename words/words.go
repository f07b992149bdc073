// Package words supplies target words for the game, keyed by category and
// difficulty. Lists are static and upper-case; selection is uniform with
// replacement, so a word may repeat across rounds.
package words

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/plus3/pinchspell/game"
)

// DefaultCategory is used when a caller passes an empty category.
const DefaultCategory = "animals"

type listKey struct {
	category   string
	difficulty game.Difficulty
}

var lists = map[listKey][]string{
	{"animals", game.Easy}:   {"CAT", "DOG", "PIG", "COW", "HEN", "FOX", "BAT", "ANT"},
	{"animals", game.Medium}: {"HORSE", "SHEEP", "MOUSE", "ZEBRA", "TIGER", "SNAKE", "WHALE", "EAGLE"},
	{"animals", game.Hard}:   {"GIRAFFE", "DOLPHIN", "PENGUIN", "OCTOPUS", "LEOPARD", "HAMSTER"},
	{"food", game.Easy}:      {"PIE", "EGG", "JAM", "BUN", "HAM", "FIG", "NUT"},
	{"food", game.Medium}:    {"BREAD", "APPLE", "GRAPE", "PIZZA", "MANGO", "LEMON", "PEACH"},
	{"food", game.Hard}:      {"PANCAKE", "NOODLES", "BURRITO", "PRETZEL", "AVOCADO", "GRANOLA"},
	{"objects", game.Easy}:   {"CUP", "HAT", "BED", "KEY", "PEN", "BOX", "MAP"},
	{"objects", game.Medium}: {"CHAIR", "CLOCK", "BRUSH", "PLATE", "TRAIN", "WHEEL", "PIANO"},
	{"objects", game.Hard}:   {"LANTERN", "COMPASS", "BLANKET", "WHISTLE", "BICYCLE", "CURTAIN"},
}

// Categories returns the available category names.
func Categories() []string {
	return []string{"animals", "food", "objects"}
}

// Provider picks target words from the static lists. The zero value uses the
// process-wide random source; tests can seed their own.
type Provider struct {
	// Rand overrides the random source when non-nil.
	Rand *rand.Rand
}

// List returns the word list for the category and difficulty, or an error
// when no such list exists.
func (p *Provider) List(category string, d game.Difficulty) ([]string, error) {
	if category == "" {
		category = DefaultCategory
	}
	list, ok := lists[listKey{strings.ToLower(category), d}]
	if !ok {
		return nil, fmt.Errorf("words: no list for category %q difficulty %s", category, d)
	}
	return list, nil
}

// Pick implements game.WordPicker: a uniform random choice with replacement.
func (p *Provider) Pick(category string, d game.Difficulty) (string, error) {
	list, err := p.List(category, d)
	if err != nil {
		return "", err
	}
	if p.Rand != nil {
		return list[p.Rand.IntN(len(list))], nil
	}
	return list[rand.IntN(len(list))], nil
}
