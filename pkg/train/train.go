// Package train renders the decorative emoji train shown next to a member's
// ratified-accusation count. The generator is deterministic for a given seed
// so the same member always sees the same train for the same count.
package train

import "math/rand"

var (
	engines   = []string{"🚅", "🚄", "🚂", "🚈"}
	carriages = []string{"🚋", "🚃"}
)

// Ferrify builds a train with count cars: one engine followed by count-1
// carriages. The seed fixes every choice; determinism here is intentional and
// unrelated to the non-deterministic consequence assignment.
func Ferrify(count int, seed int64) string {
	if count <= 0 {
		return ""
	}
	rng := rand.New(rand.NewSource(seed))
	out := engines[rng.Intn(len(engines))]
	for i := 1; i < count; i++ {
		out += carriages[rng.Intn(len(carriages))]
	}
	return out
}
