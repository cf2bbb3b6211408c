package ranking

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// newExplorationRNG returns a deterministic RNG for exploration noise. The
// seed combines the user id with the UTC epoch day, so the same user sees a
// stable order within a day and a reshuffled one the next.
func newExplorationRNG(userID string, now time.Time) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(userID))
	epochDay := now.Unix() / (24 * 60 * 60)
	seed := int64(h.Sum64()) ^ epochDay
	return rand.New(rand.NewSource(seed))
}
