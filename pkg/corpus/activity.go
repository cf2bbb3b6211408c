package corpus

import (
	"sync"

	"github.com/confscout/scout/ent"
)

// activityIndex tracks per-user votes and ratings. Unlike the startup
// snapshot it is mutable: writes land here immediately after the database
// accepts them, and rebuild replaces the whole index on refresh.
type activityIndex struct {
	mu      sync.RWMutex
	votes   map[string]map[int64]bool // user -> startup -> interested (latest wins)
	ratings map[string]map[int64]int  // user -> startup -> score
}

func newActivityIndex() *activityIndex {
	return &activityIndex{
		votes:   make(map[string]map[int64]bool),
		ratings: make(map[string]map[int64]int),
	}
}

// rebuild replaces the index contents. Votes arrive oldest first; later rows
// for the same (user, startup) pair override earlier ones, so the newest row
// ends up as the effective vote.
func (a *activityIndex) rebuild(votes []*ent.Vote, ratings []*ent.Rating) {
	nv := make(map[string]map[int64]bool)
	for _, v := range votes {
		m, ok := nv[v.UserID]
		if !ok {
			m = make(map[int64]bool)
			nv[v.UserID] = m
		}
		m[v.StartupID] = v.Interested
	}
	nr := make(map[string]map[int64]int)
	for _, r := range ratings {
		m, ok := nr[r.UserID]
		if !ok {
			m = make(map[int64]int)
			nr[r.UserID] = m
		}
		m[r.StartupID] = r.Score
	}

	a.mu.Lock()
	a.votes = nv
	a.ratings = nr
	a.mu.Unlock()
}

func (a *activityIndex) recordVote(userID string, startupID int64, interested bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.votes[userID]
	if !ok {
		m = make(map[int64]bool)
		a.votes[userID] = m
	}
	m[startupID] = interested
}

func (a *activityIndex) recordRating(userID string, startupID int64, score int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.ratings[userID]
	if !ok {
		m = make(map[int64]int)
		a.ratings[userID] = m
	}
	m[startupID] = score
}

func (a *activityIndex) votesOf(userID string) map[int64]bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[int64]bool, len(a.votes[userID]))
	for id, interested := range a.votes[userID] {
		out[id] = interested
	}
	return out
}

func (a *activityIndex) ratingsOf(userID string) map[int64]int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[int64]int, len(a.ratings[userID]))
	for id, score := range a.ratings[userID] {
		out[id] = score
	}
	return out
}

func (a *activityIndex) seenOf(userID string) map[int64]bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	seen := make(map[int64]bool, len(a.votes[userID])+len(a.ratings[userID]))
	for id := range a.votes[userID] {
		seen[id] = true
	}
	for id := range a.ratings[userID] {
		seen[id] = true
	}
	return seen
}
