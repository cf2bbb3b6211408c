package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/ent/vote"
)

// Store owns the in-memory corpus snapshot and the per-user activity index.
// Reads are lock-free snapshot lookups; writes go to the database first and
// are then applied to the activity index so subsequent reads see them without
// waiting for a refresh.
type Store struct {
	client *ent.Client
	logger *slog.Logger

	snap       atomic.Pointer[Snapshot]
	activity   *activityIndex
	generation atomic.Int64

	// Recent-vote debounce state; see RecordVote.
	voteMu    sync.Mutex
	lastVotes map[string]voteStamp
	now       func() time.Time
}

// ErrStartupNotFound is returned when an id does not resolve in the corpus.
var ErrStartupNotFound = errors.New("startup not found")

// NewStore creates a store bound to the given ent client. Call Load before
// serving reads.
func NewStore(client *ent.Client, logger *slog.Logger) *Store {
	s := &Store{
		client:    client,
		logger:    logger.With("component", "corpus"),
		activity:  newActivityIndex(),
		lastVotes: make(map[string]voteStamp),
		now:       time.Now,
	}
	s.snap.Store(buildSnapshot(nil, 0))
	return s
}

// Load reads the full corpus and recent activity from the database and swaps
// in a fresh snapshot. Safe to call concurrently with reads.
func (s *Store) Load(ctx context.Context) error {
	started := time.Now()

	startups, err := s.client.Startup.Query().Order(ent.Asc(startup.FieldID)).All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load startups: %w", err)
	}

	// Oldest first: the rebuild applies rows in order so the newest row per
	// (user, startup) pair ends up authoritative.
	votes, err := s.client.Vote.Query().Order(ent.Asc(vote.FieldCreatedAt)).All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load votes: %w", err)
	}
	ratings, err := s.client.Rating.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	gen := s.generation.Add(1)
	s.snap.Store(buildSnapshot(startups, gen))
	s.activity.rebuild(votes, ratings)

	s.logger.Info("Corpus snapshot loaded",
		"startups", len(startups),
		"votes", len(votes),
		"ratings", len(ratings),
		"generation", gen,
		"duration", time.Since(started))

	if len(startups) == 0 {
		s.logger.Warn("Corpus is empty; ranking and tools will return empty results")
	}
	return nil
}

// Refresh is Load under its externally visible name; exposed for the admin
// refresh endpoint and periodic reload.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Snapshot returns the current immutable corpus view.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// GetStartup resolves one startup by id against the current snapshot.
func (s *Store) GetStartup(id int64) (*ent.Startup, error) {
	if st := s.Snapshot().Get(id); st != nil {
		return st, nil
	}
	return nil, ErrStartupNotFound
}

// VotesOf returns the effective (latest) vote per startup for a user.
func (s *Store) VotesOf(userID string) map[int64]bool {
	return s.activity.votesOf(userID)
}

// RatingsOf returns the current rating per startup for a user.
func (s *Store) RatingsOf(userID string) map[int64]int {
	return s.activity.ratingsOf(userID)
}

// SeenStartups returns the set of startup ids a user has voted on or rated.
func (s *Store) SeenStartups(userID string) map[int64]bool {
	return s.activity.seenOf(userID)
}

func (s *Store) lastVote(key string) (voteStamp, bool) {
	s.voteMu.Lock()
	defer s.voteMu.Unlock()
	stamp, ok := s.lastVotes[key]
	return stamp, ok
}

func (s *Store) setLastVote(key string, stamp voteStamp) {
	s.voteMu.Lock()
	s.lastVotes[key] = stamp
	s.voteMu.Unlock()
}
