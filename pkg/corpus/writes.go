package corpus

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/calendarevent"
	"github.com/confscout/scout/ent/rating"
	"github.com/confscout/scout/pkg/models"
)

// ErrEventConflict is returned when a new calendar event overlaps in time
// with an existing event that shares at least one attendee.
var ErrEventConflict = errors.New("calendar event conflicts with an existing event")

// ErrDuplicateVote is returned when an identical vote for the same
// (user, startup) pair arrives within the debounce window. Double-submits
// from the UI, not a real change of mind.
var ErrDuplicateVote = errors.New("duplicate vote")

const voteDebounceWindow = 2 * time.Second

type voteStamp struct {
	at         time.Time
	interested bool
}

// keyedMutex serializes writes per logical key without a lock per row.
// Keys hash onto a fixed set of shards.
type keyedMutex struct {
	shards [64]sync.Mutex
}

func (k *keyedMutex) lock(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &k.shards[h.Sum32()%uint32(len(k.shards))]
	m.Lock()
	return m
}

var writeLocks keyedMutex

// RecordVote appends a vote row and updates the activity index. Votes are
// append-only; the latest vote per (user, startup) is the effective one.
func (s *Store) RecordVote(ctx context.Context, req models.CreateVoteRequest) (*ent.Vote, error) {
	if _, err := s.GetStartup(req.StartupID); err != nil {
		return nil, err
	}

	mu := writeLocks.lock(fmt.Sprintf("vote:%s:%d", req.UserID, req.StartupID))
	defer mu.Unlock()

	key := fmt.Sprintf("%s:%d", req.UserID, req.StartupID)
	if last, ok := s.lastVote(key); ok &&
		last.interested == req.Interested &&
		s.now().Sub(last.at) < voteDebounceWindow {
		return nil, fmt.Errorf("%w: user %s already voted on startup %d", ErrDuplicateVote, req.UserID, req.StartupID)
	}

	v, err := s.client.Vote.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetStartupID(req.StartupID).
		SetInterested(req.Interested).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	s.activity.recordVote(req.UserID, req.StartupID, req.Interested)
	s.setLastVote(key, voteStamp{at: s.now(), interested: req.Interested})
	s.logger.Info("Vote recorded", "user_id", req.UserID, "startup_id", req.StartupID, "interested", req.Interested)
	return v, nil
}

// RecordRating upserts a rating for (user, startup). Re-rating overwrites the
// previous score.
func (s *Store) RecordRating(ctx context.Context, req models.CreateRatingRequest) (*ent.Rating, error) {
	if _, err := s.GetStartup(req.StartupID); err != nil {
		return nil, err
	}

	mu := writeLocks.lock(fmt.Sprintf("rating:%s:%d", req.UserID, req.StartupID))
	defer mu.Unlock()

	existing, err := s.client.Rating.Query().
		Where(rating.UserID(req.UserID), rating.StartupID(req.StartupID)).
		Only(ctx)
	switch {
	case err == nil:
		existing, err = existing.Update().SetScore(req.Score).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
	case ent.IsNotFound(err):
		existing, err = s.client.Rating.Create().
			SetID(uuid.New().String()).
			SetUserID(req.UserID).
			SetStartupID(req.StartupID).
			SetScore(req.Score).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create rating: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to query rating: %w", err)
	}

	s.activity.recordRating(req.UserID, req.StartupID, req.Score)
	return existing, nil
}

// RecordEvent creates a calendar event after checking that no existing event
// overlaps its time window with a shared attendee.
func (s *Store) RecordEvent(ctx context.Context, req models.CreateEventRequest) (*ent.CalendarEvent, error) {
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("event end must be after start")
	}

	// Attendee-keyed lock would need one lock per attendee; a single event
	// shard keeps the overlap check race-free at conference scale.
	mu := writeLocks.lock("calendar")
	defer mu.Unlock()

	if len(req.Attendees) > 0 {
		overlapping, err := s.client.CalendarEvent.Query().
			Where(calendarevent.StartLT(req.End), calendarevent.EndGT(req.Start)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query overlapping events: %w", err)
		}
		for _, ev := range overlapping {
			if attendeesOverlap(ev.Attendees, req.Attendees) {
				return nil, fmt.Errorf("%w: %q (%s)", ErrEventConflict, ev.Title, ev.Start.Format(time.RFC3339))
			}
		}
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "meeting"
	}
	ev, err := s.client.CalendarEvent.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetStart(req.Start).
		SetEnd(req.End).
		SetAttendees(req.Attendees).
		SetEventType(eventType).
		SetCategory(req.Category).
		SetStage(req.Stage).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	s.logger.Info("Calendar event created", "event_id", ev.ID, "title", ev.Title)
	return ev, nil
}

// EventsBetween lists calendar events intersecting [from, to), ordered by
// start time.
func (s *Store) EventsBetween(ctx context.Context, from, to time.Time) ([]*ent.CalendarEvent, error) {
	events, err := s.client.CalendarEvent.Query().
		Where(calendarevent.StartLT(to), calendarevent.EndGT(from)).
		Order(ent.Asc(calendarevent.FieldStart)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func attendeesOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, name := range a {
		set[name] = true
	}
	for _, name := range b {
		if set[name] {
			return true
		}
	}
	return false
}
