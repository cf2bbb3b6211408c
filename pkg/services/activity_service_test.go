package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/pkg/corpus"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/test/util"
)

func newActivityService(t *testing.T) (*ActivityService, *corpus.Store) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	seedCorpus(t, client)

	store := corpus.NewStore(client, slog.Default())
	require.NoError(t, store.Load(context.Background()))
	return NewActivityService(store, client, slog.Default()), store
}

func TestActivityServiceVote(t *testing.T) {
	svc, store := newActivityService(t)
	ctx := context.Background()

	resp, err := svc.Vote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: true})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.VoteID)
	assert.True(t, resp.Interested)
	assert.Equal(t, map[int64]bool{1: true}, store.VotesOf("u1"))

	_, err = svc.Vote(ctx, models.CreateVoteRequest{UserID: "", StartupID: 1})
	assert.True(t, IsValidationError(err))
	_, err = svc.Vote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityServiceRate(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()

	resp, err := svc.Rate(ctx, models.CreateRatingRequest{UserID: "u1", StartupID: 2, Score: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Score)

	again, err := svc.Rate(ctx, models.CreateRatingRequest{UserID: "u1", StartupID: 2, Score: 5})
	require.NoError(t, err)
	assert.Equal(t, resp.RatingID, again.RatingID)

	for _, score := range []int{0, 6, -1} {
		_, err = svc.Rate(ctx, models.CreateRatingRequest{UserID: "u1", StartupID: 2, Score: score})
		assert.True(t, IsValidationError(err), "score %d", score)
	}
}

func TestActivityServiceEvents(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	ev, err := svc.CreateEvent(ctx, models.CreateEventRequest{
		Title: "Meet AgentForge", Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour),
		Attendees: []string{"u1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "meeting", ev.EventType)

	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{
		Title: "Double booked", Start: day.Add(10*time.Hour + 30*time.Minute), End: day.Add(12 * time.Hour),
		Attendees: []string{"u1"},
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{
		Title: "Backwards", Start: day.Add(2 * time.Hour), End: day.Add(1 * time.Hour),
	})
	assert.True(t, IsValidationError(err))
	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{Start: day, End: day.Add(time.Hour)})
	assert.True(t, IsValidationError(err))

	events, err := svc.ListEvents(ctx, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.EventID, events[0].EventID)
}

func TestActivityServiceIdeas(t *testing.T) {
	svc, _ := newActivityService(t)
	ctx := context.Background()

	first, err := svc.CreateIdea(ctx, models.CreateIdeaRequest{
		UserID: "u1", Title: "Follow up with AgentForge", Content: "Ask about on-prem deployment",
	})
	require.NoError(t, err)
	_, err = svc.CreateIdea(ctx, models.CreateIdeaRequest{UserID: "u1", Title: "Book demo slot"})
	require.NoError(t, err)

	_, err = svc.CreateIdea(ctx, models.CreateIdeaRequest{UserID: "u1"})
	assert.True(t, IsValidationError(err))

	ideas, err := svc.ListIdeas(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, first.IdeaID, ideas[1].IdeaID, "newest first")

	none, err := svc.ListIdeas(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
