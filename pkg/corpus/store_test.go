package corpus

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/test/util"
)

func seedStartups(t *testing.T, client *ent.Client) {
	t.Helper()
	ctx := context.Background()
	funding := 25.0
	_, err := client.Startup.Create().
		SetID(1).SetName("AgentForge").
		SetDescription("Multi-agent orchestration platform").
		SetPrimaryIndustry("AI").
		SetStage(startup.StageSeed).
		SetTotalFundingUsdMillions(funding).
		SetCountry("Germany").SetCity("Berlin").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Startup.Create().
		SetID(2).SetName("Coverly").
		SetDescription("Claims automation for insurers").
		SetPrimaryIndustry("InsurTech").
		SetStage(startup.StageSeriesA).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Startup.Create().
		SetID(3).SetName("VectorVault").
		SetDescription("Vector database for retrieval").
		SetPrimaryIndustry("Infrastructure").
		SetStage(startup.StageSeriesB).
		Save(ctx)
	require.NoError(t, err)
}

func newLoadedStore(t *testing.T, client *ent.Client) *Store {
	t.Helper()
	store := NewStore(client, slog.Default())
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestStoreLoadAndVoteRoundTrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedStartups(t, client)
	ctx := context.Background()

	store := newLoadedStore(t, client)
	assert.Equal(t, 3, store.Snapshot().Len())

	row, err := store.GetStartup(1)
	require.NoError(t, err)
	assert.Equal(t, "AgentForge", row.Name)
	_, err = store.GetStartup(99)
	assert.ErrorIs(t, err, ErrStartupNotFound)

	// First vote shows up without a refresh.
	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: true})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true}, store.VotesOf("u1"))

	// Re-voting appends; the latest row is the effective one.
	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: false})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: false}, store.VotesOf("u1"))

	n, err := client.Vote.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "votes are append-only")

	// A fresh store rebuilt from the database sees the same effective vote.
	reloaded := newLoadedStore(t, client)
	assert.Equal(t, map[int64]bool{1: false}, reloaded.VotesOf("u1"))
	assert.Equal(t, map[int64]bool{1: true}, reloaded.SeenStartups("u1"))

	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 99, Interested: true})
	assert.ErrorIs(t, err, ErrStartupNotFound)
}

func TestLoadAppliesNewestVotePerPair(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedStartups(t, client)
	ctx := context.Background()

	// Insert the vote history out of creation order so a bare table scan
	// would likely see the newest row first and let a stale one win.
	base := time.Now().UTC().Add(-time.Hour)
	history := []struct {
		offset     time.Duration
		interested bool
	}{
		{30 * time.Minute, false}, // newest, must win
		{0, true},
		{20 * time.Minute, true},
		{10 * time.Minute, false},
	}
	for _, h := range history {
		_, err := client.Vote.Create().
			SetID(uuid.New().String()).
			SetUserID("u1").
			SetStartupID(1).
			SetInterested(h.interested).
			SetCreatedAt(base.Add(h.offset)).
			Save(ctx)
		require.NoError(t, err)
	}

	store := newLoadedStore(t, client)
	assert.Equal(t, map[int64]bool{1: false}, store.VotesOf("u1"))
}

func TestRecordVoteDebouncesDoubleSubmit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedStartups(t, client)
	ctx := context.Background()
	store := newLoadedStore(t, client)

	_, err := store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: true})
	require.NoError(t, err)

	// Same vote again within the window is a double-submit.
	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: true})
	assert.ErrorIs(t, err, ErrDuplicateVote)

	// Changing one's mind is not.
	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: false})
	require.NoError(t, err)

	// Past the window the same vote is accepted again.
	store.now = func() time.Time { return time.Now().Add(5 * time.Second) }
	_, err = store.RecordVote(ctx, models.CreateVoteRequest{UserID: "u1", StartupID: 1, Interested: false})
	require.NoError(t, err)
}

func TestRecordRatingUpsert(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedStartups(t, client)
	ctx := context.Background()
	store := newLoadedStore(t, client)

	first, err := store.RecordRating(ctx, models.CreateRatingRequest{UserID: "u1", StartupID: 2, Score: 3})
	require.NoError(t, err)

	second, err := store.RecordRating(ctx, models.CreateRatingRequest{UserID: "u1", StartupID: 2, Score: 5})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "re-rating overwrites the existing row")
	assert.Equal(t, 5, second.Score)

	n, err := client.Rating.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, map[int64]int{2: 5}, store.RatingsOf("u1"))

	reloaded := newLoadedStore(t, client)
	assert.Equal(t, map[int64]int{2: 5}, reloaded.RatingsOf("u1"))
}

func TestRecordEventConflicts(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	seedStartups(t, client)
	ctx := context.Background()
	store := newLoadedStore(t, client)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	_, err := store.RecordEvent(ctx, models.CreateEventRequest{
		Title: "Meet AgentForge", Start: at(10, 0), End: at(11, 0), Attendees: []string{"u1"},
	})
	require.NoError(t, err)

	// Overlapping window, shared attendee.
	_, err = store.RecordEvent(ctx, models.CreateEventRequest{
		Title: "Meet Coverly", Start: at(10, 30), End: at(11, 30), Attendees: []string{"u1", "u2"},
	})
	require.ErrorIs(t, err, ErrEventConflict)
	assert.Contains(t, err.Error(), "Meet AgentForge")

	// Same window is fine for a different attendee.
	_, err = store.RecordEvent(ctx, models.CreateEventRequest{
		Title: "Meet Coverly", Start: at(10, 30), End: at(11, 30), Attendees: []string{"u2"},
	})
	require.NoError(t, err)

	// Back-to-back does not conflict.
	ev, err := store.RecordEvent(ctx, models.CreateEventRequest{
		Title: "Debrief", Start: at(11, 0), End: at(11, 30), Attendees: []string{"u1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "meeting", ev.EventType)

	_, err = store.RecordEvent(ctx, models.CreateEventRequest{
		Title: "Broken", Start: at(12, 0), End: at(12, 0),
	})
	require.Error(t, err)

	events, err := store.EventsBetween(ctx, at(0, 0), at(23, 0))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Meet AgentForge", events[0].Title)
}

func TestSeedFromFile(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	store := NewStore(client, slog.Default())

	path := filepath.Join(t.TempDir(), "corpus.json")
	payload := `[
		{"id": 1, "name": "AgentForge", "description": "Multi-agent orchestration", "primary_industry": "AI", "stage": "seed"},
		{"id": 2, "name": "Coverly", "description": "Claims automation", "primary_industry": "InsurTech", "stage": "not-a-stage"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	require.NoError(t, store.SeedFromFile(ctx, path))
	require.NoError(t, store.Load(ctx))
	assert.Equal(t, 2, store.Snapshot().Len())

	// Unknown stages degrade to undisclosed instead of failing the import.
	row, err := store.GetStartup(2)
	require.NoError(t, err)
	assert.Equal(t, startup.StageUndisclosed, row.Stage)

	// Seeding is a no-op when the table already has rows.
	require.NoError(t, store.SeedFromFile(ctx, path))
	n, err := client.Startup.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
