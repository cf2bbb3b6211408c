package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/pkg/feedback"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/test/util"
)

func TestServiceAbandonsStaleSessions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	feedbackSvc := feedback.NewService(client, llm.Disabled(), nil, slog.Default())
	started, err := feedbackSvc.Start(ctx, &models.StartFeedbackRequest{
		MeetingID:   "m-retention",
		UserID:      "u1",
		StartupName: "Hookle",
	})
	require.NoError(t, err)

	err = client.FeedbackSession.UpdateOneID(started.SessionID).
		SetLastActivityAt(time.Now().UTC().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(feedbackSvc, "", slog.Default())
	svc.runAll(ctx)

	got, err := feedbackSvc.Get(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "abandoned", got.Status)
}

func TestServicePrunesOldCallLogs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	dir := t.TempDir()

	oldLog := filepath.Join(dir, "old.json")
	freshLog := filepath.Join(dir, "fresh.json")
	require.NoError(t, os.WriteFile(oldLog, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(freshLog, []byte("{}"), 0o644))
	stale := time.Now().Add(-8 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(oldLog, stale, stale))

	feedbackSvc := feedback.NewService(client, llm.Disabled(), nil, slog.Default())
	svc := NewService(feedbackSvc, dir, slog.Default())
	svc.runAll(context.Background())

	_, err := os.Stat(oldLog)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshLog)
	assert.NoError(t, err)
}

func TestServiceStartStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	feedbackSvc := feedback.NewService(client, llm.Disabled(), nil, slog.Default())
	svc := NewService(feedbackSvc, "", slog.Default())
	svc.interval = 10 * time.Millisecond

	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()
}
