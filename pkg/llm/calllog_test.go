package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/pkg/config"
)

func TestCallLogWritesRecordPerCall(t *testing.T) {
	dir := t.TempDir()
	upstream := &scriptedClient{}
	upstream.failuresLeft.Store(0)
	c := WithCallLog(upstream, dir, "gpt-4o-mini", slog.Default())

	req := &Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}
	resp, err := c.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.NotEmpty(t, req.RequestID, "gateway assigns a request id")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.True(t, strings.HasSuffix(name, "_gpt-4o-mini_"+req.RequestID+".json"), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	var record callRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, req.RequestID, record.RequestID)
	assert.True(t, record.Success)
	assert.Equal(t, "hi", record.Request.Messages[0].Content)
}

func TestCallLogRecordsFailureKind(t *testing.T) {
	dir := t.TempDir()
	upstream := &scriptedClient{err: &Error{Kind: KindUnavailable, Message: "down", Status: 503}}
	upstream.failuresLeft.Store(1000)
	c := WithCallLog(upstream, dir, "gpt-4o-mini", slog.Default())

	_, err := c.Complete(context.Background(), &Request{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	var record callRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.False(t, record.Success)
	assert.Equal(t, string(KindUnavailable), record.ErrorKind)
}

func TestGatewayDisabledWithoutAPIKey(t *testing.T) {
	cfg := &config.LLMConfig{Model: "gpt-4o-mini"}
	client := NewGateway(cfg, slog.Default())

	_, err := client.Complete(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
}
