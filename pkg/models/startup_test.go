package models

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
)

func TestIDListUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    IDList
		wantErr string
	}{
		{
			name: "numbers",
			raw:  `{"startup_ids":[1,2,3]}`,
			want: IDList{1, 2, 3},
		},
		{
			name: "numeric strings",
			raw:  `{"startup_ids":["1","42"]}`,
			want: IDList{1, 42},
		},
		{
			name: "mixed",
			raw:  `{"startup_ids":[7,"8",9]}`,
			want: IDList{7, 8, 9},
		},
		{
			name: "empty array",
			raw:  `{"startup_ids":[]}`,
			want: IDList{},
		},
		{
			name:    "non-numeric string",
			raw:     `{"startup_ids":["seven"]}`,
			wantErr: "invalid number",
		},
		{
			name:    "fractional id",
			raw:     `{"startup_ids":[1.5]}`,
			wantErr: "element 0",
		},
		{
			name:    "not an array",
			raw:     `{"startup_ids":"1,2"}`,
			wantErr: "cannot unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req BatchInsightsRequest
			err := json.Unmarshal([]byte(tt.raw), &req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.StartupIDs)
		})
	}
}

func TestSummarizeStartupTruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 400)

	s := SummarizeStartup(&ent.Startup{Description: long})
	assert.Len(t, s.Description, 283, "280 characters plus ellipsis")

	s = SummarizeStartup(&ent.Startup{Description: long, ShortDescription: "already short"})
	assert.Equal(t, "already short", s.Description, "short_description wins when present")
}

func TestSummarizeStartupTruncatesOnRuneBoundary(t *testing.T) {
	// 3-byte runes put the 280-byte cut inside a sequence.
	long := strings.Repeat("✓", 100)

	s := SummarizeStartup(&ent.Startup{Description: long})
	assert.True(t, utf8.ValidString(s.Description))
	assert.Equal(t, strings.Repeat("✓", 93)+"...", s.Description)
}
