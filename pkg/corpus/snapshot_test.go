package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/ent/startup"
	"github.com/confscout/scout/pkg/models"
)

func fundingPtr(v float64) *float64 { return &v }

func testStartups() []*ent.Startup {
	return []*ent.Startup{
		{
			ID:                      3,
			Name:                    "AgentForge",
			PrimaryIndustry:         "Developer Tools",
			Country:                 "Germany",
			Stage:                   startup.StageSeed,
			TotalFundingUsdMillions: fundingPtr(12),
		},
		{
			ID:              1,
			Name:            "VectorVault",
			PrimaryIndustry: "Data Infrastructure",
			Country:         "USA",
			Stage:           startup.StageSeriesA,
			// funding undisclosed
		},
		{
			ID:                      2,
			Name:                    "Forge Analytics",
			PrimaryIndustry:         "Analytics",
			SecondaryIndustries:     []string{"Developer Tools"},
			Country:                 "USA",
			Stage:                   startup.StageSeed,
			TotalFundingUsdMillions: fundingPtr(45),
		},
	}
}

func TestSnapshotOrderingAndLookup(t *testing.T) {
	snap := buildSnapshot(testStartups(), 1)

	assert.Equal(t, 3, snap.Len())

	ids := make([]int64, 0, snap.Len())
	for _, s := range snap.All() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids, "All should be sorted by id")

	assert.Equal(t, "Forge Analytics", snap.Get(2).Name)
	assert.Nil(t, snap.Get(99))
}

func TestSnapshotTopByFundingNullsLast(t *testing.T) {
	snap := buildSnapshot(testStartups(), 1)

	top := snap.TopByFunding(10)
	ids := make([]int64, 0, len(top))
	for _, s := range top {
		ids = append(ids, s.ID)
	}
	// 45M, 12M, then the undisclosed row.
	assert.Equal(t, []int64{2, 3, 1}, ids)

	top2 := snap.TopByFunding(2)
	assert.Len(t, top2, 2)
	assert.Equal(t, int64(2), top2[0].ID)
}

func TestSnapshotListFilters(t *testing.T) {
	snap := buildSnapshot(testStartups(), 1)

	tests := []struct {
		name   string
		filter models.StartupFilter
		want   []int64
	}{
		{"no filter", models.StartupFilter{}, []int64{1, 2, 3}},
		{"country", models.StartupFilter{Country: "usa"}, []int64{1, 2}},
		{"stage", models.StartupFilter{Stage: "seed"}, []int64{2, 3}},
		{"secondary industry matches", models.StartupFilter{Industry: "developer tools"}, []int64{2, 3}},
		{"min funding excludes nulls", models.StartupFilter{MinFunding: 20}, []int64{2}},
		{"name substring", models.StartupFilter{NameSubstring: "forge"}, []int64{2, 3}},
		{"combined", models.StartupFilter{Country: "USA", Stage: "seed"}, []int64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := snap.List(tt.filter, models.Page{})
			ids := make([]int64, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), total)
		})
	}
}

func TestSnapshotListPagination(t *testing.T) {
	snap := buildSnapshot(testStartups(), 1)

	page, total := snap.List(models.StartupFilter{}, models.Page{Skip: 1, Limit: 1})
	assert.Equal(t, 3, total)
	assert.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].ID)

	page, total = snap.List(models.StartupFilter{}, models.Page{Skip: 10, Limit: 5})
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestActivityIndexEffectiveVotes(t *testing.T) {
	idx := newActivityIndex()

	idx.recordVote("alice", 1, true)
	idx.recordVote("alice", 1, false) // changed their mind
	idx.recordVote("alice", 2, true)
	idx.recordRating("alice", 3, 4)

	votes := idx.votesOf("alice")
	assert.Equal(t, map[int64]bool{1: false, 2: true}, votes)

	seen := idx.seenOf("alice")
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, seen)

	assert.Empty(t, idx.votesOf("bob"))
}
