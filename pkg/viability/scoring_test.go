package viability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/taxonomy"
)

func TestFundingScoreLogScaledAndCapped(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	funding := func(m float64) *ent.Startup {
		return &ent.Startup{TotalFundingUsdMillions: &m}
	}

	assert.Zero(t, fundingScore(&ent.Startup{}, now), "no funding, no score")

	small := fundingScore(funding(5), now)
	large := fundingScore(funding(500), now)
	assert.Greater(t, large, small)
	assert.LessOrEqual(t, large, fundingCap)

	huge := fundingScore(funding(100000), now)
	assert.Equal(t, fundingCap, huge, "funding component is capped")
}

func TestFundingScoreDecays(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	m := 50.0

	recent := now.AddDate(0, -1, 0)
	stale := now.AddDate(-3, 0, 0)

	fresh := fundingScore(&ent.Startup{TotalFundingUsdMillions: &m, LastFundingDate: &recent}, now)
	old := fundingScore(&ent.Startup{TotalFundingUsdMillions: &m, LastFundingDate: &stale}, now)

	assert.Greater(t, fresh, old)
	// Three years of 10% decay.
	base := fundingScore(&ent.Startup{TotalFundingUsdMillions: &m}, now)
	assert.InDelta(t, base*0.9*0.9*0.9, old, 0.2)
}

func TestTeamScore(t *testing.T) {
	assert.Zero(t, teamScore(&ent.Startup{Employees: ""}))
	assert.Zero(t, teamScore(&ent.Startup{Employees: "unknown"}))

	small := teamScore(&ent.Startup{Employees: "1-10"})
	mid := teamScore(&ent.Startup{Employees: "51-200"})
	big := teamScore(&ent.Startup{Employees: "10000+"})

	assert.Greater(t, mid, small)
	assert.Greater(t, big, mid)
	assert.LessOrEqual(t, big, teamCap)
}

func TestMaturityAndCategoryScores(t *testing.T) {
	maturity := 80
	assert.Equal(t, 16.0, maturityScore(&ent.Startup{MaturityScore: &maturity}))
	assert.Zero(t, maturityScore(&ent.Startup{}))

	assert.Equal(t, 10.0, categoryScore(taxonomy.Result{BaseScore: 100}))
	assert.Equal(t, 3.0, categoryScore(taxonomy.Result{BaseScore: 30}))
}

func TestEmployeeUpperBound(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"11-25", 25},
		{"500+", 500},
		{"1000", 1000},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, employeeUpperBound(tt.in), tt.in)
	}
}
