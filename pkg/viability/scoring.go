package viability

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/taxonomy"
)

// Composite score caps per component.
const (
	fundingCap  = 40.0
	teamCap     = 30.0
	maturityCap = 20.0
	categoryCap = 10.0

	fundingYearlyDecay = 0.9
)

// compositeScore combines funding, team size, maturity and category
// relevance into a [0,100] provider score.
func compositeScore(s *ent.Startup, class taxonomy.Result) float64 {
	return fundingScore(s, time.Now().UTC()) + teamScore(s) + maturityScore(s) + categoryScore(class)
}

// fundingScore log-scales total funding and decays it 10% per year since the
// last round.
func fundingScore(s *ent.Startup, now time.Time) float64 {
	if s.TotalFundingUsdMillions == nil || *s.TotalFundingUsdMillions <= 0 {
		return 0
	}
	score := math.Min(fundingCap, 8*math.Log1p(*s.TotalFundingUsdMillions))
	if s.LastFundingDate != nil {
		years := now.Sub(*s.LastFundingDate).Hours() / (24 * 365.25)
		if years > 0 {
			score *= math.Pow(fundingYearlyDecay, years)
		}
	}
	return score
}

func teamScore(s *ent.Startup) float64 {
	emp := employeeUpperBound(s.Employees)
	if emp <= 0 {
		return 0
	}
	return math.Min(teamCap, 4*math.Log1p(float64(emp)))
}

func maturityScore(s *ent.Startup) float64 {
	if s.MaturityScore == nil {
		return 0
	}
	return math.Min(maturityCap, float64(*s.MaturityScore)/5)
}

func categoryScore(class taxonomy.Result) float64 {
	return math.Min(categoryCap, float64(class.BaseScore)/10)
}

var employeeNumRe = regexp.MustCompile(`\d+`)

// employeeUpperBound parses range strings like "11-25", "500+" or "1000" and
// returns the largest number present.
func employeeUpperBound(r string) int {
	best := 0
	for _, m := range employeeNumRe.FindAllString(r, -1) {
		if n, err := strconv.Atoi(m); err == nil && n > best {
			best = n
		}
	}
	return best
}
