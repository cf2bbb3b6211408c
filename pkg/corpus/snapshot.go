package corpus

import (
	"sort"
	"strings"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/models"
)

// Snapshot is an immutable in-memory view of the startup corpus. Readers hold
// a snapshot for the duration of one request; the store swaps the current
// snapshot atomically on refresh.
type Snapshot struct {
	startups  []*ent.Startup // sorted by id ascending
	byID      map[int64]*ent.Startup
	byFunding []*ent.Startup // sorted by funding desc, nulls last, id asc

	generation int64
}

// Generation identifies this snapshot; monotonically increasing per process.
func (s *Snapshot) Generation() int64 {
	return s.generation
}

// Len returns the number of startups in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.startups)
}

// All returns the snapshot's startups sorted by id. Callers must not mutate
// the returned slice or its elements.
func (s *Snapshot) All() []*ent.Startup {
	return s.startups
}

// Get returns the startup with the given id, or nil.
func (s *Snapshot) Get(id int64) *ent.Startup {
	return s.byID[id]
}

// List applies the filter and returns one page plus the total match count.
func (s *Snapshot) List(filter models.StartupFilter, page models.Page) ([]*ent.Startup, int) {
	matched := make([]*ent.Startup, 0, len(s.startups))
	nameQuery := strings.ToLower(filter.NameSubstring)
	for _, st := range s.startups {
		if filter.Industry != "" && !hasIndustry(st, filter.Industry) {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(st.Country, filter.Country) {
			continue
		}
		if filter.Stage != "" && string(st.Stage) != filter.Stage {
			continue
		}
		if filter.MinFunding > 0 {
			if st.TotalFundingUsdMillions == nil || *st.TotalFundingUsdMillions < filter.MinFunding {
				continue
			}
		}
		if nameQuery != "" && !strings.Contains(strings.ToLower(st.Name), nameQuery) {
			continue
		}
		matched = append(matched, st)
	}

	total := len(matched)
	if page.Skip >= total {
		return nil, total
	}
	end := total
	if page.Limit > 0 && page.Skip+page.Limit < end {
		end = page.Skip + page.Limit
	}
	return matched[page.Skip:end], total
}

// TopByFunding returns up to limit startups sorted descending by total
// funding, nulls last, ties broken by id ascending.
func (s *Snapshot) TopByFunding(limit int) []*ent.Startup {
	if limit <= 0 || limit > len(s.byFunding) {
		limit = len(s.byFunding)
	}
	return s.byFunding[:limit]
}

func hasIndustry(st *ent.Startup, industry string) bool {
	if strings.EqualFold(st.PrimaryIndustry, industry) {
		return true
	}
	for _, sec := range st.SecondaryIndustries {
		if strings.EqualFold(sec, industry) {
			return true
		}
	}
	return false
}

// NewSnapshot builds a standalone snapshot from a startup list. The store
// manages its own snapshots; this exists for consumers that rank or filter a
// fixed set outside the store's lifecycle.
func NewSnapshot(startups []*ent.Startup) *Snapshot {
	return buildSnapshot(startups, 0)
}

// buildSnapshot constructs the derived indexes from a raw startup list.
func buildSnapshot(startups []*ent.Startup, generation int64) *Snapshot {
	sorted := make([]*ent.Startup, len(startups))
	copy(sorted, startups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]*ent.Startup, len(sorted))
	for _, st := range sorted {
		byID[st.ID] = st
	}

	byFunding := make([]*ent.Startup, len(sorted))
	copy(byFunding, sorted)
	sort.SliceStable(byFunding, func(i, j int) bool {
		fi, fj := byFunding[i].TotalFundingUsdMillions, byFunding[j].TotalFundingUsdMillions
		switch {
		case fi == nil && fj == nil:
			return byFunding[i].ID < byFunding[j].ID
		case fi == nil:
			return false
		case fj == nil:
			return true
		case *fi != *fj:
			return *fi > *fj
		default:
			return byFunding[i].ID < byFunding[j].ID
		}
	})

	return &Snapshot{
		startups:   sorted,
		byID:       byID,
		byFunding:  byFunding,
		generation: generation,
	}
}
