package ridership

import (
	"fmt"
	"sync"
	"time"

	"github.com/theoremus-urban-solutions/mta-ridership/analytics"
	"github.com/theoremus-urban-solutions/mta-ridership/dataset"
	"github.com/theoremus-urban-solutions/mta-ridership/formatter"
	"github.com/theoremus-urban-solutions/mta-ridership/resample"
)

// Snapshot is the full set of tables the API serves, computed in one pass
// from the CSV. A snapshot is never mutated after it is built; refreshes swap
// in a whole new one.
type Snapshot struct {
	Raw        *dataset.Table
	Scaled     *dataset.Table
	Aggregates map[resample.Granularity]*resample.AggregatedTable
	KPIs       analytics.KPIs
	Comparison []analytics.ServiceComparison
	LoadedAt   time.Time
}

// BuildSnapshot runs the whole pipeline: load, normalize, scale, resample at
// every granularity, then derive the KPI and comparison views.
func BuildSnapshot(cfg AppConfig) (*Snapshot, error) {
	raw, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	raw = dataset.Normalize(raw)
	scaled := dataset.ScaleToThousands(raw)
	periods := cfg.Analytics.Periods()

	return &Snapshot{
		Raw:        raw,
		Scaled:     scaled,
		Aggregates: resample.AllTables(scaled),
		KPIs:       analytics.ComputeKPIs(raw, periods),
		Comparison: analytics.ComparisonTable(raw, periods),
		LoadedAt:   time.Now().UTC(),
	}, nil
}

// View resolves a named view for the oneshot CLI mode.
func (s *Snapshot) View(name string) (any, error) {
	switch name {
	case "daily":
		return formatter.Records(s.Scaled.DF()), nil
	case "weekly":
		return formatter.Records(s.Aggregates[resample.Week].DF()), nil
	case "monthly":
		return formatter.Records(s.Aggregates[resample.Month].DF()), nil
	case "quarterly":
		return formatter.Records(s.Aggregates[resample.Quarter].DF()), nil
	case "annual":
		return formatter.Records(s.Aggregates[resample.Year].DF()), nil
	case "kpis":
		return s.KPIs, nil
	case "comparison":
		return s.Comparison, nil
	}
	return nil, fmt.Errorf("unknown view %q", name)
}

// WorkbookSheets lays out the snapshot tables for the XLSX export.
func (s *Snapshot) WorkbookSheets() []formatter.Sheet {
	return []formatter.Sheet{
		{Name: "Daily", Frame: s.Scaled.DF()},
		{Name: "Weekly", Frame: s.Aggregates[resample.Week].DF()},
		{Name: "Monthly", Frame: s.Aggregates[resample.Month].DF()},
		{Name: "Quarterly", Frame: s.Aggregates[resample.Quarter].DF()},
		{Name: "Annual", Frame: s.Aggregates[resample.Year].DF()},
	}
}

// SnapshotStore guards the current snapshot for concurrent readers.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewSnapshotStore(snap *Snapshot) *SnapshotStore {
	return &SnapshotStore{snap: snap}
}

// Get returns the current snapshot.
func (s *SnapshotStore) Get() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Set swaps in a freshly built snapshot.
func (s *SnapshotStore) Set(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
