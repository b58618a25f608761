package checker

import "sync/atomic"

// Stats tracks the running counts of the exploration.
//
// The counters are written exclusively by the exploration loop and may be
// read concurrently by the Reporter.
type Stats struct {
	generated atomic.Uint64
	unique    atomic.Uint64
	states    atomic.Uint64
}

// A Snapshot of the exploration counters.
//
// The fields are read atomically but not as one unit: a snapshot taken while
// the exploration loop is running may lag behind the writer. That staleness
// is acceptable, snapshots exist for progress observation only.
type Snapshot struct {
	// Generated counts every candidate produced, duplicates included.
	Generated uint64
	// Unique counts every candidate accepted into the seen-state table.
	Unique uint64
	// States is the size of the seen-state table. Always equal to Unique.
	States uint64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Generated: s.generated.Load(),
		Unique:    s.unique.Load(),
		States:    s.states.Load(),
	}
}
