package state

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/adimsa/sinyal/internal/gateway"
)

// Overview is the result of one all-or-nothing dashboard load: the five
// independent reads joined by app.RefreshOverview. It is only ever stored
// complete; a failed join never replaces previous data.
type Overview struct {
	Summary     gateway.SummaryResponse
	Families    json.RawMessage
	Segments    json.RawMessage
	Packages    json.RawMessage
	Redeemables json.RawMessage
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Overview            Overview
	HasOverview         bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the gateway has been unreachable for multiple
// refreshes.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored overview. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(overview *Overview, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if overview != nil {
		s.snapshot.Overview = cloneOverview(*overview)
		s.snapshot.HasOverview = true
	} else {
		s.snapshot.HasOverview = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Reset clears the stored overview, e.g. after switching accounts.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Overview = cloneOverview(s.snapshot.Overview)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneOverview(o Overview) Overview {
	clone := o
	clone.Summary.Profile = cloneRaw(o.Summary.Profile)
	clone.Summary.Balance = cloneRaw(o.Summary.Balance)
	clone.Summary.Tiering = cloneRaw(o.Summary.Tiering)
	clone.Families = cloneRaw(o.Families)
	clone.Segments = cloneRaw(o.Segments)
	clone.Packages = cloneRaw(o.Packages)
	clone.Redeemables = cloneRaw(o.Redeemables)
	return clone
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	dup := make(json.RawMessage, len(raw))
	copy(dup, raw)
	return dup
}
