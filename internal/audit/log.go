// Package audit maintains the tamper-evident workflow event log: an in-memory,
// append-only sequence where every event references the hash of its
// predecessor. Breaking the chain is the only way an append can fail.
package audit

import (
	"sync"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// ErrChainMismatch rejects an append whose previous_event_hash does not equal
// the hash of the last stored event (nil required on an empty log). It is a
// client fault, not a server one.
var ErrChainMismatch = dErrors.New(dErrors.CodeConflict, "previous_event_hash does not match the chain head")

// Log owns the ordered event sequence and is its sole mutator. A single lock
// serializes the read-head/validate/hash/push sequence so concurrent appends
// cannot both claim the same predecessor, and readers never observe a
// partially appended event.
type Log struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

func NewLog() *Log {
	return &Log{}
}

// Append validates chain linkage, computes and attaches the event's hash, and
// stores it. The stored event is returned. On rejection the log is untouched
// and no hash is computed for the event.
func (l *Log) Append(event domain.AuditEvent) (domain.AuditEvent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var expectedPrevious *string
	if n := len(l.events); n > 0 {
		expectedPrevious = l.events[n-1].Hash
	}
	if !hashRefsEqual(event.PreviousEventHash, expectedPrevious) {
		return domain.AuditEvent{}, ErrChainMismatch
	}

	hash, err := ComputeHash(event)
	if err != nil {
		return domain.AuditEvent{}, err
	}
	event.Hash = &hash

	l.events = append(l.events, event)
	return event, nil
}

// List returns the full sequence in append order. The slice is a copy; the
// stored events stay immutable.
func (l *Log) List() []domain.AuditEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.AuditEvent{}, l.events...)
}

// Length reports the number of appended events.
func (l *Log) Length() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// VerifyResult reports a chain walk. BrokenAt is the index of the first event
// whose linkage or recomputed hash failed, -1 when the chain is intact.
type VerifyResult struct {
	Intact   bool   `json:"intact"`
	Length   int    `json:"length"`
	BrokenAt int    `json:"broken_at"`
	Reason   string `json:"reason,omitempty"`
}

// Verify recomputes every stored hash and checks every linkage, reporting the
// first break. An empty log is trivially intact.
func (l *Log) Verify() VerifyResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var previous *string
	for i, event := range l.events {
		if !hashRefsEqual(event.PreviousEventHash, previous) {
			return VerifyResult{Length: len(l.events), BrokenAt: i, Reason: "previous_event_hash linkage broken"}
		}
		recomputed, err := ComputeHash(event)
		if err != nil {
			return VerifyResult{Length: len(l.events), BrokenAt: i, Reason: "stored payload no longer hashable"}
		}
		if event.Hash == nil || *event.Hash != recomputed {
			return VerifyResult{Length: len(l.events), BrokenAt: i, Reason: "stored hash does not match recomputation"}
		}
		previous = event.Hash
	}
	return VerifyResult{Intact: true, Length: len(l.events), BrokenAt: -1}
}

func hashRefsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
