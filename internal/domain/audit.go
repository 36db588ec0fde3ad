package domain

import "time"

// AuditEvent is an immutable, ordered workflow log record. Callers construct
// it without a hash; the audit log computes and attaches the hash exactly once
// at append time. PreviousEventHash is nil for the first event in a chain.
type AuditEvent struct {
	EventID           string         `json:"event_id"`
	EventType         string         `json:"event_type"`
	Actor             string         `json:"actor"`
	Timestamp         time.Time      `json:"timestamp"`
	Payload           map[string]any `json:"payload"`
	PreviousEventHash *string        `json:"previous_event_hash"`
	Hash              *string        `json:"hash,omitempty"`
}
