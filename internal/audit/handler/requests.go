package handler

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// AppendEventRequest is the HTTP request body for POST /audit/events. The
// hash field is not accepted from callers; the log computes it.
type AppendEventRequest struct {
	EventID           string         `json:"event_id"`
	EventType         string         `json:"event_type"`
	Actor             string         `json:"actor"`
	Timestamp         time.Time      `json:"timestamp"`
	Payload           map[string]any `json:"payload"`
	PreviousEventHash *string        `json:"previous_event_hash"`
}

// Validate checks structural requirements and defaults the event id.
func (r *AppendEventRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if strings.TrimSpace(r.EventType) == "" {
		return dErrors.New(dErrors.CodeValidation, "event_type is required")
	}
	if strings.TrimSpace(r.Actor) == "" {
		return dErrors.New(dErrors.CodeValidation, "actor is required")
	}
	if r.Timestamp.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "timestamp is required")
	}

	if strings.TrimSpace(r.EventID) == "" {
		r.EventID = uuid.NewString()
	}
	if r.Payload == nil {
		r.Payload = map[string]any{}
	}

	return nil
}

// Event returns the validated event, hash absent, ready for append.
func (r *AppendEventRequest) Event() domain.AuditEvent {
	return domain.AuditEvent{
		EventID:           r.EventID,
		EventType:         r.EventType,
		Actor:             r.Actor,
		Timestamp:         r.Timestamp,
		Payload:           r.Payload,
		PreviousEventHash: r.PreviousEventHash,
	}
}
