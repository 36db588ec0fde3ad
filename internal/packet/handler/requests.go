package handler

import (
	"strings"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for
// POST /workflow/packets/validate.
type ValidateRequest struct {
	domain.HandoffPacket
}

// Validate checks the structural requirements on the packet. Acceptability
// rules are the validator's job, not the request's.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if strings.TrimSpace(r.PacketID) == "" {
		return dErrors.New(dErrors.CodeValidation, "packet_id is required")
	}
	if r.BlockerDefectsOpen < 0 {
		return dErrors.New(dErrors.CodeValidation, "blocker_defects_open must not be negative")
	}

	return nil
}

// Packet returns the validated handoff packet.
func (r *ValidateRequest) Packet() domain.HandoffPacket {
	return r.HandoffPacket
}
