package handler

import (
	"fmt"
	"strings"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// ValidateStatementsRequest is the HTTP request body for
// POST /evidence/statements/validate.
type ValidateStatementsRequest struct {
	Statements      []domain.StatementCandidate `json:"statements"`
	EvidenceObjects []domain.EvidenceObject     `json:"evidence_objects"`
}

// Validate checks the structural requirements on the posted evidence objects.
// Statement-level problems (missing or unknown evidence) are policy results,
// not request errors.
func (r *ValidateStatementsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	for i, obj := range r.EvidenceObjects {
		if strings.TrimSpace(obj.ID) == "" {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("evidence_objects[%d].id is required", i))
		}
		if !obj.Confidence.Valid() {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("evidence_objects[%d].confidence must be one of low, medium, high", i))
		}
	}

	return nil
}
