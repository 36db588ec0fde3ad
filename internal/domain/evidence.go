package domain

import "time"

// EvidenceObject is an identified artifact backing a claim. Immutable once
// constructed; validators only read it.
type EvidenceObject struct {
	ID                    string          `json:"id"`
	Source                string          `json:"source"`
	Version               string          `json:"version"`
	Owner                 string          `json:"owner"`
	Timestamp             time.Time       `json:"timestamp"`
	JurisdictionRelevance []string        `json:"jurisdiction_relevance"`
	Confidence            ConfidenceLevel `json:"confidence"`
	Notes                 string          `json:"notes,omitempty"`
}

// StatementCandidate is a claim under evaluation. Evidence is referenced by id
// only; the candidate does not own the objects it points at.
type StatementCandidate struct {
	Statement           string   `json:"statement"`
	EvidenceIDs         []string `json:"evidence_ids"`
	TargetJurisdictions []string `json:"target_jurisdictions"`
}

// JurisdictionMismatchDetail describes target jurisdictions a statement's
// linked evidence does not cover.
type JurisdictionMismatchDetail struct {
	RequiredJurisdictions []string            `json:"required_jurisdictions"`
	CoveredJurisdictions  []string            `json:"covered_jurisdictions"`
	MissingJurisdictions  []string            `json:"missing_jurisdictions"`
	EvidenceJurisdictions map[string][]string `json:"evidence_jurisdictions"`
}

// Statement validation statuses.
const (
	StatementStatusOK              = "ok"
	StatementStatusMissingEvidence = "missing_evidence"
)

// StatementValidationResult is the per-statement outcome of evidence policy
// evaluation. Confidence is set only when status is ok.
type StatementValidationResult struct {
	Statement            string                      `json:"statement"`
	Confidence           ConfidenceLevel             `json:"confidence,omitempty"`
	Status               string                      `json:"status"`
	Reason               string                      `json:"reason,omitempty"`
	JurisdictionMismatch *JurisdictionMismatchDetail `json:"jurisdiction_mismatch,omitempty"`
}
