package domain

import "time"

// RequirementLink points a packet at a versioned upstream requirement.
type RequirementLink struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// RiskControlLink ties a risk to its mitigating control, with a verification
// flag and a severity string gating whether verification is mandatory.
type RiskControlLink struct {
	RiskID    string `json:"risk_id"`
	ControlID string `json:"control_id"`
	Verified  bool   `json:"verified"`
	Severity  string `json:"severity"`
}

// AcceptanceCriterion is a testable handoff condition, backed by evidence.
type AcceptanceCriterion struct {
	ID                 string `json:"id"`
	Statement          string `json:"statement"`
	VerificationMethod string `json:"verification_method"`
	EvidenceRef        string `json:"evidence_ref"`
}

// ApprovalLogEntry records one sign-off decision by a role.
type ApprovalLogEntry struct {
	SignerRole string    `json:"signer_role"`
	Decision   string    `json:"decision"`
	Timestamp  time.Time `json:"timestamp"`
	Comment    string    `json:"comment,omitempty"`
}

// HandoffPacket is a cross-team transfer record under acceptability review.
type HandoffPacket struct {
	PacketID           string                `json:"packet_id"`
	Title              string                `json:"title"`
	OwnerAgent         string                `json:"owner_agent"`
	TargetAgent        string                `json:"target_agent"`
	SourceRequirements []RequirementLink     `json:"source_requirements"`
	RiskControls       []RiskControlLink     `json:"risk_controls"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptance_criteria"`
	EvidenceIndex      []string              `json:"evidence_index"`
	RequiredApprovers  []string              `json:"required_approvers"`
	ApprovalLog        []ApprovalLogEntry    `json:"approval_log"`
	BlockerDefectsOpen int                   `json:"blocker_defects_open"`
	ApprovedException  bool                  `json:"approved_exception"`
}
