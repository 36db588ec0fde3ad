// Package packet evaluates cross-team handoff packets against the
// acceptability rules. This is pure domain logic - no I/O, no side effects.
// All rules always run so one response can report every violation at once.
package packet

import (
	"fmt"
	"strings"

	"reggate/internal/domain"
)

// Issue codes emitted by the packet rules.
const (
	CodeAcceptanceEvidence = "PACKET-AC-EVIDENCE"
	CodeHighRiskControls   = "PACKET-HIGH-RISK-CONTROLS"
	CodeRequiredApprovals  = "PACKET-REQUIRED-APPROVALS"
	CodeBlockerDefects     = "PACKET-BLOCKER-DEFECTS"
)

const decisionApproved = "approved"

// Result is the outcome of packet validation. Acceptable is true iff no
// issues were emitted.
type Result struct {
	Acceptable bool                     `json:"acceptable"`
	Issues     []domain.ValidationIssue `json:"issues"`
}

// Validator evaluates handoff packets. Stateless.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every acceptability rule over the packet and accumulates
// issues.
func (v *Validator) Validate(pkt domain.HandoffPacket) Result {
	issues := []domain.ValidationIssue{}

	evidenceIndex := make(map[string]struct{}, len(pkt.EvidenceIndex))
	for _, id := range pkt.EvidenceIndex {
		evidenceIndex[id] = struct{}{}
	}
	var missingEvidenceRefs []string
	for _, ac := range pkt.AcceptanceCriteria {
		if _, ok := evidenceIndex[ac.EvidenceRef]; !ok {
			missingEvidenceRefs = append(missingEvidenceRefs, ac.ID)
		}
	}
	if len(missingEvidenceRefs) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeAcceptanceEvidence,
			fmt.Sprintf("Acceptance criteria missing evidence: %v", missingEvidenceRefs),
		))
	}

	var unverifiedHighRisks []string
	for _, rc := range pkt.RiskControls {
		if isHighSeverity(rc.Severity) && !rc.Verified {
			unverifiedHighRisks = append(unverifiedHighRisks, rc.RiskID)
		}
	}
	if len(unverifiedHighRisks) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeHighRiskControls,
			fmt.Sprintf("High-severity risks without verified controls: %v", unverifiedHighRisks),
		))
	}

	// Last entry per role wins when a role appears twice in the log.
	approverDecisions := make(map[string]string, len(pkt.ApprovalLog))
	for _, entry := range pkt.ApprovalLog {
		approverDecisions[entry.SignerRole] = strings.ToLower(entry.Decision)
	}
	var missingApprovers []string
	for _, role := range pkt.RequiredApprovers {
		if approverDecisions[role] != decisionApproved {
			missingApprovers = append(missingApprovers, role)
		}
	}
	if len(missingApprovers) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeRequiredApprovals,
			fmt.Sprintf("Missing required approvals: %v", missingApprovers),
		))
	}

	if pkt.BlockerDefectsOpen > 0 && !pkt.ApprovedException {
		issues = append(issues, domain.NewIssue(
			CodeBlockerDefects,
			"Open blocker defects present without approved exception.",
		))
	}

	return Result{Acceptable: len(issues) == 0, Issues: issues}
}

func isHighSeverity(severity string) bool {
	switch strings.ToLower(severity) {
	case "high", "critical":
		return true
	}
	return false
}
