// Package evidence applies the statement/evidence linkage policy: a claim is
// only as strong as its weakest linked evidence. This is pure domain logic -
// no I/O, no side effects.
package evidence

import (
	"fmt"
	"sort"

	"reggate/internal/domain"
)

const noEvidenceReason = "No linked evidence object found."

// Index holds the per-request lookups the policy needs, derived by the caller
// from the evidence objects accompanying a validation request.
type Index struct {
	IDs           map[string]struct{}
	Confidence    map[string]domain.ConfidenceLevel
	Jurisdictions map[string][]string
}

// BuildIndex precomputes policy lookups from raw evidence objects.
func BuildIndex(objects []domain.EvidenceObject) Index {
	idx := Index{
		IDs:           make(map[string]struct{}, len(objects)),
		Confidence:    make(map[string]domain.ConfidenceLevel, len(objects)),
		Jurisdictions: make(map[string][]string, len(objects)),
	}
	for _, obj := range objects {
		idx.IDs[obj.ID] = struct{}{}
		idx.Confidence[obj.ID] = obj.Confidence
		idx.Jurisdictions[obj.ID] = obj.JurisdictionRelevance
	}
	return idx
}

// Policy evaluates statement candidates against known evidence. Stateless.
type Policy struct{}

func NewPolicy() *Policy {
	return &Policy{}
}

// ValidateStatements produces one result per candidate, in input order.
// Confidence propagates conservatively: the minimum level across all linked
// evidence, never an average. When a statement names target jurisdictions its
// linked evidence does not cover, the mismatch detail is attached; the
// statement still validates (the detail is informational, not blocking).
func (p *Policy) ValidateStatements(statements []domain.StatementCandidate, idx Index) []domain.StatementValidationResult {
	results := make([]domain.StatementValidationResult, 0, len(statements))

	for _, candidate := range statements {
		if len(candidate.EvidenceIDs) == 0 {
			results = append(results, domain.StatementValidationResult{
				Statement: candidate.Statement,
				Status:    domain.StatementStatusMissingEvidence,
				Reason:    noEvidenceReason,
			})
			continue
		}

		var unknownIDs []string
		for _, id := range candidate.EvidenceIDs {
			if _, ok := idx.IDs[id]; !ok {
				unknownIDs = append(unknownIDs, id)
			}
		}
		if len(unknownIDs) > 0 {
			results = append(results, domain.StatementValidationResult{
				Statement: candidate.Statement,
				Status:    domain.StatementStatusMissingEvidence,
				Reason:    fmt.Sprintf("Unknown evidence IDs: %v", unknownIDs),
			})
			continue
		}

		confidence := idx.Confidence[candidate.EvidenceIDs[0]]
		for _, id := range candidate.EvidenceIDs[1:] {
			confidence = domain.MinConfidence(confidence, idx.Confidence[id])
		}

		results = append(results, domain.StatementValidationResult{
			Statement:            candidate.Statement,
			Status:               domain.StatementStatusOK,
			Confidence:           confidence,
			JurisdictionMismatch: jurisdictionMismatch(candidate, idx),
		})
	}

	return results
}

// jurisdictionMismatch compares a statement's target jurisdictions against the
// union of its linked evidence's jurisdiction relevance. Nil when every target
// is covered or no targets were named.
func jurisdictionMismatch(candidate domain.StatementCandidate, idx Index) *domain.JurisdictionMismatchDetail {
	if len(candidate.TargetJurisdictions) == 0 {
		return nil
	}

	covered := make(map[string]struct{})
	perEvidence := make(map[string][]string, len(candidate.EvidenceIDs))
	for _, id := range candidate.EvidenceIDs {
		perEvidence[id] = idx.Jurisdictions[id]
		for _, jurisdiction := range idx.Jurisdictions[id] {
			covered[jurisdiction] = struct{}{}
		}
	}

	var missing []string
	for _, target := range candidate.TargetJurisdictions {
		if _, ok := covered[target]; !ok {
			missing = append(missing, target)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	coveredList := make([]string, 0, len(covered))
	for jurisdiction := range covered {
		coveredList = append(coveredList, jurisdiction)
	}
	sort.Strings(coveredList)

	required := append([]string(nil), candidate.TargetJurisdictions...)
	sort.Strings(required)

	return &domain.JurisdictionMismatchDetail{
		RequiredJurisdictions: required,
		CoveredJurisdictions:  coveredList,
		MissingJurisdictions:  missing,
		EvidenceJurisdictions: perEvidence,
	}
}
