package evidence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reggate/internal/domain"
)

func testEvidence(id string, confidence domain.ConfidenceLevel, jurisdictions ...string) domain.EvidenceObject {
	return domain.EvidenceObject{
		ID:                    id,
		Source:                "standards library",
		Version:               "v1",
		Owner:                 "RA",
		Timestamp:             time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		JurisdictionRelevance: jurisdictions,
		Confidence:            confidence,
	}
}

func TestStatementWithoutEvidenceIsMissing(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex(nil)

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{Statement: "Claim with no links"},
	}, idx)

	require.Len(t, results, 1)
	assert.Equal(t, domain.StatementStatusMissingEvidence, results[0].Status)
	assert.Equal(t, "No linked evidence object found.", results[0].Reason)
	assert.Empty(t, results[0].Confidence)
}

func TestUnknownEvidenceIDsReportedInInputOrder(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex([]domain.EvidenceObject{testEvidence("EV-1", domain.ConfidenceHigh)})

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{Statement: "Partially linked", EvidenceIDs: []string{"EV-9", "EV-1", "EV-7"}},
	}, idx)

	require.Len(t, results, 1)
	assert.Equal(t, domain.StatementStatusMissingEvidence, results[0].Status)
	assert.Equal(t, "Unknown evidence IDs: [EV-9 EV-7]", results[0].Reason)
	assert.Empty(t, results[0].Confidence)
}

func TestConfidenceIsMinimumAcrossLinkedEvidence(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex([]domain.EvidenceObject{
		testEvidence("EV-1", domain.ConfidenceHigh),
		testEvidence("EV-2", domain.ConfidenceLow),
		testEvidence("EV-3", domain.ConfidenceMedium),
	})

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{Statement: "Weakest link wins", EvidenceIDs: []string{"EV-1", "EV-2", "EV-3"}},
		{Statement: "Single strong link", EvidenceIDs: []string{"EV-1"}},
	}, idx)

	require.Len(t, results, 2)
	assert.Equal(t, domain.StatementStatusOK, results[0].Status)
	assert.Equal(t, domain.ConfidenceLow, results[0].Confidence)
	assert.Equal(t, domain.ConfidenceHigh, results[1].Confidence)
}

func TestResultsPreserveInputOrder(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex([]domain.EvidenceObject{testEvidence("EV-1", domain.ConfidenceMedium)})

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{Statement: "first", EvidenceIDs: []string{"EV-1"}},
		{Statement: "second"},
		{Statement: "third", EvidenceIDs: []string{"EV-1"}},
	}, idx)

	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Statement)
	assert.Equal(t, "second", results[1].Statement)
	assert.Equal(t, "third", results[2].Statement)
}

func TestJurisdictionMismatchPopulatedWhenUncovered(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex([]domain.EvidenceObject{
		testEvidence("EV-1", domain.ConfidenceHigh, "US"),
		testEvidence("EV-2", domain.ConfidenceHigh, "US", "UK"),
	})

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{
			Statement:           "Needs EU coverage",
			EvidenceIDs:         []string{"EV-1", "EV-2"},
			TargetJurisdictions: []string{"US", "EU"},
		},
	}, idx)

	require.Len(t, results, 1)
	assert.Equal(t, domain.StatementStatusOK, results[0].Status)
	detail := results[0].JurisdictionMismatch
	require.NotNil(t, detail)
	assert.Equal(t, []string{"EU", "US"}, detail.RequiredJurisdictions)
	assert.Equal(t, []string{"UK", "US"}, detail.CoveredJurisdictions)
	assert.Equal(t, []string{"EU"}, detail.MissingJurisdictions)
	assert.Equal(t, []string{"US"}, detail.EvidenceJurisdictions["EV-1"])
}

func TestJurisdictionMismatchNilWhenCovered(t *testing.T) {
	policy := NewPolicy()
	idx := BuildIndex([]domain.EvidenceObject{
		testEvidence("EV-1", domain.ConfidenceMedium, "US", "EU"),
	})

	results := policy.ValidateStatements([]domain.StatementCandidate{
		{
			Statement:           "Fully covered",
			EvidenceIDs:         []string{"EV-1"},
			TargetJurisdictions: []string{"US", "EU"},
		},
		{
			Statement:   "No targets named",
			EvidenceIDs: []string{"EV-1"},
		},
	}, idx)

	require.Len(t, results, 2)
	assert.Nil(t, results[0].JurisdictionMismatch)
	assert.Nil(t, results[1].JurisdictionMismatch)
}

func TestBuildIndexCollectsAllLookups(t *testing.T) {
	idx := BuildIndex([]domain.EvidenceObject{
		testEvidence("EV-1", domain.ConfidenceLow, "US"),
		testEvidence("EV-2", domain.ConfidenceHigh),
	})

	assert.Len(t, idx.IDs, 2)
	assert.Equal(t, domain.ConfidenceLow, idx.Confidence["EV-1"])
	assert.Equal(t, []string{"US"}, idx.Jurisdictions["EV-1"])
	assert.Empty(t, idx.Jurisdictions["EV-2"])
}
