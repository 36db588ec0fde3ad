package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reggate/internal/domain"
	"reggate/internal/evidence"
)

// The policy is a pure function, so the handler tests run it for real instead
// of mocking the seam.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := New(evidence.NewPolicy(), logger, nil)
	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func TestValidateStatementsDerivesLookupsFromEvidenceObjects(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"statements": []map[string]any{
			{"statement": "Linked claim", "evidence_ids": []string{"EV-1", "EV-2"}},
			{"statement": "Unlinked claim", "evidence_ids": []string{}},
		},
		"evidence_objects": []map[string]any{
			{
				"id":                     "EV-1",
				"source":                 "standards library",
				"version":                "v1",
				"owner":                  "RA",
				"timestamp":              time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
				"jurisdiction_relevance": []string{"US"},
				"confidence":             "high",
			},
			{
				"id":                     "EV-2",
				"source":                 "clinical study",
				"version":                "v2",
				"owner":                  "Clinical",
				"timestamp":              time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
				"jurisdiction_relevance": []string{"US", "EU"},
				"confidence":             "low",
			},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/evidence/statements/validate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var results []domain.StatementValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, domain.StatementStatusOK, results[0].Status)
	assert.Equal(t, domain.ConfidenceLow, results[0].Confidence)

	assert.Equal(t, domain.StatementStatusMissingEvidence, results[1].Status)
	assert.Equal(t, "No linked evidence object found.", results[1].Reason)
	assert.Empty(t, results[1].Confidence)
}

func TestValidateStatementsEmptyEvidenceList(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"statements": []map[string]any{
			{"statement": "Claim with no links", "evidence_ids": []string{}},
		},
		"evidence_objects": []map[string]any{},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/evidence/statements/validate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var results []domain.StatementValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, domain.StatementStatusMissingEvidence, results[0].Status)
}

func TestValidateStatementsRejectsBadConfidence(t *testing.T) {
	r := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"statements": []map[string]any{},
		"evidence_objects": []map[string]any{
			{"id": "EV-1", "confidence": "certain", "timestamp": time.Now()},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/evidence/statements/validate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp["error"])
}
