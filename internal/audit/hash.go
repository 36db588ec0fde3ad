package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// nullHash is the textual stand-in for an absent previous-event hash, so the
// first event of a chain still hashes deterministically.
const nullHash = "null"

// ComputeHash returns the SHA-256 hex digest identifying an event. The digest
// covers every field except the hash itself; the payload contributes its
// RFC 8785 (JCS) canonical form, so two structurally equal payloads hash
// identically regardless of key insertion order, while any nested value
// change alters the digest.
func ComputeHash(event domain.AuditEvent) (string, error) {
	canonicalPayload, err := canonicalizePayload(event.Payload)
	if err != nil {
		return "", err
	}

	previous := nullHash
	if event.PreviousEventHash != nil {
		previous = *event.PreviousEventHash
	}

	material := fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		event.EventID,
		event.EventType,
		event.Actor,
		event.Timestamp.UTC().Format(time.RFC3339Nano),
		previous,
		canonicalPayload,
	)
	sum := sha256.Sum256([]byte(material))
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizePayload(payload map[string]any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", dErrors.Wrap(dErrors.CodeBadRequest, "payload is not JSON-encodable", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", dErrors.Wrap(dErrors.CodeBadRequest, "payload canonicalization failed", err)
	}
	return string(canonical), nil
}
