package handler

import (
	"slices"
	"strings"

	"reggate/internal/domain"
	dErrors "reggate/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /intake/validate. It is
// the schema layer: shape and enum checks plus the construction invariant
// live here, so the validator only ever sees well-formed payloads.
type ValidateRequest struct {
	domain.IntakePayload
}

// Validate checks structural requirements and enforces that the primary
// launch market is one of the target markets. A violation fails the whole
// payload; it is not collected as a validation issue.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if !r.DeviceClass.Valid() {
		return dErrors.New(dErrors.CodeValidation, "device_class must be one of I, II, III, Unclassified")
	}
	if r.IntendedUse == nil {
		return dErrors.New(dErrors.CodeValidation, "intended_use is required")
	}
	if r.Technology == nil {
		return dErrors.New(dErrors.CodeValidation, "technology is required")
	}

	for i := range r.RiskClass {
		if strings.TrimSpace(r.RiskClass[i].Market) == "" {
			return dErrors.New(dErrors.CodeValidation, "risk_class entries require a market")
		}
		if !r.RiskClass[i].Confidence.Valid() {
			return dErrors.New(dErrors.CodeValidation, "risk_class confidence must be one of low, medium, high")
		}
	}

	if !slices.Contains(r.TargetMarkets, r.PrimaryLaunchMarket) {
		return dErrors.New(dErrors.CodeValidation, "primary_launch_market must be one of target_markets")
	}

	return nil
}

// Payload returns the validated intake payload.
func (r *ValidateRequest) Payload() domain.IntakePayload {
	return r.IntakePayload
}
