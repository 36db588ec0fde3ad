// Package intake evaluates device-intake records against the submission
// gating rules. This is pure domain logic - no I/O, no side effects. All rules
// always run so one response can report every violation at once.
package intake

import (
	"fmt"
	"sort"
	"strings"

	"reggate/internal/domain"
)

// Issue codes emitted by the intake gates.
const (
	CodeIntendedUseGate           = "GATE-01-INTENDED-USE"
	CodeMarketScopeGate           = "GATE-02-MARKET-SCOPE"
	CodeRiskClassDuplicate        = "GATE-03-RISK-CLASS-DUPLICATE"
	CodeRiskClassMissingTarget    = "GATE-03-RISK-CLASS-MISSING-TARGET-MARKET"
	CodeRiskClassExtraneous       = "GATE-03-RISK-CLASS-EXTRANEOUS-MARKET"
	CodeLowConfidenceNoMitigation = "RISK-LOW-CONFIDENCE-WITHOUT-MITIGATION"
	CodeTechBoundaryGate          = "GATE-04-TECH-BOUNDARY"
	CodeClinicalStrategyGate      = "GATE-05-CLINICAL-STRATEGY"
	CodeAdaptiveMLMonitoring      = "CONSISTENCY-ADAPTIVE-ML-MONITORING"
)

// IntendedUseRequiredKeys are the sub-elements every intended-use map must
// carry.
var IntendedUseRequiredKeys = []string{
	"clinical_condition",
	"target_population",
	"intended_user",
	"use_environment",
	"primary_output_and_decision_impact",
	"exclusions_or_contraindications",
}

// TechRequiredKeys are the sub-elements every technology map must carry.
var TechRequiredKeys = []string{
	"product_modality",
	"primary_technical_mechanism",
	"data_inputs_and_dependencies",
	"ai_ml_behavior",
}

// Result is the outcome of intake validation. Valid is true iff no issues
// were emitted.
type Result struct {
	Valid  bool                     `json:"valid"`
	Issues []domain.ValidationIssue `json:"issues"`
}

// Validator evaluates intake payloads. It is stateless; the type exists so
// the handler can take it through a service seam.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every gate over the payload and accumulates issues. Later
// rules are never short-circuited by earlier failures.
func (v *Validator) Validate(payload domain.IntakePayload) Result {
	issues := []domain.ValidationIssue{}

	if missing := missingKeys(payload.IntendedUse, IntendedUseRequiredKeys); len(missing) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeIntendedUseGate,
			fmt.Sprintf("Missing intended_use sub-elements: %v", missing),
		))
	}

	if len(payload.TargetMarkets) == 0 || payload.PrimaryLaunchMarket == "" {
		issues = append(issues, domain.NewIssue(
			CodeMarketScopeGate,
			"Target markets and primary launch market are required.",
		))
	}

	issues = append(issues, riskClassIssues(payload)...)

	for _, entry := range payload.RiskClass {
		if entry.Confidence == domain.ConfidenceLow && entry.MitigationPlan == "" {
			issues = append(issues, domain.NewIssue(
				CodeLowConfidenceNoMitigation,
				fmt.Sprintf("Low-confidence risk class for %s requires mitigation plan.", entry.Market),
			))
		}
	}

	if missing := missingTechKeys(payload.Technology, TechRequiredKeys); len(missing) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeTechBoundaryGate,
			fmt.Sprintf("Missing technology sub-elements: %v", missing),
		))
	}

	if len(payload.ClinicalStrategy.PrimaryEndpoints) == 0 || len(payload.ClinicalStrategy.AcceptanceCriteria) == 0 {
		issues = append(issues, domain.NewIssue(
			CodeClinicalStrategyGate,
			"Clinical strategy requires primary endpoints and acceptance criteria.",
		))
	}

	aiBehavior := strings.ToLower(payload.Technology["ai_ml_behavior"].String())
	if strings.Contains(aiBehavior, "adaptive") && payload.ClinicalStrategy.LifecycleMonitoringPlan == "" {
		issues = append(issues, domain.NewIssue(
			CodeAdaptiveMLMonitoring,
			"Adaptive ML requires lifecycle performance monitoring plan.",
		))
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

// riskClassIssues runs the three per-market integrity sub-checks off one
// frequency count of risk-class markets against the target-market set.
func riskClassIssues(payload domain.IntakePayload) []domain.ValidationIssue {
	issues := []domain.ValidationIssue{}

	marketCounts := make(map[string]int, len(payload.RiskClass))
	for _, entry := range payload.RiskClass {
		marketCounts[entry.Market]++
	}

	targetSet := make(map[string]struct{}, len(payload.TargetMarkets))
	for _, market := range payload.TargetMarkets {
		targetSet[market] = struct{}{}
	}

	var duplicates []string
	for market, count := range marketCounts {
		if count > 1 {
			duplicates = append(duplicates, market)
		}
	}
	sort.Strings(duplicates)
	if len(duplicates) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeRiskClassDuplicate,
			fmt.Sprintf("Duplicate risk class entries found for markets: %v", duplicates),
		))
	}

	var missingTargets []string
	for market := range targetSet {
		if marketCounts[market] == 0 {
			missingTargets = append(missingTargets, market)
		}
	}
	sort.Strings(missingTargets)
	if len(missingTargets) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeRiskClassMissingTarget,
			fmt.Sprintf("Missing risk class entries for target markets: %v", missingTargets),
		))
	}

	var extraneous []string
	for market := range marketCounts {
		if _, ok := targetSet[market]; !ok {
			extraneous = append(extraneous, market)
		}
	}
	sort.Strings(extraneous)
	if len(extraneous) > 0 {
		issues = append(issues, domain.NewIssue(
			CodeRiskClassExtraneous,
			fmt.Sprintf("Risk class entries found for non-target markets: %v", extraneous),
		))
	}

	return issues
}

func missingKeys(m map[string]string, required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

func missingTechKeys(m map[string]domain.StringOrList, required []string) []string {
	var missing []string
	for _, key := range required {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
