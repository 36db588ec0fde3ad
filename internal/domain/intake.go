package domain

import (
	"encoding/json"
	"strings"
)

// DeviceClass is the regulatory classification of the submitted device.
type DeviceClass string

const (
	DeviceClassI            DeviceClass = "I"
	DeviceClassII           DeviceClass = "II"
	DeviceClassIII          DeviceClass = "III"
	DeviceClassUnclassified DeviceClass = "Unclassified"
)

// Valid reports whether the class is one of the defined values.
func (d DeviceClass) Valid() bool {
	switch d {
	case DeviceClassI, DeviceClassII, DeviceClassIII, DeviceClassUnclassified:
		return true
	}
	return false
}

// StringOrList accepts either a JSON string or a list of strings. Intake
// attribute maps carry both shapes (e.g. a single modality vs. a list of data
// inputs).
type StringOrList []string

func (s *StringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringOrList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringOrList(many)
	return nil
}

func (s StringOrList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

// String flattens the value for substring checks and messages.
func (s StringOrList) String() string {
	return strings.Join(s, ", ")
}

// RiskClassEntry is one per-market risk classification proposal.
type RiskClassEntry struct {
	Market                 string          `json:"market"`
	ProposedClassification string          `json:"proposed_classification"`
	Rationale              string          `json:"rationale"`
	Confidence             ConfidenceLevel `json:"confidence"`
	OpenQuestions          []string        `json:"open_questions"`
	MitigationPlan         string          `json:"mitigation_plan,omitempty"`
}

// ClinicalStrategy captures the evidence-generation plan for the submission.
type ClinicalStrategy struct {
	EvidenceSources         []string `json:"evidence_sources"`
	StudyDesignAssumptions  []string `json:"study_design_assumptions"`
	PrimaryEndpoints        []string `json:"primary_endpoints"`
	AcceptanceCriteria      []string `json:"acceptance_criteria"`
	GapsAndMitigationPlan   string   `json:"gaps_and_mitigation_plan"`
	LifecycleMonitoringPlan string   `json:"lifecycle_monitoring_plan,omitempty"`
}

// SoftwareHardwareScope bounds the technical system under review.
type SoftwareHardwareScope struct {
	SoftwareComponents           []string `json:"software_components"`
	HardwareComponents           []string `json:"hardware_components"`
	ExternalInterfaces           []string `json:"external_interfaces"`
	CybersecurityTrustBoundaries []string `json:"cybersecurity_trust_boundaries"`
}

// ManufacturingContext describes the quality-system setting the device ships
// from.
type ManufacturingContext struct {
	OrganizationModel            string   `json:"organization_model"`
	QMSStatus                    string   `json:"qms_status"`
	CriticalSuppliers            []string `json:"critical_suppliers"`
	ProcessControls              []string `json:"process_controls"`
	PostMarketChangeControlOwner string   `json:"post_market_change_control_owner"`
}

// IntakePayload is one device-submission record, fully typed by the transport
// layer before it reaches the validator. The transport enforces the
// construction invariant that PrimaryLaunchMarket is a member of TargetMarkets.
type IntakePayload struct {
	DeviceClass           DeviceClass             `json:"device_class"`
	IntendedUse           map[string]string       `json:"intended_use"`
	Technology            map[string]StringOrList `json:"technology"`
	SoftwareHardwareScope SoftwareHardwareScope   `json:"software_hardware_scope"`
	TargetMarkets         []string                `json:"target_markets"`
	PrimaryLaunchMarket   string                  `json:"primary_launch_market"`
	RiskClass             []RiskClassEntry        `json:"risk_class"`
	ClinicalStrategy      ClinicalStrategy        `json:"clinical_strategy"`
	ManufacturingContext  ManufacturingContext    `json:"manufacturing_context"`
}
