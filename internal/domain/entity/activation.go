package entity

import "time"

// ActivationRequest is the payload for one self-activation write. RequestID
// must be unique per submission; the same ID is never reused across attempts.
type ActivationRequest struct {
	RequestID        string    `json:"request_id"`
	PrincipalID      string    `json:"principal_id"`
	RoleDefinitionID string    `json:"role_definition_id"`
	Justification    string    `json:"justification"`
	Duration         string    `json:"duration"`
	StartTime        time.Time `json:"start_time"`
}

// ActivationOutcome classifies the result of processing one entitlement.
type ActivationOutcome string

const (
	OutcomeActivated     ActivationOutcome = "activated"
	OutcomeAlreadyActive ActivationOutcome = "already-active"
	OutcomeFailed        ActivationOutcome = "failed"
)

// ActivationRecord is the per-role outcome collected for the run summary
// and for report export.
type ActivationRecord struct {
	Subscription  string            `json:"subscription"`
	RoleName      string            `json:"role_name"`
	Scope         string            `json:"scope"`
	Outcome       ActivationOutcome `json:"outcome"`
	DurationHours float64           `json:"duration_hours,omitempty"`
	Error         string            `json:"error,omitempty"`
}
