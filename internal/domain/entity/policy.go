package entity

// PolicyExpirationRule is one expiration rule carried by a role management
// policy assignment. TargetLevel distinguishes activation-time limits
// ("Assignment") from eligibility-time limits ("Eligibility"); TargetCaller
// distinguishes end-user activation from admin assignment.
type PolicyExpirationRule struct {
	TargetLevel     string `json:"target_level"`
	TargetCaller    string `json:"target_caller"`
	MaximumDuration string `json:"maximum_duration"`
}

// PolicyAssignment binds the expiration rules of a role management policy
// to a role definition within a scope.
type PolicyAssignment struct {
	RoleDefinitionID string                 `json:"role_definition_id"`
	ExpirationRules  []PolicyExpirationRule `json:"expiration_rules"`
}
