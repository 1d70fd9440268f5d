package entity

// RoleEntitlement represents one PIM role the caller is eligible for
// but does not necessarily hold right now.
type RoleEntitlement struct {
	RoleDefinitionID string `json:"role_definition_id"`
	RoleDisplayName  string `json:"role_display_name"`
	Scope            string `json:"scope"`
	ScopeType        string `json:"scope_type"`
	PrincipalID      string `json:"principal_id"`
}

// ActiveAssignment represents a role assignment schedule instance that is
// currently in force. Used only to decide whether an eligible role still
// needs activation.
type ActiveAssignment struct {
	RoleDefinitionID string `json:"role_definition_id"`
	Scope            string `json:"scope"`
	Status           string `json:"status"`
}
