package repository

import (
	"context"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
)

// AzureRepository defines the interface for Azure management plane interactions.
type AzureRepository interface {
	// Subscription Operations
	GetSubscription(ctx context.Context, subscriptionID string) (entity.Subscription, error)

	// PIM Read Operations
	ListActiveAssignments(ctx context.Context, subscriptionID string) ([]entity.ActiveAssignment, error)
	ListEligibleEntitlements(ctx context.Context, subscriptionID string) ([]entity.RoleEntitlement, error)
	ListPolicyAssignments(ctx context.Context, scope string) ([]entity.PolicyAssignment, error)

	// PIM Write Operations
	SubmitActivation(ctx context.Context, scope string, request entity.ActivationRequest) error
}
