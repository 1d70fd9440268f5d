package usecase

import (
	"context"
	"strings"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/repository"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// statusProvisioned é o único status de assignment considerado "ativo".
const statusProvisioned = "Provisioned"

// EntitlementScanner discovers the currently active assignments and the
// eligible entitlements of one subscription.
type EntitlementScanner struct {
	azureRepo repository.AzureRepository
	console   types.ConsoleInterface
}

// NewEntitlementScanner creates a new entitlement scanner.
func NewEntitlementScanner(azureRepo repository.AzureRepository, console types.ConsoleInterface) *EntitlementScanner {
	return &EntitlementScanner{
		azureRepo: azureRepo,
		console:   console,
	}
}

// Scan busca os assignments ativos e as elegibilidades de uma subscription.
// Falhas de listagem degradam para conjuntos vazios: um erro aqui só faz uma
// role ser pulada nesta execução, nunca aborta a subscription.
func (s *EntitlementScanner) Scan(ctx context.Context, subscriptionID string) ([]entity.ActiveAssignment, []entity.RoleEntitlement) {
	var active []entity.ActiveAssignment

	assignments, err := s.azureRepo.ListActiveAssignments(ctx, subscriptionID)
	if err != nil {
		s.console.LogWarning("Could not list active assignments for subscription %s: %s", subscriptionID, err)
	} else {
		for _, assignment := range assignments {
			if strings.EqualFold(assignment.Status, statusProvisioned) {
				active = append(active, assignment)
			}
		}
	}

	eligibilities, err := s.azureRepo.ListEligibleEntitlements(ctx, subscriptionID)
	if err != nil {
		s.console.LogWarning("Could not list eligible roles for subscription %s: %s", subscriptionID, err)
		return active, nil
	}

	return active, dedupeEntitlements(filterSupportedScopes(eligibilities))
}

// filterSupportedScopes mantém apenas elegibilidades de subscription ou de
// resource group; outros tipos (management group, etc.) não são suportados.
func filterSupportedScopes(eligibilities []entity.RoleEntitlement) []entity.RoleEntitlement {
	var supported []entity.RoleEntitlement
	for _, e := range eligibilities {
		switch strings.ToLower(e.ScopeType) {
		case "subscription", "resourcegroup":
			supported = append(supported, e)
		}
	}
	return supported
}

// dedupeEntitlements keeps the first entitlement seen per distinct
// (display name, scope) pair, preserving the upstream listing order.
func dedupeEntitlements(eligibilities []entity.RoleEntitlement) []entity.RoleEntitlement {
	seen := make(map[string]bool, len(eligibilities))
	var deduped []entity.RoleEntitlement
	for _, e := range eligibilities {
		key := strings.ToLower(e.RoleDisplayName) + "|" + strings.ToLower(e.Scope)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, e)
	}
	return deduped
}
