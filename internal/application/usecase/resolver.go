package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/repository"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// PolicyDurationResolver resolves, per role definition, the maximum
// self-activation duration permitted by the role management policies bound
// to a scope. Results are memoized by scope for the lifetime of the run, so
// a scope shared by several subscriptions or entitlements is queried once.
type PolicyDurationResolver struct {
	azureRepo repository.AzureRepository
	console   types.ConsoleInterface

	mu    sync.Mutex
	cache map[string]map[string]string
}

// NewPolicyDurationResolver creates a new policy duration resolver.
func NewPolicyDurationResolver(azureRepo repository.AzureRepository, console types.ConsoleInterface) *PolicyDurationResolver {
	return &PolicyDurationResolver{
		azureRepo: azureRepo,
		console:   console,
		cache:     make(map[string]map[string]string),
	}
}

// Resolve devolve o mapeamento roleDefinitionID -> duração máxima (ISO-8601)
// para o scope. Falha na consulta é suave: devolve (e memoiza) um mapa vazio,
// e cada role sob esse scope usa a duração de fallback.
func (r *PolicyDurationResolver) Resolve(ctx context.Context, scope string) map[string]string {
	key := strings.ToLower(scope)

	r.mu.Lock()
	if durations, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return durations
	}
	r.mu.Unlock()

	durations := make(map[string]string)

	assignments, err := r.azureRepo.ListPolicyAssignments(ctx, scope)
	if err != nil {
		r.console.LogWarning("Could not list role management policies for scope %s: %s", scope, err)
	} else {
		for _, assignment := range assignments {
			for _, rule := range assignment.ExpirationRules {
				if !isActivationExpirationRule(rule.TargetLevel, rule.TargetCaller) {
					continue
				}
				if rule.MaximumDuration == "" {
					continue
				}
				durations[assignment.RoleDefinitionID] = rule.MaximumDuration
				break
			}
		}
	}

	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		// Outra goroutine resolveu primeiro; a primeira escrita vence.
		r.mu.Unlock()
		return cached
	}
	r.cache[key] = durations
	r.mu.Unlock()

	return durations
}

// isActivationExpirationRule identifies the rule that limits end-user
// activation time: target level "Assignment" (not "Eligibility"), raised by
// the end-user caller. A rule without a caller is accepted as well.
func isActivationExpirationRule(targetLevel, targetCaller string) bool {
	if !strings.EqualFold(targetLevel, "Assignment") {
		return false
	}
	return targetCaller == "" || strings.EqualFold(targetCaller, "EndUser")
}
