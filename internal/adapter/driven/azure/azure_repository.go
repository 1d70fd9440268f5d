package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/repository"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// asTargetFilter restringe as listagens PIM às entradas do próprio caller.
const asTargetFilter = "asTarget()"

// AzureRepositoryImpl implementa o AzureRepository com cache de clientes ARM.
type AzureRepositoryImpl struct {
	cred        azcore.TokenCredential
	mu          sync.Mutex
	clientCache map[string]interface{}
}

// NewAzureRepository cria uma nova implementação do AzureRepository. A falha
// na aquisição de credenciais é o único erro fatal de toda a aplicação.
func NewAzureRepository() (repository.AzureRepository, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire Azure credentials: %w", err)
	}
	return &AzureRepositoryImpl{
		cred:        cred,
		clientCache: make(map[string]interface{}),
	}, nil
}

func (r *AzureRepositoryImpl) getClient(service string) (interface{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clientCache[service]; ok {
		return client, nil
	}

	var client interface{}
	var err error
	switch service {
	case "subscriptions":
		client, err = armsubscriptions.NewClient(r.cred, nil)
	case "assignment-instances":
		client, err = armauthorization.NewRoleAssignmentScheduleInstancesClient(r.cred, nil)
	case "eligibility-instances":
		client, err = armauthorization.NewRoleEligibilityScheduleInstancesClient(r.cred, nil)
	case "policy-assignments":
		client, err = armauthorization.NewRoleManagementPolicyAssignmentsClient(r.cred, nil)
	case "schedule-requests":
		client, err = armauthorization.NewRoleAssignmentScheduleRequestsClient(r.cred, nil)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", service, err)
	}

	r.clientCache[service] = client
	return client, nil
}

// GetSubscription busca os metadados de exibição de uma subscription.
func (r *AzureRepositoryImpl) GetSubscription(ctx context.Context, subscriptionID string) (entity.Subscription, error) {
	client, err := r.getClient("subscriptions")
	if err != nil {
		return entity.Subscription{}, err
	}
	subsClient := client.(*armsubscriptions.Client)

	result, err := subsClient.Get(ctx, subscriptionID, nil)
	if err != nil {
		return entity.Subscription{}, fmt.Errorf("error getting subscription %s: %w", subscriptionID, err)
	}

	return entity.Subscription{
		ID:          subscriptionID,
		DisplayName: deref(result.DisplayName),
	}, nil
}

// ListActiveAssignments lista as instâncias de role assignment schedule do
// caller na subscription, com o status bruto reportado pelo ARM.
func (r *AzureRepositoryImpl) ListActiveAssignments(ctx context.Context, subscriptionID string) ([]entity.ActiveAssignment, error) {
	client, err := r.getClient("assignment-instances")
	if err != nil {
		return nil, err
	}
	instancesClient := client.(*armauthorization.RoleAssignmentScheduleInstancesClient)

	var assignments []entity.ActiveAssignment
	pager := instancesClient.NewListForScopePager(subscriptionScope(subscriptionID),
		&armauthorization.RoleAssignmentScheduleInstancesClientListForScopeOptions{
			Filter: to.Ptr(asTargetFilter),
		})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing active assignments for subscription %s: %w", subscriptionID, err)
		}
		for _, instance := range page.Value {
			if instance == nil || instance.Properties == nil {
				continue
			}
			status := ""
			if instance.Properties.Status != nil {
				status = string(*instance.Properties.Status)
			}
			assignments = append(assignments, entity.ActiveAssignment{
				RoleDefinitionID: deref(instance.Properties.RoleDefinitionID),
				Scope:            deref(instance.Properties.Scope),
				Status:           status,
			})
		}
	}
	return assignments, nil
}

// ListEligibleEntitlements lista as elegibilidades do caller na subscription,
// com o tipo de scope vindo das expanded properties.
func (r *AzureRepositoryImpl) ListEligibleEntitlements(ctx context.Context, subscriptionID string) ([]entity.RoleEntitlement, error) {
	client, err := r.getClient("eligibility-instances")
	if err != nil {
		return nil, err
	}
	instancesClient := client.(*armauthorization.RoleEligibilityScheduleInstancesClient)

	var entitlements []entity.RoleEntitlement
	pager := instancesClient.NewListForScopePager(subscriptionScope(subscriptionID),
		&armauthorization.RoleEligibilityScheduleInstancesClientListForScopeOptions{
			Filter: to.Ptr(asTargetFilter),
		})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing eligible roles for subscription %s: %w", subscriptionID, err)
		}
		for _, instance := range page.Value {
			if instance == nil || instance.Properties == nil {
				continue
			}

			displayName := ""
			scopeType := ""
			if expanded := instance.Properties.ExpandedProperties; expanded != nil {
				if expanded.RoleDefinition != nil {
					displayName = deref(expanded.RoleDefinition.DisplayName)
				}
				if expanded.Scope != nil {
					scopeType = deref(expanded.Scope.Type)
				}
			}

			entitlements = append(entitlements, entity.RoleEntitlement{
				RoleDefinitionID: deref(instance.Properties.RoleDefinitionID),
				RoleDisplayName:  displayName,
				Scope:            deref(instance.Properties.Scope),
				ScopeType:        scopeType,
				PrincipalID:      deref(instance.Properties.PrincipalID),
			})
		}
	}
	return entitlements, nil
}

// ListPolicyAssignments lista as policy assignments do scope, reduzindo as
// effective rules às expiration rules que interessam ao resolver.
func (r *AzureRepositoryImpl) ListPolicyAssignments(ctx context.Context, scope string) ([]entity.PolicyAssignment, error) {
	client, err := r.getClient("policy-assignments")
	if err != nil {
		return nil, err
	}
	policiesClient := client.(*armauthorization.RoleManagementPolicyAssignmentsClient)

	var assignments []entity.PolicyAssignment
	pager := policiesClient.NewListForScopePager(scope, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing policy assignments for scope %s: %w", scope, err)
		}
		for _, assignment := range page.Value {
			if assignment == nil || assignment.Properties == nil {
				continue
			}

			mapped := entity.PolicyAssignment{
				RoleDefinitionID: deref(assignment.Properties.RoleDefinitionID),
			}
			for _, rule := range assignment.Properties.EffectiveRules {
				expiration, ok := rule.(*armauthorization.RoleManagementPolicyExpirationRule)
				if !ok || expiration.Target == nil {
					continue
				}
				mapped.ExpirationRules = append(mapped.ExpirationRules, entity.PolicyExpirationRule{
					TargetLevel:     deref(expiration.Target.Level),
					TargetCaller:    deref(expiration.Target.Caller),
					MaximumDuration: deref(expiration.MaximumDuration),
				})
			}
			assignments = append(assignments, mapped)
		}
	}
	return assignments, nil
}

// SubmitActivation cria um role assignment schedule request de self-activate
// no scope alvo. Conflitos ("já existe/já ativo") viram ErrActivationConflict
// para que o chamador os reclassifique como benignos.
func (r *AzureRepositoryImpl) SubmitActivation(ctx context.Context, scope string, request entity.ActivationRequest) error {
	client, err := r.getClient("schedule-requests")
	if err != nil {
		return err
	}
	requestsClient := client.(*armauthorization.RoleAssignmentScheduleRequestsClient)

	parameters := armauthorization.RoleAssignmentScheduleRequest{
		Properties: &armauthorization.RoleAssignmentScheduleRequestProperties{
			PrincipalID:      to.Ptr(request.PrincipalID),
			RoleDefinitionID: to.Ptr(request.RoleDefinitionID),
			RequestType:      to.Ptr(armauthorization.RequestTypeSelfActivate),
			Justification:    to.Ptr(request.Justification),
			ScheduleInfo: &armauthorization.RoleAssignmentScheduleRequestPropertiesScheduleInfo{
				StartDateTime: to.Ptr(request.StartTime),
				Expiration: &armauthorization.RoleAssignmentScheduleRequestPropertiesScheduleInfoExpiration{
					Type:     to.Ptr(armauthorization.TypeAfterDuration),
					Duration: to.Ptr(request.Duration),
				},
			},
		},
	}

	_, err = requestsClient.Create(ctx, scope, request.RequestID, parameters, nil)
	if err != nil {
		if isConflictResponse(err) {
			return fmt.Errorf("activation of %s at %s: %w", request.RoleDefinitionID, scope, types.ErrActivationConflict)
		}
		return fmt.Errorf("error submitting activation request: %w", err)
	}
	return nil
}

// isConflictResponse reconhece o contrato de conflito do ARM: código de erro
// estruturado ou HTTP 409.
func isConflictResponse(err error) bool {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	switch respErr.ErrorCode {
	case "RoleAssignmentExists", "RoleAssignmentRequestExists":
		return true
	}
	return respErr.StatusCode == http.StatusConflict
}

func subscriptionScope(subscriptionID string) string {
	return "/subscriptions/" + subscriptionID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
