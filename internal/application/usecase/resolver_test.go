package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
)

func TestResolvePicksEndUserAssignmentRule(t *testing.T) {
	mockRepo := &MockAzureRepository{}
	mockRepo.On("ListPolicyAssignments", mock.Anything, "/subscriptions/sub-1").Return([]entity.PolicyAssignment{
		{
			RoleDefinitionID: "role-a",
			ExpirationRules: []entity.PolicyExpirationRule{
				{TargetLevel: "Eligibility", TargetCaller: "Admin", MaximumDuration: "P365D"},
				{TargetLevel: "Assignment", TargetCaller: "Admin", MaximumDuration: "P180D"},
				{TargetLevel: "Assignment", TargetCaller: "EndUser", MaximumDuration: "PT4H"},
			},
		},
		{
			// Sem regra qualificada: não contribui com entrada.
			RoleDefinitionID: "role-b",
			ExpirationRules: []entity.PolicyExpirationRule{
				{TargetLevel: "Eligibility", TargetCaller: "Admin", MaximumDuration: "P365D"},
			},
		},
		{
			RoleDefinitionID: "role-c",
			ExpirationRules: []entity.PolicyExpirationRule{
				{TargetLevel: "Assignment", TargetCaller: "EndUser", MaximumDuration: ""},
			},
		},
	}, nil)

	resolver := NewPolicyDurationResolver(mockRepo, nopConsole{})
	durations := resolver.Resolve(context.Background(), "/subscriptions/sub-1")

	assert.Equal(t, map[string]string{"role-a": "PT4H"}, durations)
}

func TestResolveMemoizesPerScope(t *testing.T) {
	mockRepo := &MockAzureRepository{}
	mockRepo.On("ListPolicyAssignments", mock.Anything, "/subscriptions/sub-1").Return([]entity.PolicyAssignment{
		{
			RoleDefinitionID: "role-a",
			ExpirationRules: []entity.PolicyExpirationRule{
				{TargetLevel: "Assignment", TargetCaller: "EndUser", MaximumDuration: "PT8H"},
			},
		},
	}, nil).Once()

	resolver := NewPolicyDurationResolver(mockRepo, nopConsole{})
	first := resolver.Resolve(context.Background(), "/subscriptions/sub-1")
	// Scope equivalente com caixa diferente reutiliza a mesma entrada.
	second := resolver.Resolve(context.Background(), "/SUBSCRIPTIONS/SUB-1")

	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t)
}

func TestResolveFetchFailureYieldsEmptyMapping(t *testing.T) {
	mockRepo := &MockAzureRepository{}
	mockRepo.On("ListPolicyAssignments", mock.Anything, "/subscriptions/sub-1").Return(nil, errors.New("timeout")).Once()

	resolver := NewPolicyDurationResolver(mockRepo, nopConsole{})
	durations := resolver.Resolve(context.Background(), "/subscriptions/sub-1")

	assert.Empty(t, durations)

	// A falha também é memoizada: nenhuma nova consulta nesta execução.
	durations = resolver.Resolve(context.Background(), "/subscriptions/sub-1")
	assert.Empty(t, durations)
	mockRepo.AssertExpectations(t)
}
