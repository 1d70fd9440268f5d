package usecase

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// MockAzureRepository implements the AzureRepository interface for testing
type MockAzureRepository struct {
	mock.Mock
}

func (m *MockAzureRepository) GetSubscription(ctx context.Context, subscriptionID string) (entity.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	return args.Get(0).(entity.Subscription), args.Error(1)
}

func (m *MockAzureRepository) ListActiveAssignments(ctx context.Context, subscriptionID string) ([]entity.ActiveAssignment, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ActiveAssignment), args.Error(1)
}

func (m *MockAzureRepository) ListEligibleEntitlements(ctx context.Context, subscriptionID string) ([]entity.RoleEntitlement, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RoleEntitlement), args.Error(1)
}

func (m *MockAzureRepository) ListPolicyAssignments(ctx context.Context, scope string) ([]entity.PolicyAssignment, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PolicyAssignment), args.Error(1)
}

func (m *MockAzureRepository) SubmitActivation(ctx context.Context, scope string, request entity.ActivationRequest) error {
	args := m.Called(ctx, scope, request)
	return args.Error(0)
}

// MockConfigRepository implements the ConfigRepository interface for testing
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) LoadConfigFile(filePath string) (*types.Config, error) {
	args := m.Called(filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Config), args.Error(1)
}

// reporterRecorder captures the ordered event stream of a run.
type reporterRecorder struct {
	events []string
}

func (r *reporterRecorder) SubscriptionStarted(displayName string) {
	r.events = append(r.events, "started:"+displayName)
}

func (r *reporterRecorder) SubscriptionSkipped(subscriptionID string, reason string) {
	r.events = append(r.events, "skipped:"+subscriptionID)
}

func (r *reporterRecorder) RoleActivated(roleName string, durationHours float64) {
	r.events = append(r.events, fmt.Sprintf("activated:%s:%g", roleName, durationHours))
}

func (r *reporterRecorder) RoleSkippedActive(roleName string) {
	r.events = append(r.events, "already-active:"+roleName)
}

func (r *reporterRecorder) RoleFailed(roleName string, detail string) {
	r.events = append(r.events, "failed:"+roleName)
}

func (r *reporterRecorder) Warning(format string, a ...interface{}) {
	r.events = append(r.events, "warning")
}

// nopConsole satisfies ConsoleInterface without writing anywhere.
type nopConsole struct{}

func (nopConsole) Print(a ...interface{})                   {}
func (nopConsole) Printf(format string, a ...interface{})   {}
func (nopConsole) Println(a ...interface{})                 {}
func (nopConsole) LogInfo(format string, a ...interface{})  {}
func (nopConsole) LogWarning(string, ...interface{})        {}
func (nopConsole) LogError(format string, a ...interface{}) {}
func (nopConsole) LogSuccess(string, ...interface{})        {}
func (nopConsole) Status(message string) types.StatusHandle { return nopStatus{} }
func (nopConsole) CreateTable() types.TableInterface        { return &nopTable{} }

type nopStatus struct{}

func (nopStatus) Update(message string) {}
func (nopStatus) Stop()                 {}

type nopTable struct{}

func (*nopTable) AddColumn(name string, options ...interface{}) {}
func (*nopTable) AddRow(cells ...interface{})                   {}
func (*nopTable) Render() string                                { return "" }
