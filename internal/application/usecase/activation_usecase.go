package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/repository"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// fallbackActivationDuration é usada quando a política não define (ou não
// pôde ser consultada) a duração máxima de ativação de uma role.
const fallbackActivationDuration = "PT8H"

// resourceGroupMarker identifica scopes de resource group dentro do caminho
// do recurso.
const resourceGroupMarker = "/resourcegroups/"

// ActivationUseCase drives the bulk activation run: it iterates the
// subscriptions sequentially and, for each one, scans entitlements, resolves
// permitted durations and submits the missing activation requests.
type ActivationUseCase struct {
	azureRepo  repository.AzureRepository
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	reporter   types.ActivationReporter

	scanner  *EntitlementScanner
	resolver *PolicyDurationResolver
}

// NewActivationUseCase creates a new activation use case.
func NewActivationUseCase(
	azureRepo repository.AzureRepository,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	reporter types.ActivationReporter,
) *ActivationUseCase {
	return &ActivationUseCase{
		azureRepo:  azureRepo,
		configRepo: configRepo,
		exportRepo: exportRepo,
		console:    console,
		reporter:   reporter,
		scanner:    NewEntitlementScanner(azureRepo, console),
		resolver:   NewPolicyDurationResolver(azureRepo, console),
	}
}

// InitializeSubscriptions determines which subscriptions to process based on
// CLI args, falling back to the configured default list. An empty result is
// not an error: the run degrades to a no-op with a warning.
func (uc *ActivationUseCase) InitializeSubscriptions(args *types.CLIArgs) []string {
	if len(args.Subscriptions) > 0 {
		return args.Subscriptions
	}

	config := uc.loadSubscriptionConfig(args.ConfigFile)
	if config == nil || len(config.Subscriptions) == 0 {
		uc.reporter.Warning("%s", types.ErrNoSubscriptions)
		return nil
	}

	subscriptions := make([]string, 0, len(config.Subscriptions))
	for _, ref := range config.Subscriptions {
		if ref.ID != "" {
			subscriptions = append(subscriptions, ref.ID)
		}
	}
	return subscriptions
}

// loadSubscriptionConfig tenta o arquivo indicado e, na ausência dele, os
// caminhos padrão. Arquivo ausente não é fatal.
func (uc *ActivationUseCase) loadSubscriptionConfig(configFile string) *types.Config {
	candidates := []string{}
	if configFile != "" {
		candidates = append(candidates, configFile)
	} else {
		candidates = append(candidates, "subscriptions.json")
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(homeDir, ".config", "autopim", "subscriptions.json"))
		}
	}

	for _, path := range candidates {
		config, err := uc.configRepo.LoadConfigFile(path)
		if err != nil {
			continue
		}
		return config
	}

	if configFile != "" {
		uc.reporter.Warning("Could not load config file %s", configFile)
	}
	return nil
}

// RunActivation executa a funcionalidade principal: ativa em lote as roles
// elegíveis em todas as subscriptions. Falhas por role ou por subscription
// são reportadas e a execução continua.
func (uc *ActivationUseCase) RunActivation(ctx context.Context, args *types.CLIArgs) error {
	subscriptions := uc.InitializeSubscriptions(args)
	if len(subscriptions) == 0 {
		return nil
	}

	status := uc.console.Status("Scanning eligible roles...")

	var records []entity.ActivationRecord
	for _, subscriptionID := range subscriptions {
		status.Update(fmt.Sprintf("Processing subscription %s...", subscriptionID))
		records = append(records, uc.processSubscription(ctx, subscriptionID, args)...)
	}

	status.Stop()

	uc.renderSummary(records)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportRecords(records, args)
	}

	return nil
}

// processSubscription processa uma única subscription, devolvendo o resultado
// de cada role tentada. Uma subscription inacessível é pulada com um evento
// explícito e lista vazia.
func (uc *ActivationUseCase) processSubscription(ctx context.Context, subscriptionID string, args *types.CLIArgs) []entity.ActivationRecord {
	subscription, err := uc.azureRepo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		uc.reporter.SubscriptionSkipped(subscriptionID, err.Error())
		return nil
	}

	uc.reporter.SubscriptionStarted(subscription.DisplayName)

	active, eligible := uc.scanner.Scan(ctx, subscriptionID)

	// Resolve as políticas de cada scope distinto antes do loop de ativação;
	// o resolver memoiza entre subscriptions que compartilham scope.
	durationsByScope := make(map[string]map[string]string)
	for _, entitlement := range eligible {
		key := strings.ToLower(entitlement.Scope)
		if _, ok := durationsByScope[key]; !ok {
			durationsByScope[key] = uc.resolver.Resolve(ctx, entitlement.Scope)
		}
	}

	var records []entity.ActivationRecord
	for _, entitlement := range eligible {
		if !matchesRoleFilter(args.Roles, entitlement.RoleDisplayName) {
			continue
		}

		if isAlreadyActive(active, entitlement) {
			uc.reporter.RoleSkippedActive(entitlement.RoleDisplayName)
			records = append(records, entity.ActivationRecord{
				Subscription: subscription.DisplayName,
				RoleName:     entitlement.RoleDisplayName,
				Scope:        entitlement.Scope,
				Outcome:      entity.OutcomeAlreadyActive,
			})
			continue
		}

		duration := fallbackActivationDuration
		if resolved, ok := durationsByScope[strings.ToLower(entitlement.Scope)][entitlement.RoleDefinitionID]; ok {
			duration = resolved
		}

		records = append(records, uc.activate(ctx, subscription, entitlement, duration, args.Justification))
	}

	return records
}

// activate submits one self-activation request and classifies the result.
func (uc *ActivationUseCase) activate(
	ctx context.Context,
	subscription entity.Subscription,
	entitlement entity.RoleEntitlement,
	duration string,
	justification string,
) entity.ActivationRecord {
	record := entity.ActivationRecord{
		Subscription:  subscription.DisplayName,
		RoleName:      entitlement.RoleDisplayName,
		Scope:         entitlement.Scope,
		DurationHours: durationHours(duration),
	}

	request := entity.ActivationRequest{
		RequestID:        uuid.NewString(),
		PrincipalID:      entitlement.PrincipalID,
		RoleDefinitionID: entitlement.RoleDefinitionID,
		Justification:    justification,
		Duration:         duration,
		StartTime:        time.Now().UTC(),
	}

	err := uc.azureRepo.SubmitActivation(ctx, targetScope(subscription.ID, entitlement.Scope), request)
	switch {
	case err == nil:
		record.Outcome = entity.OutcomeActivated
		uc.reporter.RoleActivated(entitlement.RoleDisplayName, record.DurationHours)
	case isConflict(err):
		// Corrida entre a checagem de ativos e a escrita: outra execução (ou
		// outro ator) já criou o request. Benigno, não é falha.
		record.Outcome = entity.OutcomeAlreadyActive
		uc.reporter.RoleSkippedActive(entitlement.RoleDisplayName)
	default:
		record.Outcome = entity.OutcomeFailed
		record.Error = err.Error()
		uc.reporter.RoleFailed(entitlement.RoleDisplayName, err.Error())
	}

	return record
}

// targetScope routes the write: resource-group entitlements are submitted
// against the resource group itself, everything else against the subscription.
func targetScope(subscriptionID, scope string) string {
	if strings.Contains(strings.ToLower(scope), resourceGroupMarker) {
		return scope
	}
	return "/subscriptions/" + subscriptionID
}

// matchesRoleFilter aplica a allowlist de nomes de role (case-insensitive).
// Filtro vazio aceita tudo.
func matchesRoleFilter(filter []string, roleName string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, name := range filter {
		if strings.EqualFold(name, roleName) {
			return true
		}
	}
	return false
}

// isAlreadyActive checks the entitlement against the provisioned assignments
// by (role definition, scope), comparing scopes case-insensitively.
func isAlreadyActive(active []entity.ActiveAssignment, entitlement entity.RoleEntitlement) bool {
	for _, assignment := range active {
		if strings.EqualFold(assignment.RoleDefinitionID, entitlement.RoleDefinitionID) &&
			strings.EqualFold(assignment.Scope, entitlement.Scope) {
			return true
		}
	}
	return false
}

// isConflict treats the structured sentinel from the Azure adapter as the
// primary signal and falls back to message inspection for collaborators that
// surface nothing better.
func isConflict(err error) bool {
	if errors.Is(err, types.ErrActivationConflict) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// renderSummary imprime a tabela final da execução.
func (uc *ActivationUseCase) renderSummary(records []entity.ActivationRecord) {
	if len(records) == 0 {
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Subscription")
	table.AddColumn("Role")
	table.AddColumn("Scope")
	table.AddColumn("Outcome")
	table.AddColumn("Duration")

	for _, record := range records {
		duration := ""
		if record.Outcome == entity.OutcomeActivated {
			duration = fmt.Sprintf("%gh", record.DurationHours)
		}
		table.AddRow(record.Subscription, record.RoleName, record.Scope, string(record.Outcome), duration)
	}

	uc.console.Print(table.Render())
}

// exportRecords exporta o relatório da execução nos formatos pedidos.
func (uc *ActivationUseCase) exportRecords(records []entity.ActivationRecord, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportToCSV(records, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportToJSON(records, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(records, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", path)
			}
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
		}
	}
}
