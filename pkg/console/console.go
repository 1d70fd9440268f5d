package console

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console implementa o ConsoleInterface e o ActivationReporter.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// --- ActivationReporter ---

// SubscriptionStarted imprime o cabeçalho de uma subscription alcançada.
func (c *Console) SubscriptionStarted(displayName string) {
	fmt.Printf("\n%s\n", BrightMagenta(fmt.Sprintf("=== %s ===", displayName)))
}

// SubscriptionSkipped avisa que uma subscription inacessível foi pulada.
func (c *Console) SubscriptionSkipped(subscriptionID string, reason string) {
	pterm.Warning.Printfln("Skipping subscription %s: %s", subscriptionID, reason)
}

// RoleActivated reporta uma ativação bem-sucedida.
func (c *Console) RoleActivated(roleName string, durationHours float64) {
	pterm.Success.Printfln("Activated %s for %gh", roleName, durationHours)
}

// RoleSkippedActive reporta uma role que já estava ativa.
func (c *Console) RoleSkippedActive(roleName string) {
	pterm.Info.Printfln("%s is already active, skipping", roleName)
}

// RoleFailed reporta uma falha de ativação.
func (c *Console) RoleFailed(roleName string, detail string) {
	pterm.Error.Printfln("Failed to activate %s: %s", roleName, detail)
}

// Warning reporta um aviso fora do contexto de uma subscription.
func (c *Console) Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
