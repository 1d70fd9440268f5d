package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// ActivationReporter receives the ordered stream of per-subscription and
// per-role outcome events of an activation run. Implementations own all
// presentation; the use case never formats for a specific medium.
type ActivationReporter interface {
	SubscriptionStarted(displayName string)
	SubscriptionSkipped(subscriptionID string, reason string)
	RoleActivated(roleName string, durationHours float64)
	RoleSkippedActive(roleName string)
	RoleFailed(roleName string, detail string)
	Warning(format string, a ...interface{})
}
