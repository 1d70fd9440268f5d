package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	Subscriptions []string
	Roles         []string
	Justification string
	ReportName    string
	ReportType    []string
	Dir           string
}
