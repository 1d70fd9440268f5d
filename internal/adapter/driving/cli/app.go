package cli

import (
	"context"

	"github.com/justPaulo/MultiSubAutoPIM/pkg/version"

	"github.com/justPaulo/MultiSubAutoPIM/internal/application/usecase"
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd           *cobra.Command
	activationUseCase *usecase.ActivationUseCase
	version           string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "autopim",
		Short:   "Bulk self-activation of Azure PIM role eligibilities across subscriptions",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "MultiSub AutoPIM version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a JSON, YAML, or TOML subscriptions file")
	rootCmd.PersistentFlags().StringSliceP("subscription", "s", nil, "Subscription IDs to process (repeatable; default: configured list)")
	rootCmd.PersistentFlags().StringSliceP("role", "r", nil, "Role names to activate (repeatable, case-insensitive; default: all eligible)")
	rootCmd.PersistentFlags().StringP("justification", "j", "Bulk activation via autopim", "Justification recorded on each activation request")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the activation report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	subscriptions, _ := app.rootCmd.Flags().GetStringSlice("subscription")
	roles, _ := app.rootCmd.Flags().GetStringSlice("role")
	justification, _ := app.rootCmd.Flags().GetString("justification")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		Subscriptions: subscriptions,
		Roles:         roles,
		Justification: justification,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.activationUseCase.RunActivation(ctx, cliArgs)
}

// SetActivationUseCase sets the activation use case for the CLI app.
func (app *CLIApp) SetActivationUseCase(useCase *usecase.ActivationUseCase) {
	app.activationUseCase = useCase
}
