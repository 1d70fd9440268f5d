package main

import (
	"fmt"
	"os"

	"github.com/justPaulo/MultiSubAutoPIM/internal/adapter/driven/azure"
	"github.com/justPaulo/MultiSubAutoPIM/internal/adapter/driven/config"
	"github.com/justPaulo/MultiSubAutoPIM/internal/adapter/driven/export"
	"github.com/justPaulo/MultiSubAutoPIM/internal/adapter/driving/cli"
	"github.com/justPaulo/MultiSubAutoPIM/internal/application/usecase"
	"github.com/justPaulo/MultiSubAutoPIM/pkg/console"
	"github.com/justPaulo/MultiSubAutoPIM/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios. Sem credenciais não há o que processar;
	// este é o único caminho fatal.
	azureRepo, err := azure.NewAzureRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	activationUseCase := usecase.NewActivationUseCase(
		azureRepo,
		configRepo,
		exportRepo,
		consoleImpl,
		consoleImpl,
	)

	app.SetActivationUseCase(activationUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
