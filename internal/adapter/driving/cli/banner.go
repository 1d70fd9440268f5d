package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/justPaulo/MultiSubAutoPIM/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
            ___         __        ____  ________  ___
           /   | __  __/ /_____  / __ \/  _/  |/  /
          / /| |/ / / / __/ __ \/ /_/ // // /|_/ /
         / ___ / /_/ / /_/ /_/ / ____// // /  / /
        /_/  |_\__,_/\__/\____/_/   /___/_/  /_/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("MultiSub AutoPIM (v%s)", formattedVersion)))
}
