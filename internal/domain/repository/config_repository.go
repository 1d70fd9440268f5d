package repository

import (
	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

// ConfigRepository defines the interface for loading subscription list files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
