package repository

import (
	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(records []entity.ActivationRecord, filename string, outputDir string) (string, error)
	ExportToJSON(records []entity.ActivationRecord, filename string, outputDir string) (string, error)
	ExportToPDF(records []entity.ActivationRecord, filename string, outputDir string) (string, error)
}
