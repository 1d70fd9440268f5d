package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justPaulo/MultiSubAutoPIM/internal/domain/entity"
)

var sampleRecords = []entity.ActivationRecord{
	{Subscription: "Production", RoleName: "RoleA", Scope: "/subscriptions/sub-1", Outcome: entity.OutcomeActivated, DurationHours: 8},
	{Subscription: "Production", RoleName: "RoleB", Scope: "/subscriptions/sub-1/resourceGroups/rg-1", Outcome: entity.OutcomeFailed, Error: "permission denied"},
}

func TestExportToCSV(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToCSV(sampleRecords, "report", t.TempDir())
	assert.NoError(t, err)

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Production", "RoleA", "/subscriptions/sub-1", "activated", "8", ""}, rows[1])
	assert.Equal(t, "permission denied", rows[2][5])
}

func TestExportToJSON(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToJSON(sampleRecords, "report", t.TempDir())
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var decoded []entity.ActivationRecord
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleRecords, decoded)
}

func TestExportToPDF(t *testing.T) {
	repo := NewExportRepository()
	path, err := repo.ExportToPDF(sampleRecords, "report", t.TempDir())
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
