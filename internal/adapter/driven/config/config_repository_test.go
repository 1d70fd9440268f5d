package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justPaulo/MultiSubAutoPIM/internal/shared/types"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeTempFile(t, "subscriptions.json", `{
		"subscriptions": [
			{"id": "sub-1", "name": "prod"},
			{"id": "sub-2"}
		]
	}`)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	assert.NoError(t, err)
	assert.Equal(t, []types.SubscriptionRef{
		{ID: "sub-1", Name: "prod"},
		{ID: "sub-2"},
	}, config.Subscriptions)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeTempFile(t, "subscriptions.yaml", "subscriptions:\n  - id: sub-1\n    name: prod\n")

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	assert.NoError(t, err)
	assert.Equal(t, []types.SubscriptionRef{{ID: "sub-1", Name: "prod"}}, config.Subscriptions)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeTempFile(t, "subscriptions.toml", "[[subscriptions]]\nid = \"sub-1\"\nname = \"prod\"\n")

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)

	assert.NoError(t, err)
	assert.Equal(t, []types.SubscriptionRef{{ID: "sub-1", Name: "prod"}}, config.Subscriptions)
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "subscriptions.ini", "[subscriptions]\n")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)

	assert.ErrorContains(t, err, "unsupported config file format")
}
