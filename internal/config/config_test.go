package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnMissingInferenceTuning_ShouldUseDefaults(t *testing.T) {
	svc, err := NewFromFile(writeConfig(t, `
inference:
  endpoint: "https://example.test/model"
`))

	assert.NoError(t, err)
	assert.Equal(t, 250, svc.Inference().MaxTokens())
	assert.Equal(t, 0.7, svc.Inference().Temperature())
	assert.Equal(t, 0.9, svc.Inference().TopP())
}

func Test_OnExplicitZeroTemperature_ShouldKeepZero(t *testing.T) {
	svc, err := NewFromFile(writeConfig(t, `
inference:
  endpoint: "https://example.test/model"
  temperature: 0
  top-p: 0
`))

	assert.NoError(t, err)
	assert.Equal(t, 0.0, svc.Inference().Temperature())
	assert.Equal(t, 0.0, svc.Inference().TopP())
}

func Test_OnApiKeyEnv_ShouldOverrideFile(t *testing.T) {
	t.Setenv("INFERENCE_API_KEY", "env-key")

	svc, err := NewFromFile(writeConfig(t, `
inference:
  api-key: file-key
`))

	assert.NoError(t, err)
	assert.Equal(t, "env-key", svc.Inference().ApiKey())
}

func Test_OnEmptyAppSection_ShouldUseDefaults(t *testing.T) {
	svc, err := NewFromFile(writeConfig(t, "app: {}\n"))

	assert.NoError(t, err)
	assert.Equal(t, "$", svc.App().Currency())
	assert.Equal(t, 5, svc.App().HistoryWindow())
	assert.Equal(t, ":8080", svc.Server().Addr())
}

func Test_OnMissingFile_ShouldReturnError(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
