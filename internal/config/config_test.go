package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/study",
		"openai_model": "gpt-4o-mini",
		"hf_models": ["google/flan-t5-xxl"]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/study", cfg.DatabaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, []string{"google/flan-t5-xxl"}, cfg.HFModels)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "not json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "valid", cfg: Config{Port: 8080, HFBaseURL: "https://api-inference.huggingface.co/models"}},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: true},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: true},
		{name: "bad hf url", cfg: Config{HFBaseURL: "ftp://host"}, wantErr: true},
		{name: "empty model entry", cfg: Config{HFModels: []string{"a", " "}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		Port:        8080,
		OpenAIModel: "gpt-4o",
		HFModels:    []string{"google/flan-t5-xxl"},
	})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "gpt-4o", merged.OpenAIModel)
	assert.Equal(t, []string{"google/flan-t5-xxl"}, merged.HFModels)
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "sk-test")
	t.Setenv(EnvHuggingFaceKey, "")

	creds := LoadCredentials()

	assert.True(t, creds.HasOpenAI())
	assert.False(t, creds.HasHuggingFace())
}
