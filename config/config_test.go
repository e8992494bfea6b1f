package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "trading_bot.log", cfg.Importer.LogFile)
	assert.Equal(t, "trades.db", cfg.Store.DBPath)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "missing log file",
			config: &Config{
				Store: StoreConfig{DBPath: "trades.db"},
			},
			wantErr: true,
			errMsg:  "importer.log_file is required",
		},
		{
			name: "missing db path",
			config: &Config{
				Importer: ImporterConfig{LogFile: "trading_bot.log"},
			},
			wantErr: true,
			errMsg:  "store.db_path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "botlog.yaml")
	data := `
importer:
  log_file: bot.log
store:
  db_path: bot.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bot.log", cfg.Importer.LogFile)
	assert.Equal(t, "bot.db", cfg.Store.DBPath)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "botlog.json")
	data := `{"importer":{"log_file":"bot.log"},"store":{"db_path":"bot.db"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bot.log", cfg.Importer.LogFile)
	assert.Equal(t, "bot.db", cfg.Store.DBPath)
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "botlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("importer: {}\nstore: {}\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "botlog."+ext)

			cfg := &Config{
				Importer: ImporterConfig{LogFile: "a.log"},
				Store:    StoreConfig{DBPath: "b.db"},
			}
			require.NoError(t, cfg.SaveToFile(path))

			got, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}
