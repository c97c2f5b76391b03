package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	req.NoError(err)

	req.Equal(5000, cfg.Server.Port)
	req.Equal(":5000", cfg.Server.Addr)
	req.Equal("stroke_risk_model.json", cfg.Artifacts.ModelFile)
	req.Equal("scaler.json", cfg.Artifacts.ScalerFile)
	req.Equal("X_train_columns.json", cfg.Artifacts.ColumnsFile)
	req.Equal("info", cfg.Log.Level)
	req.False(cfg.DB.Enabled)
	req.Empty(cfg.DB.DSN)
}

func TestLoadFile_YAMLAndEnvOverrides(t *testing.T) {
	req := require.New(t)
	path := writeYAML(t, `
server:
  host: 127.0.0.1
  port: 8081
artifacts:
  dir: /srv/model
log:
  level: debug
  format: json
database:
  enabled: true
  host: db.local
  port: 3306
  username: yaml-user
  database: stroke
`)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := LoadFile(path)
	req.NoError(err)

	req.Equal(9090, cfg.Server.Port)
	req.Equal("127.0.0.1:9090", cfg.Server.Addr)
	req.Equal("/srv/model", cfg.Artifacts.Dir)
	req.Equal("warn", cfg.Log.Level)
	req.Equal("json", cfg.Log.Format)
	req.Equal("yaml-user:s3cret@tcp(db.local:3306)/stroke?charset=utf8mb4&parseTime=true", cfg.DB.DSN)
}

func TestLoadFile_ExplicitDSNWins(t *testing.T) {
	path := writeYAML(t, "database:\n  enabled: true\n  host: ignored\n")
	t.Setenv("DB_DSN", "u:p@tcp(other:3306)/x")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "u:p@tcp(other:3306)/x", cfg.DB.DSN)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "port out of range", body: "server:\n  port: 70000\n"},
		{name: "unknown log format", body: "log:\n  format: xml\n"},
		{name: "file output without path", body: "log:\n  output: file\n"},
		{name: "empty model file", body: "artifacts:\n  model_file: \"\"\n"},
		{name: "malformed yaml", body: "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeYAML(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_DatabaseEnabledWithoutDSN(t *testing.T) {
	_, err := LoadFile(writeYAML(t, "database:\n  enabled: true\n"))
	assert.ErrorIs(t, err, ErrMissingDSN)
}
