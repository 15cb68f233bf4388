package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/collection-init/v1/sqlstore"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, sqlstore.DriverSQLite, cfg.SQLStore.Driver)
	assert.Equal(t, sqlstore.DefaultPath, cfg.SQLStore.Path)
	assert.Equal(t, DefaultReportPath, cfg.Bootstrap.ReportPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := writeFile(t, dir, "config.yaml", `
backend: qdrant
logger:
  level: debug
qdrant:
  endpoint: qdrant.yaml
  timeout: 7s
bootstrap:
  report_path: from-yaml.json
  collections:
    - name: custom_collection
      metadata:
        category: custom
`)
	envFile := writeFile(t, dir, "test.env", "QDRANT_ENDPOINT=qdrant.dotenv\nBOOTSTRAP_REPORT_PATH=from-dotenv.json\n")
	t.Setenv("BOOTSTRAP_REPORT_PATH", "from-env.json")
	t.Cleanup(func() { _ = os.Unsetenv("QDRANT_ENDPOINT") })

	cfg, err := Load(Options{ConfigPath: path, EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, BackendQdrant, cfg.Backend)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 7*time.Second, cfg.Qdrant.Timeout)
	assert.Equal(t, "qdrant.dotenv", cfg.Qdrant.Endpoint)
	// the real environment wins over the dotenv file
	assert.Equal(t, "from-env.json", cfg.Bootstrap.ReportPath)
	require.Len(t, cfg.Bootstrap.Collections, 1)
	assert.Equal(t, "custom_collection", cfg.Bootstrap.Collections[0].Name)
	assert.Equal(t, "custom", cfg.Bootstrap.Collections[0].Metadata["category"])
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Load(Options{ConfigPath: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "backend: [unterminated")
	_, err = Load(Options{ConfigPath: bad})
	assert.Error(t, err)

	_, err = Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err, "an explicitly requested env file must exist")
}

func TestLoadPostgresBackendSetsDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("VECTOR_BACKEND", "postgres")
	t.Setenv("SQLSTORE_PG_HOST", "db")
	t.Setenv("SQLSTORE_PG_DBNAME", "vectors")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, sqlstore.DriverPostgres, cfg.SQLStore.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "pinecone" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.SQLStore.Path = "" }, wantErr: true},
		{name: "postgres without host", mutate: func(c *Config) { c.Backend = BackendPostgres }, wantErr: true},
		{name: "qdrant without endpoint", mutate: func(c *Config) {
			c.Backend = BackendQdrant
			c.Qdrant.Endpoint = ""
		}, wantErr: true},
		{name: "chroma without url", mutate: func(c *Config) {
			c.Backend = BackendChroma
			c.Chroma.BaseURL = ""
		}, wantErr: true},
		{name: "chroma defaults", mutate: func(c *Config) { c.Backend = BackendChroma }},
		{name: "empty report path", mutate: func(c *Config) { c.Bootstrap.ReportPath = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
