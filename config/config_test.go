package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// clearEnv unsets the override variables for the test and restores them
// afterwards, so .env files and the host environment do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "SERVER_ADDR", "DATABASE_DRIVER", "DATABASE_DSN", "MONGO_URI", "MONGO_DB_NAME", "SITE_BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, `
server:
  addr: ":9000"
  cors_allowed_origins: ["https://editor.example.com"]
storage:
  driver: postgres
  dsn: postgres://localhost/authors?sslmode=disable
site:
  base_url: https://blog.example.com
  title: Blog
editor:
  max_sessions: 16
`)
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SITE_BASE_URL", "https://www.example.com")

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, []string{"https://editor.example.com"}, c.Server.CORSAllowedOrigins)
	assert.Equal(t, "postgres", c.Storage.Driver)
	assert.Equal(t, "https://www.example.com", c.Site.BaseURL)
	assert.Equal(t, "/author/{slug}/", c.Site.AuthorPath, "unset keys keep their defaults")
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 16, c.Editor.MaxSessions)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ENV_FILE, "DATABASE_DRIVER=mongo\nMONGO_URI=mongodb://localhost:27017\nMONGO_DB_NAME=authors\n")
	clearEnv(t)

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "mongo", c.Storage.Driver)
	assert.Equal(t, "mongodb://localhost:27017", c.Storage.MongoURI)
	assert.Equal(t, "authors", c.Storage.MongoDBName)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *AppConfig)
	}{
		{name: "unknown driver", mutate: func(c *AppConfig) { c.Storage.Driver = "mysql" }},
		{name: "sql without dsn", mutate: func(c *AppConfig) { c.Storage.DSN = "" }},
		{name: "author path without slug", mutate: func(c *AppConfig) { c.Site.AuthorPath = "/authors/" }},
		{name: "bad base url", mutate: func(c *AppConfig) { c.Site.BaseURL = "not a url" }},
		{name: "bad log level", mutate: func(c *AppConfig) { c.Logging.Level = "loud" }},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			c := Default()
			testCase.mutate(&c)
			assert.Error(t, Validate(c))
		})
	}

	mongo := Default()
	mongo.Storage = StorageConfig{Driver: "mongo"}
	assert.NoError(t, Validate(mongo))
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, "server: [")
	_, err := Load(dir)
	assert.Error(t, err)
}
