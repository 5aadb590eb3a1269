package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: ":8080"
mysql:
  dsn: "user:pass@tcp(127.0.0.1:3306)/notes"
redis:
  addr: "127.0.0.1:6379"
session:
  secret: "file-secret"
  expire: 3600
upload:
  dir: "uploads"
  allowed_exts: [pdf, png]
admin:
  email: "admin@notes.com"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o644))
	return dir
}

func TestInitConfig(t *testing.T) {
	InitConfig(writeConfig(t))

	assert.Equal(t, ":8080", GlobalConfig.Server.Port)
	assert.Equal(t, "file-secret", GlobalConfig.Session.Secret)
	assert.Equal(t, []string{"pdf", "png"}, GlobalConfig.Upload.AllowedExts)

	// Omitted fields fall back to defaults.
	assert.Equal(t, "admin", GlobalConfig.Admin.Username)
	assert.Equal(t, "admin123", GlobalConfig.Admin.Password)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "env-dsn")
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_EXPIRE", "7200")
	t.Setenv("UPLOAD_DIR", "/var/notes/uploads")
	t.Setenv("UPLOAD_ALLOWED_EXTS", "pdf,docx")

	InitConfig(writeConfig(t))

	assert.Equal(t, "env-dsn", GlobalConfig.MySQL.DSN)
	assert.Equal(t, "env-secret", GlobalConfig.Session.Secret)
	assert.EqualValues(t, 7200, GlobalConfig.Session.Expire)
	assert.Equal(t, "/var/notes/uploads", GlobalConfig.Upload.Dir)
	assert.Equal(t, []string{"pdf", "docx"}, GlobalConfig.Upload.AllowedExts)
}
