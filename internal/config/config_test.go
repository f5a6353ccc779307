package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
address: ":9090"
jwt_ttl: 15m
secure_cookies: true
banned_store: redis
redis:
  addr: "localhost:6379"
email:
  smtp_server: smtp.example.com
  smtp_port: 587
  username: noreply@example.com
`
	private := `
jwt_key: super_secret
smtp_password: smtp_pass
`
	dir := writeConfigFiles(t, public, private)

	cfg := MustLoad(dir)

	assert.Equal(t, ":9090", cfg.Public.Address)
	assert.Equal(t, 15*time.Minute, cfg.JwtTTL())
	assert.True(t, cfg.Public.SecureCookies)
	assert.Equal(t, "redis", cfg.Public.BannedStore)
	assert.Equal(t, "localhost:6379", cfg.Public.Redis.Addr)
	assert.Equal(t, "smtp.example.com", cfg.Public.Email.SMTPServer)
	assert.Equal(t, "super_secret", cfg.JwtKey())
	assert.Equal(t, "smtp_pass", cfg.SMTPPassword())
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(t.TempDir())
	})
}

func TestMustLoadInvalidYaml(t *testing.T) {
	dir := writeConfigFiles(t, "address: [:::", "jwt_key: x")
	assert.Panics(t, func() {
		MustLoad(dir)
	})
}
