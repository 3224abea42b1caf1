package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"ROSTER_ISSUER", "ROSTER_ALGORITHM", "ROSTER_TOKEN_TTL", "ROSTER_RSA_BITS", "ROSTER_NUM_KEYS", "PORT", "HOUSEKEEPING_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "roster", cfg.Issuer)
	require.Equal(t, "EdDSA", cfg.Algorithm)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)

	// Key sizing is left to the key manager.
	require.Zero(t, cfg.RSABits)
	require.Zero(t, cfg.NumKeys)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ROSTER_ALGORITHM", "ES256")
	t.Setenv("ROSTER_NUM_KEYS", "2")
	t.Setenv("ROSTER_TOKEN_TTL", "90s")
	t.Setenv("HOUSEKEEPING_INTERVAL", "5") // minutes
	t.Setenv("PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, "ES256", cfg.Algorithm)
	require.Equal(t, 2, cfg.NumKeys)
	require.Equal(t, 90*time.Second, cfg.TokenTTL)
	require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("ROSTER_DATABASE_FILE=/data/roster.db\nLOG_LEVEL=debug\n"), 0o600))

	// Already-set variables are not overridden by .env.
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ROSTER_DATABASE_FILE", "")
	require.NoError(t, os.Unsetenv("ROSTER_DATABASE_FILE"))

	cfg := LoadConfig()
	require.Equal(t, "/data/roster.db", cfg.DatabaseFile)
	require.Equal(t, "warn", cfg.LogLevel)
}
