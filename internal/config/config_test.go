package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every SAPDASH_ env var that Load() reads.
var allConfigKeys = []string{
	"SAPDASH_LISTEN_ADDR",
	"SAPDASH_DB_PATH",
	"SAPDASH_SAP_API_URL",
	"SAPDASH_SAP_USERNAME",
	"SAPDASH_SAP_PASSWORD",
}

// isolateConfigEnv saves and unsets all SAPDASH_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SAPDASH_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("SAPDASH_DB_PATH", "/tmp/test.db")
	t.Setenv("SAPDASH_SAP_API_URL", "https://sap.example.com/odata/API_SALES_ORDER_SRV")
	t.Setenv("SAPDASH_SAP_USERNAME", "INTEGRATION_USER")
	t.Setenv("SAPDASH_SAP_PASSWORD", "s3cret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "https://sap.example.com/odata/API_SALES_ORDER_SRV", cfg.SAPAPIURL)
	assert.Equal(t, "INTEGRATION_USER", cfg.SAPUsername)
	assert.Equal(t, "s3cret", cfg.SAPPassword)
	assert.True(t, cfg.HasSAPCredentials())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "sapdash.db", cfg.DBPath)
	assert.Contains(t, cfg.SAPAPIURL, "API_SALES_ORDER_SRV")
}

// TestLoad_MissingCredentials verifies that absent SAP credentials are not an
// error: the app starts in demo mode.
func TestLoad_MissingCredentials(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SAPDASH_SAP_USERNAME", "INTEGRATION_USER")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.HasSAPCredentials())
}
