// Package config loads application configuration from environment variables.
package config

import "os"

// defaultSAPAPIURL is the S/4HANA sales-order service the connection form
// pre-fills when no environment override is present.
const defaultSAPAPIURL = "https://my418390-api.s4hana.cloud.sap/sap/opu/odata/sap/API_SALES_ORDER_SRV"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	DBPath      string
	SAPAPIURL   string
	SAPUsername string
	SAPPassword string
}

// HasSAPCredentials returns true when both SAPUsername and SAPPassword are
// non-empty. Used by the composition root to decide whether to seed the
// session with credentials at startup or start in demo mode.
func (c *Config) HasSAPCredentials() bool {
	return c.SAPUsername != "" && c.SAPPassword != ""
}

// Load reads configuration from environment variables and returns a Config.
// SAP credentials (SAPDASH_SAP_USERNAME, SAPDASH_SAP_PASSWORD) are optional;
// if absent, the app starts in demo mode until credentials arrive via the
// connection endpoint. Optional variables with defaults:
// SAPDASH_LISTEN_ADDR (127.0.0.1:8080), SAPDASH_DB_PATH (sapdash.db),
// SAPDASH_SAP_API_URL (the S/4HANA sales-order service).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SAPDASH_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "sapdash.db"
	if v, ok := os.LookupEnv("SAPDASH_DB_PATH"); ok {
		dbPath = v
	}

	apiURL := defaultSAPAPIURL
	if v, ok := os.LookupEnv("SAPDASH_SAP_API_URL"); ok && v != "" {
		apiURL = v
	}

	return &Config{
		ListenAddr:  listenAddr,
		DBPath:      dbPath,
		SAPAPIURL:   apiURL,
		SAPUsername: os.Getenv("SAPDASH_SAP_USERNAME"),
		SAPPassword: os.Getenv("SAPDASH_SAP_PASSWORD"),
	}, nil
}
