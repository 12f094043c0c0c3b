package config

import (
	"log"
	"os"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port      string
	ToolsPort string
	Version   string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	UseMockLLM bool // true = use mock even on GCP

	// Per-specialist tool service endpoints.
	BillingToolURL string
	RoamingToolURL string
	TariffToolURL  string
	FaqToolURL     string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("SEMKER_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port:      getEnv("SEMKER_PORT", "8000"),
		ToolsPort: getEnv("SEMKER_TOOLS_PORT", "8002"),
		Version:   getEnv("SEMKER_VERSION", "1.0.0"),

		GCPProjectID: getEnv("SEMKER_GCP_PROJECT", ""),
		GCPLocation:  getEnv("SEMKER_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("SEMKER_MODEL_NAME", "gemini-2.5-flash-lite"),

		UseMockLLM: getBoolEnv("SEMKER_USE_MOCK_LLM", mode == ModeLocal),

		BillingToolURL: getEnv("BILLING_MCP_SERVER_URL", "http://localhost:8002/bill"),
		RoamingToolURL: getEnv("ROAMING_MCP_SERVER_URL", "http://localhost:8002/roam"),
		TariffToolURL:  getEnv("TARIFF_MCP_SERVER_URL", "http://localhost:8002/tariff"),
		FaqToolURL:     getEnv("FAQ_MCP_SERVER_URL", "http://localhost:8002/faq"),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" && !cfg.UseMockLLM {
		log.Fatal("SEMKER_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
