package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	DocDomains   []string // hosts allowed for docs-from-URL ingestion
	DocMaxBytes  int
	EnableReqLog bool
	StrictAuth   bool // reject requests without an identity instead of seeding one
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
			return n
		}
		return def
	}
	var domains []string
	for _, h := range strings.Split(get("DOC_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			domains = append(domains, h)
		}
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "Asia/Jakarta"),
		DBPath:       get("DB_PATH", "palmtrack.db"),
		DocDomains:   domains,
		DocMaxBytes:  getInt("DOC_MAX_BYTES", 1500000),
		EnableReqLog: get("ENABLE_REQ_LOG", "true") == "true",
		StrictAuth:   get("STRICT_AUTH", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s tz=%s", cfg.Port, cfg.DBPath, cfg.Timezone)
	return cfg
}
