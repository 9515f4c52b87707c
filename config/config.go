package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Storage
	DBUrl  string
	DBName string
	// SMTP notification settings
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string
	// Notion integration
	NotionToken      string
	NotionDatabaseID string
	// Payment links per plan tier, keyed "<PROVIDER>_<TIER>"
	PaymentLinks map[string]string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnv("PORT", "8000"),
		DBUrl:  getEnv("DATABASE_URL", ""),
		DBName: getEnv("DATABASE_NAME", ""),
		// SMTP Configuration
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		NotifyEmail: getEnv("NOTIFY_EMAIL", ""),
		// Notion Configuration
		NotionToken:      getEnv("NOTION_TOKEN", ""),
		NotionDatabaseID: getEnv("NOTION_DATABASE_ID", ""),
		PaymentLinks:     loadPaymentLinks(),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Contact submissions will not be persisted.")
	}

	return cfg, nil
}

// loadPaymentLinks reads the six per-tier checkout URLs. A missing variable
// leaves the link absent; the tier then renders with a null link.
func loadPaymentLinks() map[string]string {
	links := make(map[string]string)
	for _, provider := range []string{"STRIPE", "PAYPAL"} {
		for _, tier := range []string{"STARTER", "GROWTH", "SCALE"} {
			if url, exists := os.LookupEnv(provider + "_" + tier + "_URL"); exists && url != "" {
				links[provider+"_"+tier] = url
			}
		}
	}
	return links
}

// PaymentLink returns the checkout URL for a provider/tier pair, or nil when
// it was never configured.
func (c *Config) PaymentLink(provider, tier string) *string {
	if url, ok := c.PaymentLinks[provider+"_"+tier]; ok {
		return &url
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
