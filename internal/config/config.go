package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	DataDir      string // read-only rosters
	GeneratedDir string // leave ledgers

	RedisAddr   string // optional: submit lock middleware
	KafkaBroker string // optional: notification dispatch via Kafka

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	TemplateSIDs       map[string]string

	RateLimitRPS   float64
	RateLimitBurst int
}

// TwilioConfigured reports whether real WhatsApp delivery can be used.
func (c Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:       getEnv("APP_ENV", "local"),
		Port:         getEnv("PORT", "3001"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		GeneratedDir: getEnv("GENERATED_DIR", "/tmp/generated"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),

		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
		TemplateSIDs: map[string]string{
			"new_leave_request":     os.Getenv("WHATSAPP_TEMPLATE_NEW_LEAVE_REQUEST"),
			"manager_approval":      os.Getenv("WHATSAPP_TEMPLATE_MANAGER_APPROVAL"),
			"manager_rejection":     os.Getenv("WHATSAPP_TEMPLATE_MANAGER_REJECTION"),
			"hr_approval_hr_leave":  os.Getenv("WHATSAPP_TEMPLATE_HR_APPROVAL_HR_LEAVE"),
			"hr_rejection_hr_leave": os.Getenv("WHATSAPP_TEMPLATE_HR_REJECTION_HR_LEAVE"),
			"hr_approval_regular":   os.Getenv("WHATSAPP_TEMPLATE_HR_APPROVAL_REGULAR"),
			"hr_rejection_regular":  os.Getenv("WHATSAPP_TEMPLATE_HR_REJECTION_REGULAR"),
			"partner_approval":      os.Getenv("WHATSAPP_TEMPLATE_PARTNER_APPROVAL"),
			"partner_rejection":     os.Getenv("WHATSAPP_TEMPLATE_PARTNER_REJECTION"),
			"hr_leave_submission":   os.Getenv("WHATSAPP_TEMPLATE_HR_LEAVE_SUBMISSION"),
		},

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
