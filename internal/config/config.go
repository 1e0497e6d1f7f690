package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// DevJWTSecret is used when JWT_SECRET is unset outside production.
const DevJWTSecret = "nvp-welfare-dev-secret"

// Config holds application configuration (env + Viper). Built once at startup and passed by pointer.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret   string
	JWTTTLHours int

	SendinblueAPIKey string // SENDINBLUE_API_KEY for transactional emails (Brevo)
	MailFrom         string
	MailFromName     string

	PaymentProvider      string // stripe | midtrans
	PaymentKeyID         string // publishable / client key returned to the frontend
	PaymentKeySecret     string
	PaymentWebhookSecret string
	PaymentCurrency      string
	MidtransEnv          string

	CORSOrigins    []string
	TrustedProxies []string // X-Forwarded-For is honoured only from these addresses or CIDRs
	VerifyBaseURL  string   // receipts and certificates are verified at VERIFY_BASE_URL/verify-*/<number>

	StorageDriver     string // local | supabase
	UploadDir         string
	SupabaseURL       string
	SupabaseSecretKey string // service_role key, not anon key
	SupabaseBucket    string

	HealthAdminKey    string
	SeedAdminEmail    string
	SeedAdminPassword string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_TTL_HOURS", 720)
	viper.SetDefault("PAYMENT_PROVIDER", "stripe")
	viper.SetDefault("PAYMENT_CURRENCY", "INR")
	viper.SetDefault("MIDTRANS_ENV", "sandbox")
	viper.SetDefault("VERIFY_BASE_URL", "https://nvpwelfare.in")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("SUPABASE_BUCKET", "uploads")
	viper.SetDefault("MAIL_FROM", "noreply@nvpwelfare.in")
	viper.SetDefault("MAIL_FROM_NAME", "NVP Welfare Foundation India")

	env := viper.GetString("APP_ENV")
	secret := viper.GetString("JWT_SECRET")
	if secret == "" && env != "production" {
		secret = DevJWTSecret
	}

	cfg := &Config{
		Env:                  env,
		Port:                 viper.GetString("PORT"),
		DatabaseURL:          viper.GetString("DATABASE_URL"),
		RedisURL:             viper.GetString("REDIS_URL"),
		JWTSecret:            secret,
		JWTTTLHours:          viper.GetInt("JWT_TTL_HOURS"),
		SendinblueAPIKey:     viper.GetString("SENDINBLUE_API_KEY"),
		MailFrom:             viper.GetString("MAIL_FROM"),
		MailFromName:         viper.GetString("MAIL_FROM_NAME"),
		PaymentProvider:      strings.ToLower(viper.GetString("PAYMENT_PROVIDER")),
		PaymentKeyID:         viper.GetString("PAYMENT_KEY_ID"),
		PaymentKeySecret:     viper.GetString("PAYMENT_KEY_SECRET"),
		PaymentWebhookSecret: viper.GetString("PAYMENT_WEBHOOK_SECRET"),
		PaymentCurrency:      strings.ToUpper(viper.GetString("PAYMENT_CURRENCY")),
		MidtransEnv:          strings.ToLower(viper.GetString("MIDTRANS_ENV")),
		CORSOrigins:          splitList(viper.GetString("CORS_ORIGINS")),
		TrustedProxies:       splitList(viper.GetString("TRUSTED_PROXIES")),
		VerifyBaseURL:        strings.TrimRight(viper.GetString("VERIFY_BASE_URL"), "/"),
		StorageDriver:        strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		UploadDir:            viper.GetString("UPLOAD_DIR"),
		SupabaseURL:          viper.GetString("SUPABASE_URL"),
		SupabaseSecretKey:    viper.GetString("SUPABASE_SECRET_KEY"),
		SupabaseBucket:       viper.GetString("SUPABASE_BUCKET"),
		HealthAdminKey:       viper.GetString("HEALTH_ADMIN_KEY"),
		SeedAdminEmail:       viper.GetString("SEED_ADMIN_EMAIL"),
		SeedAdminPassword:    viper.GetString("SEED_ADMIN_PASSWORD"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWTSecret == DevJWTSecret {
		return errors.New("config: JWT_SECRET must be set in production")
	}
	if c.JWTTTLHours <= 0 {
		return errors.New("config: JWT_TTL_HOURS must be positive")
	}
	switch c.PaymentProvider {
	case "stripe", "midtrans":
	default:
		return errors.New("config: PAYMENT_PROVIDER must be stripe or midtrans")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
