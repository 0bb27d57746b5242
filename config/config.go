// File: /config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string

	// Token signing
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Branding / cookies
	Brand          string
	CookieDomain   string
	WelcomeMessage string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "4000")
	v.SetDefault("DATABASE_URL", "user:password@tcp(localhost:3306)/rline?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("ACCESS_TOKEN_SECRET", "dev-access-secret")
	v.SetDefault("REFRESH_TOKEN_SECRET", "dev-refresh-secret")
	v.SetDefault("ACCESS_TOKEN_VALIDITY", "15m")
	v.SetDefault("REFRESH_TOKEN_VALIDITY", "24h")
	v.SetDefault("BRAND", "RLine")
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("WELCOME_MESSAGE", "Welcome to the RLine API!")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	return &Config{
		Port:           v.GetString("PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		AccessSecret:   v.GetString("ACCESS_TOKEN_SECRET"),
		RefreshSecret:  v.GetString("REFRESH_TOKEN_SECRET"),
		AccessTTL:      v.GetDuration("ACCESS_TOKEN_VALIDITY"),
		RefreshTTL:     v.GetDuration("REFRESH_TOKEN_VALIDITY"),
		Brand:          v.GetString("BRAND"),
		CookieDomain:   v.GetString("COOKIE_DOMAIN"),
		WelcomeMessage: v.GetString("WELCOME_MESSAGE"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
	}
}

// RefreshCookieName returns the brand-prefixed refresh cookie name,
// e.g. "RLineRefreshToken".
func (c *Config) RefreshCookieName() string {
	return c.Brand + "RefreshToken"
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
