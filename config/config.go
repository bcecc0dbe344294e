package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is everything the server reads from the environment
type AppConfig struct {
	Port           string
	AppEnv         string
	AllowedOrigins []string

	MongoURI      string
	MongoDatabase string

	CmsDBURL    string
	AutoMigrate bool

	RedisURL string

	JWTSecret   string
	JWTTokenTTL time.Duration

	OIDCIssuer   string
	OIDCClientID string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	RequestTimeout  time.Duration
	RateLimit       int
	RateLimitWindow time.Duration
	ProductCacheTTL time.Duration
}

func Load() AppConfig {
	return AppConfig{
		Port:           getEnv("PORT", "8081"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "modeva"),

		CmsDBURL:    cmsDatabaseURL(),
		AutoMigrate: getEnvBool("CMS_AUTO_MIGRATE", true),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTokenTTL: getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		OIDCIssuer:   os.Getenv("OIDC_ISSUER"),
		OIDCClientID: os.Getenv("OIDC_CLIENT_ID"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimit:       getEnvInt("RATE_LIMIT", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		ProductCacheTTL: getEnvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
	}
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c AppConfig) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func (c AppConfig) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

func cmsDatabaseURL() string {
	if url := os.Getenv("CMS_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ CMS_DB_URL not set, using local default")
	return "postgres://" + getEnv("DB_USER", "postgres") + ":" + getEnv("DB_PASSWORD", "") +
		"@" + getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432") +
		"/modeva_cms_backend?sslmode=disable"
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getEnvList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
