package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	JWTExpiresIn     time.Duration
	JWTRefreshTTL    time.Duration
	APIPrefix        string
	CORSOrigins      []string
	LiturgyAPIURL    string

	Log *logrus.Logger
)

func init() {
	Log = initLogger()
}

// LoadEnv reads .env (when present) and caches the settings every request
// path needs. Missing JWT secrets are fatal: tokens signed with "" would
// happily verify against "".
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			initLogger().Warn("no .env file found, using system environment")
		}
	}

	Log = initLogger()
	if lvl, err := logrus.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		Log.SetLevel(lvl)
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	JWTExpiresIn = parseDuration(GetEnv("JWT_EXPIRES_IN", "24h"), 24*time.Hour)
	JWTRefreshTTL = parseDuration(GetEnv("JWT_REFRESH_EXPIRES_IN", "168h"), 7*24*time.Hour)
	APIPrefix = GetEnv("API_PREFIX", "/api")
	LiturgyAPIURL = strings.TrimRight(GetEnv("LITURGY_API_URL", "https://liturgia.up.railway.app"), "/")

	CORSOrigins = CORSOrigins[:0]
	for _, o := range strings.Split(GetEnv("CORS_ORIGINS", "http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			CORSOrigins = append(CORSOrigins, o)
		}
	}

	if JWTSecret == "" || JWTRefreshSecret == "" {
		Log.Fatal("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func initLogger() *logrus.Logger {
	if Log != nil {
		return Log
	}
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	if lvl, err := logrus.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		l.SetLevel(lvl)
	}
	return l
}
