package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"guarashopp-storefront/internal/db"
)

// Config holds runtime configuration read from the environment and optional env files.
type Config struct {
	AppEnv          string
	AppName         string
	LogLevel        string
	HTTPAddr        string
	APIBaseURL      string
	APITimeout      time.Duration
	DBConnString    string
	DBMaxConns      int32
	DBPingTimeout   time.Duration
	SessionSecret   string
	SessionCookie   string
	SessionMaxAge   time.Duration
	VisitorIdleTTL  time.Duration
	AlertDuration   time.Duration
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by .env/config.env files and then by environment variables.
func FromEnv() Config {
	v := viper.New()
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	_ = v.ReadInConfig()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return Config{
		AppEnv:          stringOrDefault(v, "APP_ENV", "development"),
		AppName:         stringOrDefault(v, "APP_NAME", "guarashopp-storefront"),
		LogLevel:        stringOrDefault(v, "LOG_LEVEL", "info"),
		HTTPAddr:        stringOrDefault(v, "HTTP_ADDR", ":3000"),
		APIBaseURL:      stringOrDefault(v, "API_BASE_URL", "http://localhost:5000"),
		APITimeout:      secondsOrDefault(v, "API_TIMEOUT_SECONDS", 15*time.Second),
		DBConnString:    stringOrDefault(v, "DB_DSN", ""),
		DBMaxConns:      int32(intOrDefault(v, "DB_MAX_CONNS", 8)),
		DBPingTimeout:   secondsOrDefault(v, "DB_PING_TIMEOUT_SECONDS", 5*time.Second),
		SessionSecret:   stringOrDefault(v, "SESSION_SECRET", "dev-only-session-secret-change-me"),
		SessionCookie:   stringOrDefault(v, "SESSION_COOKIE", "guarashopp_visitor"),
		SessionMaxAge:   secondsOrDefault(v, "SESSION_MAX_AGE_SECONDS", 30*24*time.Hour),
		VisitorIdleTTL:  secondsOrDefault(v, "VISITOR_IDLE_TTL_SECONDS", 2*time.Hour),
		AlertDuration:   millisOrDefault(v, "ALERT_DURATION_MS", 3000*time.Millisecond),
		CORSOrigins:     listOrDefault(v, "CORS_ORIGINS", []string{"http://localhost:3001"}),
		ShutdownTimeout: secondsOrDefault(v, "SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

// DBOptions is the pool setup shared by the server and the migrate tool.
func (c Config) DBOptions() db.Options {
	return db.Options{
		DSN:         c.DBConnString,
		AppName:     c.AppName,
		MaxConns:    c.DBMaxConns,
		PingTimeout: c.DBPingTimeout,
	}
}

// Development reports whether the app runs with development defaults (console logs, insecure cookie).
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

func stringOrDefault(v *viper.Viper, key, def string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return def
}

func intOrDefault(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if n := v.GetInt(key); n > 0 {
		return n
	}
	return def
}

func secondsOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	seconds := v.GetInt(key)
	if seconds <= 0 {
		return def
	}
	return time.Duration(seconds) * time.Second
}

func millisOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	ms := v.GetInt(key)
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func listOrDefault(v *viper.Viper, key string, def []string) []string {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
