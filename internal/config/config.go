package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Backend names a persistence strategy.
const (
	BackendLocal = "local"
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Persistence
	Backend  string // "local" (per-host files) or "redis" (shared realtime store)
	DataDir  string // directory for local blobs (local backend)
	SeedFile string // optional YAML seed dataset overriding the bundled defaults

	// Admin surface
	AdminUser     string        // expected username of the credential pair
	AdminPassword string        // expected password of the credential pair
	AdminPath     string        // reserved location marker that forces the ADMIN view
	SessionTTL    time.Duration // lifetime of an issued admin session token

	// Generative suggestions (disabled when the key is empty)
	GeminiAPIKey string
	GeminiModel  string

	// Backup (disabled when the file is empty)
	BackupFile     string
	BackupInterval time.Duration

	// Suggestion endpoint abuse protection
	SuggestBurst  int // token bucket burst for /api/suggest
	SuggestPerMin int // token bucket refill per minute

	// Redis (required only when Backend == "redis")
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisPoolSize       int
	RedisConnectTimeout time.Duration
	RedisRetryInterval  time.Duration
	RedisMaxWait        time.Duration
	RedisPingTimeout    time.Duration
	RedisWarnThreshold  int

	// Access restrictions
	AllowedHosts []string // optional, restrict access to specific Host headers
	AdminCIDRs   []string // optional, restrict admin API access to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SHOWREEL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SHOWREEL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SHOWREEL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SHOWREEL_PRETTY_LOG", true),

		// Persistence
		Backend:  getenv("SHOWREEL_BACKEND", BackendLocal),
		DataDir:  getenv("SHOWREEL_DATA_DIR", "/var/lib/showreel"),
		SeedFile: getenv("SHOWREEL_SEED_FILE", ""),

		// Admin
		AdminUser:     getenv("SHOWREEL_ADMIN_USER", "admin"),
		AdminPassword: requireEnv("SHOWREEL_ADMIN_PASSWORD"),
		AdminPath:     getenv("SHOWREEL_ADMIN_PATH", "/adminvmedia"),
		SessionTTL:    mustDuration("SHOWREEL_SESSION_TTL", 12*time.Hour),

		// Generative suggestions
		GeminiAPIKey: getenv("SHOWREEL_GEMINI_API_KEY", ""),
		GeminiModel:  getenv("SHOWREEL_GEMINI_MODEL", "gemini-2.5-flash"),

		// Backup
		BackupFile:     getenv("SHOWREEL_BACKUP_FILE", ""),
		BackupInterval: mustDuration("SHOWREEL_BACKUP_INTERVAL", 24*time.Hour),

		// Suggestion rate limit
		SuggestBurst:  getenvInt("SHOWREEL_SUGGEST_BURST", 3),
		SuggestPerMin: getenvInt("SHOWREEL_SUGGEST_PER_MIN", 6),

		// Redis settings
		RedisAddr:           getenv("SHOWREEL_REDIS_ADDR", ""),
		RedisUser:           getenv("SHOWREEL_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("SHOWREEL_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SHOWREEL_REDIS_DB", 0),
		RedisDT:             mustDuration("SHOWREEL_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("SHOWREEL_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("SHOWREEL_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("SHOWREEL_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("SHOWREEL_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("SHOWREEL_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("SHOWREEL_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("SHOWREEL_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisWarnThreshold:  getenvInt("SHOWREEL_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("SHOWREEL_ALLOWED_HOSTS", "")),
		AdminCIDRs:   splitAndTrim(getenv("SHOWREEL_ADMIN_CIDRS", "")),
		TrustProxy:   mustBool("SHOWREEL_TRUST_PROXY", true),
	}

	if cfg.Backend != BackendLocal && cfg.Backend != BackendRedis {
		panic(fmt.Sprintf("❌ FATAL: SHOWREEL_BACKEND must be %q or %q, got %q",
			BackendLocal, BackendRedis, cfg.Backend))
	}
	if cfg.Backend == BackendRedis && cfg.RedisAddr == "" {
		panic("❌ FATAL: SHOWREEL_REDIS_ADDR is required when SHOWREEL_BACKEND=redis")
	}
	if !strings.HasPrefix(cfg.AdminPath, "/") {
		cfg.AdminPath = "/" + cfg.AdminPath
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.AdminPassword = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.GeminiAPIKey != "" {
			cfgCopy.GeminiAPIKey = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
