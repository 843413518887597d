package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	LogLevel          string
	Port              string
	GeminiAPIKey      string
	GeminiBaseURL     string
	GeminiEditModel   string
	GeminiImageModel  string
	GeminiTextModel   string
	OutputMIMEType    string
	TranslateTarget   string
	MaxUploadBytes    int64
	SessionIdleTTL    time.Duration
	CORSAllowedOrigin []string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
	ShutdownTimeout   time.Duration
	RateLimitPerMin   int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		LogLevel:          strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		Port:              getEnv("PORT", "8080"),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiBaseURL:     strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		GeminiEditModel:   getEnv("GEMINI_EDIT_MODEL", "gemini-2.5-flash-image"),
		GeminiImageModel:  getEnv("GEMINI_IMAGE_MODEL", "imagen-4.0-generate-001"),
		GeminiTextModel:   getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		OutputMIMEType:    getEnv("OUTPUT_MIME_TYPE", "image/jpeg"),
		TranslateTarget:   getEnv("TRANSLATE_TARGET_LANG", "en"),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_BYTES", 20<<20)),
		SessionIdleTTL:    time.Minute * time.Duration(getEnvInt("SESSION_IDLE_MINUTES", 120)),
		CORSAllowedOrigin: getEnvList("CORS_ALLOWED_ORIGINS"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:   getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}
	// In-flight generations may run up to the write timeout, so shutdown waits
	// at least that long unless told otherwise.
	cfg.ShutdownTimeout = time.Second * time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 0))
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = cfg.HTTPWriteTimeout + 10*time.Second
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if !strings.HasPrefix(cfg.OutputMIMEType, "image/") {
		return nil, fmt.Errorf("OUTPUT_MIME_TYPE must be an image type, got %q", cfg.OutputMIMEType)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
