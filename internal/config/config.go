package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	OpenAI OpenAIConfig
	Upload UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds the text-completion provider settings. The API key is
// an explicit config value injected into the client, never a package global.
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds inbound upload settings. The archive is an optional
// side capability; claims process identically with it disabled.
type UploadConfig struct {
	ArchiveEnabled bool   `mapstructure:"archive_enabled"`
	ArchiveDir     string `mapstructure:"archive_dir"`
	MaxFileSizeMB  int64  `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the MEDCLAIMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDCLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults. The write timeout must outlive a full batch of
	// completion calls, so it is far above the usual 15s.
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// OpenAI defaults
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.timeout_secs", 60)

	// Upload defaults
	v.SetDefault("upload.archive_enabled", false)
	v.SetDefault("upload.archive_dir", "uploads")
	v.SetDefault("upload.max_file_size_mb", 20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "MEDCLAIMS_SERVER_PORT",
		"server.read_timeout":     "MEDCLAIMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "MEDCLAIMS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "MEDCLAIMS_SERVER_ENVIRONMENT",
		"log.level":               "MEDCLAIMS_LOG_LEVEL",
		"log.format":              "MEDCLAIMS_LOG_FORMAT",
		"cors.allowed_origins":    "MEDCLAIMS_CORS_ALLOWED_ORIGINS",
		"openai.api_key":          "MEDCLAIMS_OPENAI_API_KEY",
		"openai.model":            "MEDCLAIMS_OPENAI_MODEL",
		"openai.base_url":         "MEDCLAIMS_OPENAI_BASE_URL",
		"openai.timeout_secs":     "MEDCLAIMS_OPENAI_TIMEOUT_SECS",
		"upload.archive_enabled":  "MEDCLAIMS_UPLOAD_ARCHIVE_ENABLED",
		"upload.archive_dir":      "MEDCLAIMS_UPLOAD_ARCHIVE_DIR",
		"upload.max_file_size_mb": "MEDCLAIMS_UPLOAD_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MEDCLAIMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MEDCLAIMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.OpenAI = OpenAIConfig{
		APIKey:      v.GetString("openai.api_key"),
		Model:       v.GetString("openai.model"),
		BaseURL:     v.GetString("openai.base_url"),
		TimeoutSecs: v.GetInt("openai.timeout_secs"),
	}

	cfg.Upload = UploadConfig{
		ArchiveEnabled: v.GetBool("upload.archive_enabled"),
		ArchiveDir:     v.GetString("upload.archive_dir"),
		MaxFileSizeMB:  v.GetInt64("upload.max_file_size_mb"),
	}

	return cfg, nil
}
