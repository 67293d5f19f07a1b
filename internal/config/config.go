package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix               = "SKORE"
	defaultHTTPAddress      = "0.0.0.0:8080"
	defaultDatabasePath     = "skore.db"
	defaultLogLevel         = "info"
	defaultSiteURL          = "http://localhost:3000"
	defaultEmailFrom        = "SKORE <onboarding@resend.dev>"
	defaultDownloadDir      = "downloads"
	defaultDownloadTokenTTL = 24 * time.Hour
)

// AppConfig captures runtime configuration for the API server.
type AppConfig struct {
	HTTPAddress         string
	DatabasePath        string
	LogLevel            string
	SiteURL             string
	EmailAPIKey         string
	EmailFrom           string
	AdminEmail          string
	RedisAddr           string
	DownloadDir         string
	DownloadTokenSecret string
	DownloadTokenTTL    time.Duration
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("database.path", defaultDatabasePath)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("site.url", defaultSiteURL)
	configViper.SetDefault("email.from", defaultEmailFrom)
	configViper.SetDefault("download.dir", defaultDownloadDir)
	configViper.SetDefault("download.token_ttl", defaultDownloadTokenTTL)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddress:         configViper.GetString("http.address"),
		DatabasePath:        configViper.GetString("database.path"),
		LogLevel:            configViper.GetString("log.level"),
		SiteURL:             strings.TrimRight(configViper.GetString("site.url"), "/"),
		EmailAPIKey:         configViper.GetString("email.api_key"),
		EmailFrom:           configViper.GetString("email.from"),
		AdminEmail:          configViper.GetString("email.admin"),
		RedisAddr:           configViper.GetString("ratelimit.redis_addr"),
		DownloadDir:         configViper.GetString("download.dir"),
		DownloadTokenSecret: configViper.GetString("download.token_secret"),
		DownloadTokenTTL:    configViper.GetDuration("download.token_ttl"),
	}

	if cfg.DownloadTokenTTL <= 0 {
		cfg.DownloadTokenTTL = defaultDownloadTokenTTL
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if strings.TrimSpace(c.SiteURL) == "" {
		return fmt.Errorf("site.url is required")
	}
	if strings.TrimSpace(c.EmailFrom) == "" {
		return fmt.Errorf("email.from is required")
	}
	if strings.TrimSpace(c.AdminEmail) == "" {
		return fmt.Errorf("email.admin is required")
	}
	return nil
}
