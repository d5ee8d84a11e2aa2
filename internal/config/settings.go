// Package config loads gateway settings and the accounts document.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the gateway reads.
const EnvPrefix = "SNIPPETS"

// Settings holds process configuration.
type Settings struct {
	Port              string        `mapstructure:"port"`
	LogLevel          string        `mapstructure:"log_level"`
	LogFormat         string        `mapstructure:"log_format"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	AuthorizationTTL  time.Duration `mapstructure:"authorization_ttl"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	UserAgent         string        `mapstructure:"user_agent"`
	AccountsFile      string        `mapstructure:"accounts_file"`
	AccountsPoll      time.Duration `mapstructure:"accounts_poll"`
	ClientID          string        `mapstructure:"client_id"`
	RedirectURI       string        `mapstructure:"redirect_uri"`
	Scope             string        `mapstructure:"scope"`
	AppName           string        `mapstructure:"app_name"`
	SignInRedirectURL string        `mapstructure:"signin_redirect_url"`
	DiscoverRateLimit int           `mapstructure:"discover_rate_limit"`
	MicroblogToken    string        `mapstructure:"microblog_token"`
}

var defaults = map[string]any{
	"port":                "3000",
	"log_level":           "info",
	"log_format":          "json",
	"cache_ttl":           5 * time.Minute,
	"authorization_ttl":   10 * time.Minute,
	"http_timeout":        30 * time.Second,
	"user_agent":          "Snippets/1.0",
	"accounts_file":       "config/accounts.yaml",
	"accounts_poll":       10 * time.Second,
	"client_id":           "https://snippets.example/",
	"redirect_uri":        "snippets://micropub",
	"scope":               "create",
	"app_name":            "Snippets",
	"signin_redirect_url": "snippets://signin",
	"discover_rate_limit": 10,
	"microblog_token":     "",
}

// Load reads settings from, in increasing priority: defaults, an optional
// snippets.yaml in . or ./config, and SNIPPETS_* environment variables.
// envFiles are loaded into the environment first; missing ones are skipped.
func Load(envFiles ...string) (Settings, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return Settings{}, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return Settings{}, err
	}

	v.SetConfigName("snippets")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
