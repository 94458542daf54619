package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Store    StoreConfig    `mapstructure:"store"`
	Notifier NotifierConfig `mapstructure:"notifier"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// StoreConfig carries the storefront identity used in rendered notifications.
type StoreConfig struct {
	Name          string `mapstructure:"name"`
	PrimaryLocale string `mapstructure:"primary_locale"`
}

// NotifierConfig selects the delivery transport for order notifications and
// carries the per-transport settings. Credentials come from config or the
// environment, never from code.
type NotifierConfig struct {
	Provider string         `mapstructure:"provider"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

type TelegramConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

type WebhookConfig struct {
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A .env file in the working directory is applied first so secrets like the
// SMTP password can live outside the config file. A missing config file is
// fine: defaults plus environment variables are enough to run.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.bazar-sodai/")
	v.AddConfigPath("/etc/bazar-sodai/")

	setDefaults(v)

	v.SetEnvPrefix("BAZAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Defaults exist for every key so environment overrides are picked up during
// Unmarshal even when the key is absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("catalog.path", "data.json")
	v.SetDefault("catalog.watch", true)

	v.SetDefault("store.name", "Bazar-Sodai")
	v.SetDefault("store.primary_locale", "en")

	v.SetDefault("notifier.provider", "smtp")

	v.SetDefault("notifier.smtp.host", "smtp.gmail.com")
	v.SetDefault("notifier.smtp.port", 465)
	v.SetDefault("notifier.smtp.username", "")
	v.SetDefault("notifier.smtp.password", "")
	v.SetDefault("notifier.smtp.from", "")
	v.SetDefault("notifier.smtp.to", "")

	v.SetDefault("notifier.telegram.token", "")
	v.SetDefault("notifier.telegram.chat_id", 0)

	v.SetDefault("notifier.webhook.url", "")
	v.SetDefault("notifier.webhook.auth_token", "")
}
