package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SMSConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
	Timeout    string `yaml:"timeout"`
}

type CacheConfig struct {
	ViewTTL string `yaml:"view_ttl"`
}

type CatalogConfig struct {
	PageSize int `yaml:"page_size"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	SMS      SMSConfig      `yaml:"sms"`
	Cache    CacheConfig    `yaml:"cache"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SMSAccountSID string
	SMSAuthToken  string
	SMSFromNumber string
	SMSTimeout    time.Duration
	ViewTTL       time.Duration
	PageSize      int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	smsTimeout, err := time.ParseDuration(configFile.SMS.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid sms timeout: %w", err)
	}

	viewTTL, err := time.ParseDuration(configFile.Cache.ViewTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid view counter TTL: %w", err)
	}

	cfg := &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		DSN:           configFile.Database.DSN,
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
		SMSAccountSID: env("SMS_ACCOUNT_SID", configFile.SMS.AccountSID),
		SMSAuthToken:  env("SMS_AUTH_TOKEN", configFile.SMS.AuthToken),
		SMSFromNumber: env("SMS_FROM_NUMBER", configFile.SMS.FromNumber),
		SMSTimeout:    smsTimeout,
		ViewTTL:       viewTTL,
		PageSize:      configFile.Catalog.PageSize,
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	// Missing gateway credentials are a startup failure, not a per-request one
	if cfg.SMSAccountSID == "" || cfg.SMSAuthToken == "" {
		return nil, fmt.Errorf("sms gateway credentials missing: set sms.account_sid and sms.auth_token")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
