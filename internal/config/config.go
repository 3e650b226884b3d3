// Package config загружает настройки бота: .env (godotenv), затем
// необязательный YAML-файл и переменные окружения OSRSBOT_* (koanf).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

const (
	EnvPrefix = "OSRSBOT_"
	// TokenEnv — имя переменной с токеном Telegram.
	TokenEnv = "TOKEN"
)

var ErrNoToken = errors.New("config: bot token is not set (TOKEN)")

type Config struct {
	Token string `koanf:"token"`

	MappingURL  string        `koanf:"mapping_url"`
	PricesURL   string        `koanf:"prices_url"`
	DetailURL   string        `koanf:"detail_url"`
	HiscoreURL  string        `koanf:"hiscore_url"`
	WikiURL     string        `koanf:"wiki_url"`
	UserAgent   string        `koanf:"user_agent"`
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// /house: за чьим Construction следим
	HousePlayer      string `koanf:"house_player"`
	HouseName        string `koanf:"house_name"`
	HouseTargetLevel int    `koanf:"house_target_level"`
	HouseTargetXP    int64  `koanf:"house_target_xp"`

	PollTimeout int    `koanf:"poll_timeout"` // секунды long polling
	MetricsAddr string `koanf:"metrics_addr"` // пусто — без метрик
	Debug       bool   `koanf:"debug"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	LogFile   string `koanf:"log_file"`
}

func Default() Config {
	return Config{
		MappingURL:       osrsapi.DefaultMappingURL,
		PricesURL:        osrsapi.DefaultPricesURL,
		DetailURL:        osrsapi.DefaultDetailURL,
		HiscoreURL:       osrsapi.DefaultHiscoreURL,
		WikiURL:          "https://oldschool.runescape.wiki/w/",
		UserAgent:        "osrsbot (+https://github.com/EgorLis/osrsbot)",
		HTTPTimeout:      10 * time.Second,
		HousePlayer:      "Tricstar",
		HouseName:        "Joel",
		HouseTargetLevel: 83,
		HouseTargetXP:    2_673_114,
		PollTimeout:      60,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// Load: .env -> YAML (если path не пустой) -> OSRSBOT_* -> TOKEN.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
	}
	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(TokenEnv)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrNoToken
	}
	urls := map[string]string{
		"mapping_url": c.MappingURL,
		"prices_url":  c.PricesURL,
		"detail_url":  c.DetailURL,
		"hiscore_url": c.HiscoreURL,
		"wiki_url":    c.WikiURL,
	}
	for key, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: %s: invalid url %q", key, raw)
		}
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: http_timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("config: poll_timeout must be positive, got %d", c.PollTimeout)
	}
	if c.HousePlayer == "" {
		return errors.New("config: house_player is empty")
	}
	return nil
}

// APIConf — настройки для osrsapi.Client.
func (c *Config) APIConf() osrsapi.Conf {
	return osrsapi.Conf{
		MappingURL: c.MappingURL,
		PricesURL:  c.PricesURL,
		DetailURL:  c.DetailURL,
		HiscoreURL: c.HiscoreURL,
		UserAgent:  c.UserAgent,
		Timeout:    c.HTTPTimeout,
	}
}
