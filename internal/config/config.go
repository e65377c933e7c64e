// Package config loads test-suite configuration from the environment and
// exposes the Sales Portal endpoint map.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	cfg     *Config
	loadErr error
	once    sync.Once
)

// Config holds everything the suite needs to reach the portal under test.
type Config struct {
	PortalURL string
	APIURL    string

	Username string
	Password string

	// ManagerIDs are user IDs eligible for order assignment, in priority order.
	ManagerIDs []string

	// Optional Telegram notifier credentials. Empty means notifications are
	// skipped, never failed.
	TelegramBotToken string
	TelegramChatID   string

	Headless bool
	SlowMo   time.Duration
	Timeout  time.Duration
}

// Load reads configuration once per process. Environment variables always win
// over the .env file (.env.dev when TEST_ENV=dev).
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
	})
	return cfg, loadErr
}

// MustLoad is Load for test setup paths where a broken environment should
// abort immediately.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func load() (*Config, error) {
	v := viper.New()

	envFile := ".env"
	if os.Getenv("TEST_ENV") == "dev" {
		envFile = ".env.dev"
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine as long as the variables are exported.
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}
	v.AutomaticEnv()

	require := func(key string) (string, error) {
		val := v.GetString(key)
		if val == "" {
			return "", fmt.Errorf("required environment variable %q is missing (set it or add it to %s)", key, envFile)
		}
		return val, nil
	}

	c := &Config{
		Headless: v.GetString("HEADLESS") != "false",
		Timeout:  30 * time.Second,
	}

	var err error
	if c.PortalURL, err = require("SALES_PORTAL_URL"); err != nil {
		return nil, err
	}
	if c.APIURL, err = require("SALES_PORTAL_API_URL"); err != nil {
		return nil, err
	}
	if c.Username, err = require("USER_NAME"); err != nil {
		return nil, err
	}
	if c.Password, err = require("USER_PASSWORD"); err != nil {
		return nil, err
	}

	rawManagers, err := require("MANAGER_IDS")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(rawManagers), &c.ManagerIDs); err != nil {
		return nil, fmt.Errorf("MANAGER_IDS must be a JSON array of strings: %w", err)
	}

	c.TelegramBotToken = v.GetString("TELEGRAM_BOT_TOKEN")
	c.TelegramChatID = v.GetString("TELEGRAM_CHAT_ID")

	if ms := v.GetInt("SLOW_MO"); ms > 0 {
		c.SlowMo = time.Duration(ms) * time.Millisecond
	}

	return c, nil
}
