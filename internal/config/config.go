package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the gateway configuration.
type Config struct {
	Binance BinanceConfig `mapstructure:"binance"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// BinanceConfig contains upstream API credentials and endpoints. Base URLs
// are only set to override the production endpoints (tests, mocks).
type BinanceConfig struct {
	APIKey         string `mapstructure:"api_key"`
	SecretKey      string `mapstructure:"secret_key"`
	SpotBaseURL    string `mapstructure:"spot_base_url"`
	FuturesBaseURL string `mapstructure:"futures_base_url"`
}

// ServerConfig contains the inbound HTTP listener settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables win over file values. Missing credentials
// are a fatal construction-time error.
func Load(configPath ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.AutomaticEnv()
	_ = v.BindEnv("binance.api_key", "BINANCE_API_KEY")
	_ = v.BindEnv("binance.secret_key", "BINANCE_SECRET_KEY")
	_ = v.BindEnv("binance.spot_base_url", "BINANCE_SPOT_BASE_URL")
	_ = v.BindEnv("binance.futures_base_url", "BINANCE_FUTURES_BASE_URL")
	_ = v.BindEnv("server.listen", "LISTEN_ADDR")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Config file is optional when credentials come from the environment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Binance.APIKey == "" {
		return fmt.Errorf("BINANCE_API_KEY is required (set via environment variable or config file)")
	}
	if cfg.Binance.SecretKey == "" {
		return fmt.Errorf("BINANCE_SECRET_KEY is required (set via environment variable or config file)")
	}
	return nil
}
