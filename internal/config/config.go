package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Marvel   MarvelConfig   `mapstructure:"marvel"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
	Database DatabaseConfig `mapstructure:"database"`
}

type MarvelConfig struct {
	BaseURL    string `mapstructure:"base_url" validate:"required,url"`
	PublicKey  string `mapstructure:"public_key"`
	PrivateKey string `mapstructure:"private_key"`
	// PageSize is the number of records requested per API call.
	// The Marvel API caps limit at 100.
	PageSize        int    `mapstructure:"page_size" validate:"required,gt=0,lte=100"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds" validate:"gte=0"`
	RetryAttempts   uint   `mapstructure:"retry_attempts"`
	RequestInterval int    `mapstructure:"request_interval" validate:"gte=0"`
	CacheDirectory  string `mapstructure:"cache_directory"`
}

type OutputsConfig struct {
	DataDirectory string `mapstructure:"data_directory" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/marvelsync")
	}

	v.SetDefault("marvel.base_url", "https://gateway.marvel.com")
	v.SetDefault("marvel.page_size", 100)
	v.SetDefault("marvel.timeout_seconds", 30)
	v.SetDefault("marvel.retry_attempts", 3)
	v.SetDefault("marvel.request_interval", 0)
	v.SetDefault("outputs.data_directory", "data")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)

	// Bind API keys to environment variables only (not from config file)
	if err := v.BindEnv("marvel.public_key", "MARVEL_PUBLIC_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MARVEL_PUBLIC_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("marvel.private_key", "MARVEL_PRIVATE_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MARVEL_PRIVATE_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "MARVEL_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind MARVEL_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CharactersCSVPath is the default output path for the characters command.
func (c *Config) CharactersCSVPath() string {
	return filepath.Join(c.Outputs.DataDirectory, "characters.csv")
}

// ComicsJSONPath is the default output path for the comics command.
func (c *Config) ComicsJSONPath() string {
	return filepath.Join(c.Outputs.DataDirectory, "comics.json")
}
