package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Database  DatabaseConfig  `mapstructure:"database"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Export    ExportConfig    `mapstructure:"export"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type EngineConfig struct {
	Provider        string  `mapstructure:"provider"`
	ConfidenceFloor float64 `mapstructure:"confidence_floor"`
	DictionaryPath  string  `mapstructure:"dictionary_path"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

func Load(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.hausa-translate")
	}

	// Set defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("engine.provider", "dictionary")
	viper.SetDefault("engine.confidence_floor", 0.1)
	viper.SetDefault("engine.dictionary_path", "")
	viper.SetDefault("database.path", "./hausa-translate.db")
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("export.dir", "./exports")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Resolve relative paths
	if cfg.Database.Path != "" && !filepath.IsAbs(cfg.Database.Path) {
		cwd, _ := os.Getwd()
		cfg.Database.Path = filepath.Join(cwd, cfg.Database.Path)
	}

	if !filepath.IsAbs(cfg.Export.Dir) {
		cwd, _ := os.Getwd()
		cfg.Export.Dir = filepath.Join(cwd, cfg.Export.Dir)
	}

	return &cfg, nil
}
