package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the recommendation service
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Storage StorageConfig `mapstructure:"storage"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Listen   string `mapstructure:"listen"`
}

// TMDBConfig contains movie catalog provider settings
type TMDBConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	ImageBaseURL   string        `mapstructure:"image_base_url"`
	Language       string        `mapstructure:"language"`
	Timeout        time.Duration `mapstructure:"timeout"`
	TrailerTimeout time.Duration `mapstructure:"trailer_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	MaxPages       int           `mapstructure:"max_pages"`
}

func (t TMDBConfig) Validate() error {
	if strings.TrimSpace(t.APIKey) == "" {
		return fmt.Errorf("tmdb.api_key required (set TMDB_API_KEY)")
	}
	return nil
}

// LLMConfig contains chat-completion provider settings
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("llm.api_key required (set OPENAI_API_KEY)")
	}
	return nil
}

// StorageConfig contains memo cache backend settings
type StorageConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains Redis connection settings. The memo cache falls back
// to an in-process map when no host is configured.
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Host) != ""
}

func (r RedisConfig) Validate() error {
	if r.Enabled() && strings.TrimSpace(r.Port) == "" {
		return fmt.Errorf("storage.redis.port required when host is set")
	}
	return nil
}

// LoadConfig loads config from file and environment
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.listen", ":8080")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	viper.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	viper.SetDefault("tmdb.language", "en-US")
	viper.SetDefault("tmdb.timeout", 20*time.Second)
	viper.SetDefault("tmdb.trailer_timeout", 15*time.Second)
	viper.SetDefault("tmdb.cache_ttl", 10*time.Minute)
	viper.SetDefault("tmdb.max_pages", 5)
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.base_url", "https://api.openai.com/v1")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.6)
	viper.SetDefault("llm.timeout", 20*time.Second)
	viper.SetDefault("storage.redis.timeout", 5*time.Second)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("MOODREEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; env vars alone can configure the service.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	// Bare env vars take precedence, matching how the keys are provisioned.
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		config.TMDB.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		config.LLM.APIKey = v
	}

	if err := config.TMDB.Validate(); err != nil {
		panic(err)
	}
	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}
	if err := config.Storage.Redis.Validate(); err != nil {
		panic(err)
	}
	return &config
}
