package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/viper"
)

// Config holds all configuration for the gallery.
type Config struct {
	Unsplash UnsplashConfig `mapstructure:",squash"`
	Server   ServerConfig   `mapstructure:",squash"`
	Log      LogConfig      `mapstructure:",squash"`
	PubSub   PubSubConfig   `mapstructure:",squash"`
}

type UnsplashConfig struct {
	// AccessKey may be empty. The gallery then starts and shows the
	// missing-key message instead of photos.
	AccessKey string        `mapstructure:"unsplash_access_key"`
	BaseURL   string        `mapstructure:"unsplash_base_url"`
	Timeout   time.Duration `mapstructure:"http_timeout"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

type PubSubConfig struct {
	ProjectID string `mapstructure:"pubsub_project_id"`
	TopicID   string `mapstructure:"pubsub_topic_id"`
	SubID     string `mapstructure:"pubsub_sub_id"`
	// Credentials is a base64 encoded service account JSON.
	Credentials string `mapstructure:"gcp_sa"`
}

// Enabled reports whether the cache warmer should subscribe.
func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != ""
}

// Load reads an optional config.yaml from the working directory and lets
// environment variables override it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("unsplash_access_key", "")
	v.SetDefault("unsplash_base_url", "https://api.unsplash.com")
	v.SetDefault("http_timeout", 15*time.Second)
	v.SetDefault("cache_ttl", 5*time.Minute)

	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	v.SetDefault("pubsub_project_id", "")
	v.SetDefault("pubsub_topic_id", "warm-gallery-cache")
	v.SetDefault("pubsub_sub_id", "warm-gallery-cache-sub")
	v.SetDefault("gcp_sa", "")
}
