package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Monitoring Engine Configuration
	Monitor MonitorConfig
	Probe   ProbeConfig
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	MaxRetries   int
	MinIdleConns int
	PoolSize     int
	PoolTimeout  time.Duration
}

// MonitorConfig tunes the batch scheduler and probe pacing.
type MonitorConfig struct {
	BatchSize       int
	InterBatchDelay time.Duration
	ProbeTimeout    time.Duration
}

// ProbeConfig holds the external endpoints the signal probes talk to.
type ProbeConfig struct {
	UserAgent       string
	DoHEndpoint     string
	BioURLTemplate  string
	FeedURLTemplate string
	ContentIndexURL string
	DiscoveryURL    string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("mediawatch-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mediawatch/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.MaxRetries = viper.GetInt("redis.max_retries")
	cfg.Redis.MinIdleConns = viper.GetInt("redis.min_idle_conns")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")
	cfg.Redis.PoolTimeout = viper.GetDuration("redis.pool_timeout")

	// Monitor
	cfg.Monitor.BatchSize = viper.GetInt("monitor.batch_size")
	cfg.Monitor.InterBatchDelay = viper.GetDuration("monitor.inter_batch_delay")
	cfg.Monitor.ProbeTimeout = viper.GetDuration("monitor.probe_timeout")

	// Probe
	cfg.Probe.UserAgent = viper.GetString("probe.user_agent")
	cfg.Probe.DoHEndpoint = viper.GetString("probe.doh_endpoint")
	cfg.Probe.BioURLTemplate = viper.GetString("probe.bio_url_template")
	cfg.Probe.FeedURLTemplate = viper.GetString("probe.feed_url_template")
	cfg.Probe.ContentIndexURL = viper.GetString("probe.content_index_url")
	cfg.Probe.DiscoveryURL = viper.GetString("probe.discovery_url")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8082)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "mediawatch")
	viper.SetDefault("postgres.dbname", "mediawatch")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_idle_conns", 25)
	viper.SetDefault("postgres.max_open_conns", 100)
	viper.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.pool_size", 50)
	viper.SetDefault("redis.pool_timeout", 4*time.Second)

	// Monitor
	viper.SetDefault("monitor.batch_size", 10)
	viper.SetDefault("monitor.inter_batch_delay", 2*time.Second)
	viper.SetDefault("monitor.probe_timeout", 10*time.Second)

	// Probe
	viper.SetDefault("probe.user_agent", "MediaWatchBot/1.0 (+https://mediawatch.example.com/bot)")
	viper.SetDefault("probe.doh_endpoint", "https://dns.google/resolve")
	viper.SetDefault("probe.bio_url_template", "https://social.mediawatch.example.com/%s/about")
	viper.SetDefault("probe.feed_url_template", "https://social.mediawatch.example.com/%s")
	viper.SetDefault("probe.content_index_url", "https://index.mediawatch.example.com/v1")
	viper.SetDefault("probe.discovery_url", "https://index.mediawatch.example.com/v1/outlets")
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Monitor.BatchSize <= 0 {
		return fmt.Errorf("monitor.batch_size must be positive")
	}
	if !strings.Contains(cfg.Probe.BioURLTemplate, "%s") {
		return fmt.Errorf("probe.bio_url_template must contain a %%s placeholder")
	}
	if !strings.Contains(cfg.Probe.FeedURLTemplate, "%s") {
		return fmt.Errorf("probe.feed_url_template must contain a %%s placeholder")
	}
	return nil
}
