package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	BusSystem BusSystemConfig
	Cache     CacheConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// BusSystemConfig - настройки доступа к API BusSystem
type BusSystemConfig struct {
	APIURL         string
	Login          string
	Password       string
	PartnerID      string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	Currency       string
	Language       string
	Version        string
	ResponseFormat string
}

type CacheConfig struct {
	Enabled   bool
	Prefix    string
	PointsTTL time.Duration
	RoutesTTL time.Duration
	PlansTTL  time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			MigrationsPath:  viper.GetString("DB_MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		BusSystem: BusSystemConfig{
			APIURL:         viper.GetString("BUSSYSTEM_API_URL"),
			Login:          viper.GetString("BUSSYSTEM_LOGIN"),
			Password:       viper.GetString("BUSSYSTEM_PASSWORD"),
			PartnerID:      viper.GetString("BUSSYSTEM_PARTNER_ID"),
			Timeout:        time.Duration(viper.GetInt("BUSSYSTEM_TIMEOUT")) * time.Second,
			RetryAttempts:  viper.GetInt("BUSSYSTEM_RETRY_ATTEMPTS"),
			RetryDelay:     time.Duration(viper.GetInt("BUSSYSTEM_RETRY_DELAY")) * time.Millisecond,
			Currency:       viper.GetString("BUSSYSTEM_DEFAULT_CURRENCY"),
			Language:       viper.GetString("BUSSYSTEM_DEFAULT_LANGUAGE"),
			Version:        viper.GetString("BUSSYSTEM_DEFAULT_API_VERSION"),
			ResponseFormat: viper.GetString("BUSSYSTEM_RESPONSE_FORMAT"),
		},
		Cache: CacheConfig{
			Enabled:   viper.GetBool("BUSSYSTEM_CACHE_ENABLED"),
			Prefix:    viper.GetString("BUSSYSTEM_CACHE_PREFIX"),
			PointsTTL: time.Duration(viper.GetInt("BUSSYSTEM_CACHE_POINTS_TTL")) * time.Second,
			RoutesTTL: time.Duration(viper.GetInt("BUSSYSTEM_CACHE_ROUTES_TTL")) * time.Second,
			PlansTTL:  time.Duration(viper.GetInt("BUSSYSTEM_CACHE_PLANS_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	// Set default values if not provided
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "migrations"
	}
	if cfg.BusSystem.APIURL == "" {
		cfg.BusSystem.APIURL = "https://test-api.bussystem.eu/server"
	}
	if cfg.BusSystem.Timeout == 0 {
		cfg.BusSystem.Timeout = 120 * time.Second
	}
	if cfg.BusSystem.RetryAttempts == 0 {
		cfg.BusSystem.RetryAttempts = 3
	}
	if cfg.BusSystem.RetryDelay == 0 {
		cfg.BusSystem.RetryDelay = 1000 * time.Millisecond
	}
	if cfg.BusSystem.Currency == "" {
		cfg.BusSystem.Currency = "EUR"
	}
	if cfg.BusSystem.Language == "" {
		cfg.BusSystem.Language = "en"
	}
	if cfg.BusSystem.Version == "" {
		cfg.BusSystem.Version = "1.1"
	}
	if cfg.BusSystem.ResponseFormat == "" {
		cfg.BusSystem.ResponseFormat = "json"
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "bussystem"
	}
	if cfg.Cache.PointsTTL == 0 {
		cfg.Cache.PointsTTL = time.Hour
	}
	if cfg.Cache.RoutesTTL == 0 {
		cfg.Cache.RoutesTTL = 5 * time.Minute
	}
	if cfg.Cache.PlansTTL == 0 {
		cfg.Cache.PlansTTL = 24 * time.Hour
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
