package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Geo      GeoConfig
	OpenAI   OpenAIConfig
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
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	MedicineCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GeoConfig carries all settings of the facility-resolution pipeline.
// Provider selects the facility-search strategy: "overpass" or "google".
type GeoConfig struct {
	Provider            string
	DefaultRadiusMeters int
	LocationIQ          LocationIQConfig
	Overpass            OverpassConfig
	GooglePlaces        GooglePlacesConfig
}

type LocationIQConfig struct {
	APIKey         string
	BaseURL        string
	CountryCodes   string
	Limit          int
	RequestTimeout time.Duration
}

type OverpassConfig struct {
	Endpoint string
	// QueryTimeout is the server-side [timeout:..] directive in seconds,
	// RequestTimeout bounds the whole HTTP round trip.
	QueryTimeoutSec int
	RequestTimeout  time.Duration
}

type GooglePlacesConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
}

type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	Temperature    float64
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine in containerized deployments where
		// everything arrives through the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
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
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MedicineCacheTTL: time.Duration(viper.GetInt("MEDICINE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geo: GeoConfig{
			Provider:            viper.GetString("GEO_PROVIDER"),
			DefaultRadiusMeters: viper.GetInt("GEO_DEFAULT_RADIUS"),
			LocationIQ: LocationIQConfig{
				APIKey:         viper.GetString("LOCATIONIQ_API_KEY"),
				BaseURL:        viper.GetString("LOCATIONIQ_BASE_URL"),
				CountryCodes:   viper.GetString("LOCATIONIQ_COUNTRY_CODES"),
				Limit:          viper.GetInt("LOCATIONIQ_LIMIT"),
				RequestTimeout: time.Duration(viper.GetInt("LOCATIONIQ_TIMEOUT")) * time.Second,
			},
			Overpass: OverpassConfig{
				Endpoint:        viper.GetString("OVERPASS_ENDPOINT"),
				QueryTimeoutSec: viper.GetInt("OVERPASS_QUERY_TIMEOUT"),
				RequestTimeout:  time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
			},
			GooglePlaces: GooglePlacesConfig{
				APIKey:         viper.GetString("GOOGLE_PLACES_API_KEY"),
				BaseURL:        viper.GetString("GOOGLE_PLACES_BASE_URL"),
				RequestTimeout: time.Duration(viper.GetInt("GOOGLE_PLACES_TIMEOUT")) * time.Second,
			},
		},
		OpenAI: OpenAIConfig{
			APIKey:         viper.GetString("OPENAI_API_KEY"),
			BaseURL:        viper.GetString("OPENAI_BASE_URL"),
			Model:          viper.GetString("OPENAI_MODEL"),
			MaxTokens:      viper.GetInt("OPENAI_MAX_TOKENS"),
			Temperature:    viper.GetFloat64("OPENAI_TEMPERATURE"),
			RequestTimeout: time.Duration(viper.GetInt("OPENAI_TIMEOUT")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Cache.MedicineCacheTTL == 0 {
		cfg.Cache.MedicineCacheTTL = 10 * time.Minute
	}
	if cfg.Geo.Provider == "" {
		cfg.Geo.Provider = "overpass"
	}
	if cfg.Geo.DefaultRadiusMeters == 0 {
		cfg.Geo.DefaultRadiusMeters = 5000
	}
	if cfg.Geo.LocationIQ.BaseURL == "" {
		cfg.Geo.LocationIQ.BaseURL = "https://us1.locationiq.com"
	}
	if cfg.Geo.LocationIQ.CountryCodes == "" {
		cfg.Geo.LocationIQ.CountryCodes = "in"
	}
	if cfg.Geo.LocationIQ.Limit == 0 {
		cfg.Geo.LocationIQ.Limit = 5
	}
	if cfg.Geo.LocationIQ.RequestTimeout == 0 {
		cfg.Geo.LocationIQ.RequestTimeout = 10 * time.Second
	}
	if cfg.Geo.Overpass.Endpoint == "" {
		cfg.Geo.Overpass.Endpoint = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Geo.Overpass.QueryTimeoutSec == 0 {
		cfg.Geo.Overpass.QueryTimeoutSec = 25
	}
	if cfg.Geo.Overpass.RequestTimeout == 0 {
		cfg.Geo.Overpass.RequestTimeout = 30 * time.Second
	}
	if cfg.Geo.GooglePlaces.BaseURL == "" {
		cfg.Geo.GooglePlaces.BaseURL = "https://maps.googleapis.com/maps/api"
	}
	if cfg.Geo.GooglePlaces.RequestTimeout == 0 {
		cfg.Geo.GooglePlaces.RequestTimeout = 10 * time.Second
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.OpenAI.MaxTokens == 0 {
		cfg.OpenAI.MaxTokens = 500
	}
	if cfg.OpenAI.Temperature == 0 {
		cfg.OpenAI.Temperature = 0.7
	}
	if cfg.OpenAI.RequestTimeout == 0 {
		cfg.OpenAI.RequestTimeout = 30 * time.Second
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

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
