package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Session SessionConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type MongoConfig struct {
	URI      string
	Database string
	MaxPool  uint64
}

type SessionConfig struct {
	TTLHours int
}

// CatalogConfig carries the write-path validation policy. YearMin is the
// canonical lower bound for a movie's release year (the first film dates to
// 1888); the upper bound is always currentYear+1.
type CatalogConfig struct {
	YearMin int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "moviecatalog")
	viper.SetDefault("MONGO_MAX_POOL", 20)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("CATALOG_YEAR_MIN", 1888)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
			MaxPool:  viper.GetUint64("MONGO_MAX_POOL"),
		},
		Session: SessionConfig{
			TTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Catalog: CatalogConfig{
			YearMin: viper.GetInt("CATALOG_YEAR_MIN"),
		},
	}

	return config, nil
}
