package utils

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config is the immutable process configuration, built once at startup and
// passed by reference to whatever needs it.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTMaxAge   int // minutes
	Port        int
}

var requiredKeys = []string{"DATABASE_URL", "JWT_SECRET", "JWT_MAXAGE", "PORT"}

// LoadConfig reads .env plus the process environment. Any required value
// that is missing or fails to parse aborts startup before a single request
// is served.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// .env is optional; the environment may carry everything.
	_ = viper.ReadInConfig()
	viper.AutomaticEnv()

	for _, key := range requiredKeys {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("config: %s must be set", key)
		}
	}

	maxAge, err := strconv.Atoi(viper.GetString("JWT_MAXAGE"))
	if err != nil {
		return nil, fmt.Errorf("config: JWT_MAXAGE must be a number: %w", err)
	}

	port, err := strconv.Atoi(viper.GetString("PORT"))
	if err != nil {
		return nil, fmt.Errorf("config: PORT must be a number: %w", err)
	}

	return &Config{
		DatabaseURL: viper.GetString("DATABASE_URL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		JWTMaxAge:   maxAge,
		Port:        port,
	}, nil
}
