package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort           string
	CORSAllowedOrigins []string
	OperatorWorkers    int
	SessionTTL         time.Duration

	CurrencySymbol string
	CurrencyLocale string
}

func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("config.ProcessEnvironmentVariables.no .env file")
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		HTTPPort:           "9446",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		OperatorWorkers:    2,
		SessionTTL:         30 * time.Minute,
		CurrencySymbol:     "₹",
		CurrencyLocale:     "en-IN",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envCORSAllowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envSessionTTL := os.Getenv("SESSION_TTL")
	envCurrencySymbol := os.Getenv("CURRENCY_SYMBOL")
	envCurrencyLocale := os.Getenv("CURRENCY_LOCALE")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envCORSAllowedOrigins) != 0 {
		origins := strings.Split(envCORSAllowedOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		env.CORSAllowedOrigins = origins
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if len(envSessionTTL) != 0 {
		ttl, err := time.ParseDuration(envSessionTTL)
		if err != nil {
			return nil, err
		}
		env.SessionTTL = ttl
	}

	if len(envCurrencySymbol) != 0 {
		env.CurrencySymbol = envCurrencySymbol
	}

	if len(envCurrencyLocale) != 0 {
		env.CurrencyLocale = envCurrencyLocale
	}

	return &env, nil
}

// PostgresConnectionString builds the lib/pq connection URL.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
