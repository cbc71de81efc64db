package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the app-level defaults surfaced to clients at GET /settings.
// They pre-fill loan forms; nothing in the engine depends on them.
type Settings struct {
	DefaultInterestRate float64 `json:"defaultInterestRate"`
	DefaultFrequency    string  `json:"defaultFrequency"`
	DefaultInstallments int     `json:"defaultInstallments"`
	Currency            string  `json:"currency"`
}

type Config struct {
	AppPort string

	// DBDriver selects the store: "sqlite" (default, single file) or "mysql".
	DBDriver   string
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// RedisAddr empty means no redis: idempotency middleware is skipped.
	RedisAddr    string
	RedisDB      int
	IdempTTLSecs int

	// UpcomingWindowDays is the default horizon for the upcoming-due report.
	UpcomingWindowDays int

	Settings Settings
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvFloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real env always wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env: %v", err)
	}

	return &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", "emprest.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "emprest"),
		MySQLUser: getenv("MYSQL_USER", "emprest"),
		MySQLPass: getenv("MYSQL_PASS", "emprest"),

		RedisAddr:    getenv("REDIS_ADDR", ""),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		UpcomingWindowDays: getenvInt("UPCOMING_WINDOW_DAYS", 30),

		Settings: Settings{
			DefaultInterestRate: getenvFloat("DEFAULT_INTEREST_RATE", 5),
			DefaultFrequency:    getenv("DEFAULT_FREQUENCY", "monthly"),
			DefaultInstallments: getenvInt("DEFAULT_INSTALLMENTS", 12),
			Currency:            getenv("CURRENCY", "R$"),
		},
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.UpcomingWindowDays <= 0 {
		return errors.New("UPCOMING_WINDOW_DAYS must be positive")
	}
	return nil
}

// DSN returns the driver-appropriate connection string.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.MySQLDSN()
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
