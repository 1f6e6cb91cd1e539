package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Booking BookingConfig
	Finance FinanceConfig
	Metrics MetricsConfig
	Sweep   SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
	MaxConns       int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_PATH" default:"file://migrations"`
	AutoMigrate    bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"1h"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"lax"`
}

type BookingConfig struct {
	WindowDays      int    `envconfig:"BOOKING_WINDOW_DAYS" default:"7"`
	TimeZone        string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Shanghai"`
	SlotCatalogPath string `envconfig:"BOOKING_SLOT_CATALOG" default:""`
}

// FinanceConfig configures the outbound payment request client and the
// shared token the finance system presents on callbacks. An empty BaseURL
// logs payment requests instead of sending them.
type FinanceConfig struct {
	BaseURL       string        `envconfig:"FINANCE_BASE_URL" default:""`
	CallbackURL   string        `envconfig:"FINANCE_CALLBACK_URL" default:"http://localhost:8080/api/finance/callback"`
	CallbackToken string        `envconfig:"FINANCE_CALLBACK_TOKEN" required:"true"`
	Timeout       time.Duration `envconfig:"FINANCE_TIMEOUT" default:"5s"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type SweepConfig struct {
	Enabled  bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the booking time zone used to compute "today".
func (c BookingConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// LoadConfig reads the environment, preloading a .env file when one exists.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.WindowDays <= 0 {
		return Config{}, fmt.Errorf("BOOKING_WINDOW_DAYS must be positive, got %d", cfg.Booking.WindowDays)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "UTC",
			MaxConns:       5,
			MigrationsPath: "file://migrations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "lax",
		},
		Booking: BookingConfig{
			WindowDays: 7,
			TimeZone:   "UTC",
		},
		Finance: FinanceConfig{
			CallbackURL:   "http://localhost:8889/api/finance/callback",
			CallbackToken: "test-finance-token",
			Timeout:       2 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Sweep: SweepConfig{
			Enabled:  false,
			Interval: time.Hour,
		},
	}
}
