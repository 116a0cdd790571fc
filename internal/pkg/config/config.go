package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, TTLs)
// - empty Redis address / AMQP URL disables the optional integrations
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Redis  RedisConfig
	Broker BrokerConfig
	Quiz   QuizConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Guayaquil"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// registration and quiz verdict transactions are retried on serialization failures
	TxMaxRetries int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBase  time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guayaquil"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:""`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix   string        `envconfig:"REDIS_KEY_PREFIX" default:"paseos"`
	ListingTTL  time.Duration `envconfig:"REDIS_LISTING_TTL" default:"30s"`
	PingTimeout time.Duration `envconfig:"REDIS_PING_TIMEOUT" default:"2s"`
}

type BrokerConfig struct {
	URL       string `envconfig:"AMQP_URL" default:""`
	QuizQueue string `envconfig:"AMQP_QUIZ_QUEUE" default:"walker.quiz.evaluated"`
}

type QuizConfig struct {
	SessionTTL time.Duration `envconfig:"QUIZ_SESSION_TTL" default:"2h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Durations parses the access and refresh token lifetimes.
func (c JWTConfig) Durations() (access, refresh time.Duration, err error) {
	access, err = time.ParseDuration(c.AccessTokenDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}
	refresh, err = time.ParseDuration(c.RefreshTokenDuration)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}
	if access <= 0 || refresh <= access {
		return 0, 0, fmt.Errorf("JWT durations must satisfy 0 < access (%s) < refresh (%s)", access, refresh)
	}
	return access, refresh, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	if _, _, err := c.JWT.Durations(); err != nil {
		return err
	}
	if c.DB.TxMaxRetries < 0 {
		return fmt.Errorf("DB_TX_MAX_RETRIES must not be negative, got %d", c.DB.TxMaxRetries)
	}
	if c.Quiz.SessionTTL <= 0 {
		return fmt.Errorf("QUIZ_SESSION_TTL must be positive, got %s", c.Quiz.SessionTTL)
	}
	if c.Redis.ListingTTL < 0 {
		return fmt.Errorf("REDIS_LISTING_TTL must not be negative, got %s", c.Redis.ListingTTL)
	}
	return nil
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c BrokerConfig) Enabled() bool {
	return c.URL != ""
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not loaded", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Guayaquil",
			MaxConns: 10,

			TxMaxRetries: 3,
			TxRetryBase:  10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "America/Guayaquil",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-paseos",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			KeyPrefix:   "paseos-test",
			ListingTTL:  30 * time.Second,
			PingTimeout: 2 * time.Second,
		},
		Broker: BrokerConfig{
			QuizQueue: "walker.quiz.evaluated",
		},
		Quiz: QuizConfig{
			SessionTTL: 2 * time.Hour,
		},
	}
}
