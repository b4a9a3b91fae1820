package config

import (
	"fmt"
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
	Admin   AdminConfig
	Cookie  CookieConfig
	Storage StorageConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Notice  NoticeConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	MaxUploadSize int64  `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"` // 10MB
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type StorageConfig struct {
	Endpoint     string `envconfig:"STORAGE_ENDPOINT"`
	Region       string `envconfig:"STORAGE_REGION" default:"auto"`
	AccessKey    string `envconfig:"STORAGE_ACCESS_KEY"`
	SecretKey    string `envconfig:"STORAGE_SECRET_KEY"`
	Bucket       string `envconfig:"STORAGE_BUCKET" default:"receipts"`
	KeyPrefix    string `envconfig:"STORAGE_KEY_PREFIX" default:"receipts/"`
	UsePathStyle bool   `envconfig:"STORAGE_USE_PATH_STYLE" default:"true"`
}

// Redis is optional: an empty address disables the settings cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"REDIS_SETTINGS_TTL" default:"5m"`
	Prefix   string        `envconfig:"REDIS_PREFIX" default:"rodizio"`
}

// AMQP is optional: an empty URL disables event publishing.
type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL"`
	Queue string `envconfig:"AMQP_RESERVATION_QUEUE" default:"reservation.created"`
}

type NoticeConfig struct {
	TTL time.Duration `envconfig:"NOTICE_TTL" default:"3s"`
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *AMQPConfig) Enabled() bool {
	return c.URL != ""
}

func LoadConfig() (Config, error) {
	// .env is a local convenience; real deployments set the environment directly
	_ = godotenv.Load()

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
			Port:          "8889", // Test port
			MaxUploadSize: 1 << 20,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Storage: StorageConfig{
			Bucket:    "receipts",
			KeyPrefix: "receipts/",
			Region:    "auto",
		},
		AMQP: AMQPConfig{
			Queue: "reservation.created",
		},
		Notice: NoticeConfig{
			TTL: 3 * time.Second,
		},
		Session: SessionConfig{
			IdleTTL:       time.Hour,
			SweepInterval: time.Minute,
		},
	}
}
