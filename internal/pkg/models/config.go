package models

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	ORS       ORSConfig
	Model     ModelConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address          string
	PredictionsTopic string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// ORSConfig holds the external directions provider configuration.
// An empty APIKey degrades route endpoints to a configuration error,
// it never prevents the process from starting.
type ORSConfig struct {
	APIKey   string
	BaseURL  string
	FocusLat float64
	FocusLng float64
	Timeout  int // seconds
}

// ModelConfig holds the prediction model artifact configuration
type ModelConfig struct {
	Path string
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  int // seconds
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
