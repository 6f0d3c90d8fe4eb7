package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits JSON request bodies; uploads use Documents.MaxSizeBytes
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists the origins allowed to call the API. "*" allows any origin.
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"corsAllowedOrigins"` //nolint: lll
		// JobDashboard serves the River job dashboard under /riverui/. It has no
		// authentication of its own and must only be reachable from internal networks.
		JobDashboard bool `env:"HTTP_JOB_DASHBOARD" env-default:"false" yaml:"jobDashboard"`
	} `yaml:"http"`

	// RateLimit configures the per client IP limiter of the public API
	RateLimit struct {
		// Enabled turns the limiter on
		Enabled bool `env:"RATE_LIMIT_ENABLED" env-default:"true" yaml:"enabled"`
		// RequestsPerSecond is the sustained rate allowed per client
		RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" env-default:"10" yaml:"requestsPerSecond"`
		// Burst is the number of requests a client may send at once
		Burst int `env:"RATE_LIMIT_BURST" env-default:"30" yaml:"burst"`
		// CacheSize is the number of clients tracked at the same time
		CacheSize int `env:"RATE_LIMIT_CACHE_SIZE" env-default:"10000" yaml:"cacheSize"`
		// TTL is how long an idle client's limiter is kept
		TTL time.Duration `env:"RATE_LIMIT_TTL" env-default:"10m" yaml:"ttl"`
	} `yaml:"rateLimit"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"qcscargo" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. Only the public key is needed to serve the API.
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY"  yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Booking configures pickup scheduling
	Booking struct {
		// MaxWindow is the longest pickup window a customer may request
		MaxWindow time.Duration `env:"BOOKING_MAX_WINDOW" env-default:"8h" yaml:"maxWindow"`
		// MinLeadTime is how far in the future a window must start
		MinLeadTime time.Duration `env:"BOOKING_MIN_LEAD_TIME" env-default:"1h" yaml:"minLeadTime"`
		// ClusterPrefixLength is the postal code prefix length used to cluster route stops
		ClusterPrefixLength int `env:"BOOKING_CLUSTER_PREFIX_LENGTH" env-default:"3" yaml:"clusterPrefixLength"`
		// TimeZone is the warehouse time zone; pickup days are computed in it
		TimeZone string `env:"BOOKING_TIME_ZONE" env-default:"America/New_York" yaml:"timeZone"`
	} `yaml:"booking"`

	// Quote configures pricing
	Quote struct {
		Origin                string        `env:"QUOTE_ORIGIN" env-default:"US" yaml:"origin"`
		Currency              string        `env:"QUOTE_CURRENCY" env-default:"USD" yaml:"currency"`
		VolumetricDivisor     float64       `env:"QUOTE_VOLUMETRIC_DIVISOR" env-default:"5000" yaml:"volumetricDivisor"`
		FuelSurchargePercent  float64       `env:"QUOTE_FUEL_SURCHARGE_PERCENT" env-default:"12" yaml:"fuelSurchargePercent"`
		HandlingFeeCents      int64         `env:"QUOTE_HANDLING_FEE_CENTS" env-default:"300" yaml:"handlingFeeCents"`
		InsuranceRatePercent  float64       `env:"QUOTE_INSURANCE_RATE_PERCENT" env-default:"2.5" yaml:"insuranceRatePercent"`
		InsuranceMinimumCents int64         `env:"QUOTE_INSURANCE_MINIMUM_CENTS" env-default:"500" yaml:"insuranceMinimumCents"`
		Validity              time.Duration `env:"QUOTE_VALIDITY" env-default:"72h" yaml:"validity"`
	} `yaml:"quote"`

	// Documents configures the S3 compatible bucket used for uploads
	Documents struct {
		Endpoint     string        `env:"DOCUMENTS_ENDPOINT" env-default:"localhost:9000" yaml:"endpoint"`
		AccessKey    string        `env:"DOCUMENTS_ACCESS_KEY" yaml:"accessKey"`
		SecretKey    string        `env:"DOCUMENTS_SECRET_KEY" yaml:"secretKey"`
		Bucket       string        `env:"DOCUMENTS_BUCKET" env-default:"qcs-documents" yaml:"bucket"`
		Region       string        `env:"DOCUMENTS_REGION" env-default:"us-east-1" yaml:"region"`
		UseSSL       bool          `env:"DOCUMENTS_USE_SSL" env-default:"false" yaml:"useSSL"`
		MaxSizeBytes int64         `env:"DOCUMENTS_MAX_SIZE_BYTES" env-default:"10485760" yaml:"maxSizeBytes"`
		URLTTL       time.Duration `env:"DOCUMENTS_URL_TTL" env-default:"15m" yaml:"urlTTL"`
	} `yaml:"documents"`

	// Blog configures the CMS
	Blog struct {
		// SiteURL is the public site. Links to its host count as internal links.
		SiteURL string `env:"BLOG_SITE_URL" env-default:"https://www.qcs-cargo.com" yaml:"siteURL"`
	} `yaml:"blog"`

	// Notify configures outbound e-mail and SMS/WhatsApp delivery
	Notify struct {
		Email struct {
			BaseURL string        `env:"NOTIFY_EMAIL_BASE_URL" env-default:"https://api.resend.com" yaml:"baseURL"`
			APIKey  string        `env:"NOTIFY_EMAIL_API_KEY" yaml:"apiKey"`
			From    string        `env:"NOTIFY_EMAIL_FROM" env-default:"QCS Cargo <no-reply@qcs-cargo.com>" yaml:"from"`
			Timeout time.Duration `env:"NOTIFY_EMAIL_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"email"`
		SMS struct {
			BaseURL      string        `env:"NOTIFY_SMS_BASE_URL" env-default:"https://api.twilio.com" yaml:"baseURL"`
			AccountSID   string        `env:"NOTIFY_SMS_ACCOUNT_SID" yaml:"accountSID"`
			AuthToken    string        `env:"NOTIFY_SMS_AUTH_TOKEN" yaml:"authToken"`
			From         string        `env:"NOTIFY_SMS_FROM" yaml:"from"`
			WhatsAppFrom string        `env:"NOTIFY_SMS_WHATSAPP_FROM" yaml:"whatsAppFrom"`
			Timeout      time.Duration `env:"NOTIFY_SMS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"sms"`
		// DefaultCountryCode is prefixed to national phone numbers
		DefaultCountryCode string `env:"NOTIFY_DEFAULT_COUNTRY_CODE" env-default:"1" yaml:"defaultCountryCode"`
		Retry              struct {
			InitialInterval time.Duration `env:"NOTIFY_RETRY_INITIAL_INTERVAL" env-default:"500ms" yaml:"initialInterval"`
			MaxInterval     time.Duration `env:"NOTIFY_RETRY_MAX_INTERVAL" env-default:"10s" yaml:"maxInterval"`
			MaxElapsedTime  time.Duration `env:"NOTIFY_RETRY_MAX_ELAPSED_TIME" env-default:"30s" yaml:"maxElapsedTime"`
			MaxAttempts     int           `env:"NOTIFY_RETRY_MAX_ATTEMPTS" env-default:"4" yaml:"maxAttempts"`
		} `yaml:"retry"`
		Breaker struct {
			FailureThreshold uint32        `env:"NOTIFY_BREAKER_FAILURE_THRESHOLD" env-default:"5" yaml:"failureThreshold"`
			OpenTimeout      time.Duration `env:"NOTIFY_BREAKER_OPEN_TIMEOUT" env-default:"30s" yaml:"openTimeout"`
		} `yaml:"breaker"`
	} `yaml:"notify"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// QuoteExpiryInterval is how often expired quotes are swept
		QuoteExpiryInterval time.Duration `env:"WORKER_QUOTE_EXPIRY_INTERVAL" env-default:"1h" yaml:"quoteExpiryInterval"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
