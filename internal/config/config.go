package config

import "time"

// Config represents the full application configuration.
type Config struct {
	Server        ServerConfig              `yaml:"server"`
	RateLimit     RateLimitConfig           `yaml:"rateLimit"`
	Cache         CacheConfig               `yaml:"cache"`
	HTTP          HTTPConfig                `yaml:"http"`
	Providers     map[string]ProviderConfig `yaml:"providers"`
	Observability ObservabilityConfig       `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`

	// QueryTimeout bounds one whole provider fan-out. When it elapses the
	// request fails; in-flight provider calls are abandoned, not cancelled.
	QueryTimeout string `yaml:"queryTimeout"`
}

// QueryTimeoutDuration parses QueryTimeout, falling back to 45s.
func (s ServerConfig) QueryTimeoutDuration() time.Duration {
	return parseDurationOr(s.QueryTimeout, 45*time.Second)
}

// RateLimitConfig holds fixed-window rate limiter settings.
type RateLimitConfig struct {
	Requests   int    `yaml:"requests"`
	Window     string `yaml:"window"`
	MaxClients int    `yaml:"maxClients"`
}

// WindowDuration parses Window, falling back to one minute.
func (r RateLimitConfig) WindowDuration() time.Duration {
	return parseDurationOr(r.Window, time.Minute)
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	MaxSize int    `yaml:"maxSize"`
	TTL     string `yaml:"ttl"`
}

// TTLDuration parses TTL, falling back to five minutes.
func (c CacheConfig) TTLDuration() time.Duration {
	return parseDurationOr(c.TTL, 5*time.Minute)
}

// HTTPConfig holds global provider HTTP client settings.
type HTTPConfig struct {
	Timeout           string  `yaml:"timeout"`
	MaxRetries        int     `yaml:"maxRetries"`
	InitialBackoff    string  `yaml:"initialBackoff"`
	MaxBackoff        string  `yaml:"maxBackoff"`
	BackoffMultiplier float64 `yaml:"backoffMultiplier"`
}

// ProviderConfig configures a single LLM provider.
type ProviderConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"apiKey"`
	MaxTokens int    `yaml:"maxTokens"`

	// HTTP overrides (optional, use global HTTP config if not set)
	Timeout        *string `yaml:"timeout,omitempty"`
	MaxRetries     *int    `yaml:"maxRetries,omitempty"`
	InitialBackoff *string `yaml:"initialBackoff,omitempty"`
	MaxBackoff     *string `yaml:"maxBackoff,omitempty"`
}

// Configured reports whether the provider is enabled and has a credential.
func (p ProviderConfig) Configured() bool {
	return p.Enabled && p.APIKey != ""
}

// ObservabilityConfig configures logging and metrics.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures request/response logging.
type LoggingConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Level         string `yaml:"level"`         // debug, info, error
	Format        string `yaml:"format"`        // json, human
	RedactAPIKeys bool   `yaml:"redactAPIKeys"` // Redact API keys in logs
}

// MetricsConfig configures metrics tracking.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
