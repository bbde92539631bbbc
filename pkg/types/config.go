package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout (default 30s). The retry loop
	// treats a timed-out request as a network failure that consumes one attempt.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with upstream requests
	// (e.g. "threads-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// UpstreamConfig holds settings for the Threads Graph API client.
type UpstreamConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the Graph API root (default https://graph.threads.net).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Token is the bearer access token. Required; the client refuses to
	// construct without it.
	Token string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`

	// RequestsPerSecond throttles upstream calls when > 0. Zero disables
	// client-side throttling.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// ListenAddr is the address the server binds to (default ":8000").
	ListenAddr string `json:"listen_addr" yaml:"listen_addr" mapstructure:"listen_addr"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// LogLevel selects the slog level: debug, info, warn, or error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Config groups all service configuration.
type Config struct {
	App      AppConfig      `json:"app" yaml:"app" mapstructure:"app"`
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream" mapstructure:"upstream"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
}

// FillDefaults applies default values for unset fields.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://graph.threads.net"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 30 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "threads-search/0.1"
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}
}

// Redacted returns a copy of the config with the token masked, for display.
func (c Config) Redacted() Config {
	out := c
	if out.Upstream.Token != "" {
		out.Upstream.Token = "********"
	}
	return out
}
