package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig describes the rate limit for one endpoint tier.
type EndpointConfig struct {
	Name        string
	Path        string
	Method      string // empty matches any method
	MaxRequests int    // bucket capacity
	Window      time.Duration
	Unlimited   bool
}

// RefillRate returns the sustained tokens-per-second rate for this endpoint.
func (ec *EndpointConfig) RefillRate() float64 {
	if ec.Window <= 0 {
		return 0
	}
	return float64(ec.MaxRequests) / ec.Window.Seconds()
}

// Config holds the full rate limit configuration.
type Config struct {
	Endpoints       []EndpointConfig
	Default         EndpointConfig
	CleanupInterval time.Duration
}

// DefaultConfig returns the built-in rate limit configuration. Generation
// endpoints get a tight budget since each request may fan out to external
// model APIs; read endpoints get a generous one; health checks are unlimited.
func DefaultConfig() Config {
	return Config{
		Endpoints: []EndpointConfig{
			{
				Name:        "kits-create",
				Path:        "/v1/kits",
				Method:      "POST",
				MaxRequests: 5,
				Window:      time.Minute,
			},
			{
				Name:        "generate",
				Path:        "/v1/generate",
				Method:      "POST",
				MaxRequests: 10,
				Window:      time.Minute,
			},
			{
				Name:      "health",
				Path:      "/health",
				Unlimited: true,
			},
		},
		Default: EndpointConfig{
			Name:        "default",
			MaxRequests: 60,
			Window:      time.Minute,
		},
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig builds the configuration from the defaults, applying
// RATE_LIMIT_* environment variable overrides:
//
//	RATE_LIMIT_GENERATE_MAX      bucket capacity for POST /v1/generate
//	RATE_LIMIT_KITS_MAX          bucket capacity for POST /v1/kits
//	RATE_LIMIT_DEFAULT_MAX       bucket capacity for all other endpoints
//	RATE_LIMIT_WINDOW_SECONDS    window length shared by all tiers
func LoadConfig() Config {
	cfg := DefaultConfig()

	if window := envInt("RATE_LIMIT_WINDOW_SECONDS"); window > 0 {
		d := time.Duration(window) * time.Second
		cfg.Default.Window = d
		for i := range cfg.Endpoints {
			if !cfg.Endpoints[i].Unlimited {
				cfg.Endpoints[i].Window = d
			}
		}
	}

	if max := envInt("RATE_LIMIT_GENERATE_MAX"); max > 0 {
		cfg.setMax("generate", max)
	}
	if max := envInt("RATE_LIMIT_KITS_MAX"); max > 0 {
		cfg.setMax("kits-create", max)
	}
	if max := envInt("RATE_LIMIT_DEFAULT_MAX"); max > 0 {
		cfg.Default.MaxRequests = max
	}

	return cfg
}

func (c *Config) setMax(name string, max int) {
	for i := range c.Endpoints {
		if c.Endpoints[i].Name == name {
			c.Endpoints[i].MaxRequests = max
			return
		}
	}
}

// MatchEndpoint finds the endpoint configuration for a request path and
// method. Longest path prefix wins; the default tier applies when nothing
// matches.
func (c *Config) MatchEndpoint(path, method string) *EndpointConfig {
	var best *EndpointConfig
	for i := range c.Endpoints {
		ec := &c.Endpoints[i]
		if !strings.HasPrefix(path, ec.Path) {
			continue
		}
		if ec.Method != "" && ec.Method != method {
			continue
		}
		if best == nil || len(ec.Path) > len(best.Path) {
			best = ec
		}
	}
	if best != nil {
		return best
	}
	return &c.Default
}

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
