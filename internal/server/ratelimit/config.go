package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Estimate API paths with their own limits.
const (
	PathEstimate       = "/api/v1/estimate"
	PathEstimateStream = "/api/v1/estimate/stream"
	PathEstimateXLSX   = "/api/v1/estimate/xlsx"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     getEnvDuration("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(getEnvInt("RATE_LIMIT_ESTIMATE_LIMIT", 120)),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits for the estimate API.
// estimateLimit is the per-minute allowance for plain JSON estimates; streaming
// and workbook exports hold a connection or build a file, so they get a quarter of it.
func DefaultEndpointConfigs(estimateLimit int) []EndpointConfig {
	heavy := max(estimateLimit/4, 1)
	return []EndpointConfig{
		{Path: PathEstimate, Method: "POST", Limit: estimateLimit, Window: time.Minute, Burst: max(estimateLimit/6, 1)},
		{Path: PathEstimateStream, Method: "POST", Limit: heavy, Window: time.Minute, Burst: max(heavy/6, 1)},
		{Path: PathEstimateXLSX, Method: "POST", Limit: heavy, Window: time.Minute, Burst: max(heavy/6, 1)},
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
