// Package tavily provides a client for the Tavily web search API.
package tavily

import (
	"os"
	"time"
)

// DefaultBaseURL is used when TAVILY_BASE_URL is not set.
const DefaultBaseURL = "https://api.tavily.com"

// Config holds configuration for the Tavily API client.
type Config struct {
	TavilyAPIKey string        // API key for authentication
	BaseURL      string        // Base URL for the API (e.g., "https://api.tavily.com")
	SearchDepth  string        // Search depth ("basic" or "advanced")
	Timeout      time.Duration // HTTP request timeout
}

// LoadConfig loads Tavily configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("TAVILY_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		TavilyAPIKey: os.Getenv("TAVILY_API_KEY"),
		BaseURL:      baseURL,
		SearchDepth:  "advanced",
		Timeout:      30 * time.Second,
	}
}
