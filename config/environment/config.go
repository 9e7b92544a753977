package environment

import (
	"os"
	"time"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetMenuAPIBaseURL() string {
	base := os.Getenv("MENU_API_BASE_URL")
	if base == "" {
		base = "https://free-food-menus-api-two.vercel.app"
	}
	return base
}

// GetMenuCacheTTL returns how long an aggregated catalog stays cached.
// MENU_CACHE_TTL accepts a Go duration string ("5m", "30s").
func GetMenuCacheTTL() time.Duration {
	raw := os.Getenv("MENU_CACHE_TTL")
	if raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			return ttl
		}
	}
	return 5 * time.Minute
}
