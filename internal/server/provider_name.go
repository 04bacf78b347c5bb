package server

import (
	"fmt"
	"strings"

	"football-stats-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from the
// instance when not configured. Metrics and logs key on this value.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if name := strings.ToLower(strings.TrimSpace(raw)); name != "" {
		return name
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
