package config

import "time"

// StatsBombConfig controls how we talk to the open-data repository.
type StatsBombConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit int // requests per second
}

func loadStatsBomb() StatsBombConfig {
	return StatsBombConfig{
		BaseURL:   envOrDefault(envStatsBombBaseURL, defaultStatsBombBaseURL),
		Timeout:   durationEnvOrDefault(envStatsBombTimeout, defaultStatsBombTimeout),
		RateLimit: intEnvOrDefault(envStatsBombRateLimit, defaultStatsBombRateLimit),
	}
}
