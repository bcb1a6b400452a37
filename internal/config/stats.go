package config

import "time"

// StatsConfig controls how we talk to the stats.nba.com API.
type StatsConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

func loadStats() StatsConfig {
	return StatsConfig{
		BaseURL:           envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout:           durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		RequestsPerSecond: floatEnvOrDefault(envStatsRate, defaultStatsRate),
		Burst:             intEnvOrDefault(envStatsBurst, defaultStatsBurst),
	}
}
