package config

// Config holds runtime configuration for the download commands.
type Config struct {
	DataDir   string
	Seasons   SeasonsConfig
	Freshness Duration
	Log       LogConfig
	Stats     StatsConfig
	ESPN      ESPNConfig
	Metrics   MetricsConfig
}

// SeasonsConfig bounds the stats.nba.com seasons, identified by the year the season ends.
type SeasonsConfig struct {
	First   int
	Current int
}

// LogConfig selects log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	seasons := SeasonsConfig{
		First:   intEnvOrDefault(envFirstSeason, defaultFirstSeason),
		Current: intEnvOrDefault(envCurrentSeason, defaultCurrentSeason),
	}
	if seasons.First > seasons.Current {
		seasons.First = seasons.Current
	}
	return Config{
		DataDir:   envOrDefault(envDataDir, defaultDataDir),
		Seasons:   seasons,
		Freshness: durationEnvOrDefault(envFreshness, defaultFreshness),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, "text"),
		},
		Stats:   loadStats(),
		ESPN:    loadESPN(seasons),
		Metrics: loadMetrics(),
	}
}
