package config

// ESPNConfig locates the ESPN analytics feed. Seasons are identified by the year the season starts.
type ESPNConfig struct {
	Region        string
	IdentityID    string
	Bucket        string
	FirstSeason   int
	CurrentSeason int
}

func loadESPN(seasons SeasonsConfig) ESPNConfig {
	return ESPNConfig{
		Region:        envOrDefault(envESPNRegion, defaultESPNRegion),
		IdentityID:    envOrDefault(envESPNIdentityID, defaultESPNIdentityID),
		Bucket:        envOrDefault(envESPNBucket, defaultESPNBucket),
		FirstSeason:   intEnvOrDefault(envESPNFirstSeason, defaultESPNFirstSeason),
		CurrentSeason: intEnvOrDefault(envESPNCurrentSeason, seasons.Current-1),
	}
}
