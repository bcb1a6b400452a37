package config

import "time"

const (
	envDataDir       = "DATA_DIR"
	envFirstSeason   = "FIRST_SEASON"
	envCurrentSeason = "CURRENT_SEASON"
	envFreshness     = "FRESHNESS"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"

	envStatsBaseURL = "STATS_BASE_URL"
	envStatsTimeout = "STATS_TIMEOUT"
	envStatsRate    = "STATS_REQUESTS_PER_SECOND"
	envStatsBurst   = "STATS_BURST"

	envESPNRegion        = "ESPN_REGION"
	envESPNIdentityID    = "ESPN_IDENTITY_ID"
	envESPNBucket        = "ESPN_BUCKET"
	envESPNFirstSeason   = "ESPN_FIRST_SEASON"
	envESPNCurrentSeason = "ESPN_CURRENT_SEASON"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDataDir       = "data"
	defaultFirstSeason   = 2010
	defaultCurrentSeason = 2025
	// Current-season files younger than this are reused instead of re-downloaded.
	defaultFreshness = Duration(time.Hour)

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	// Per-request timeout; stats.nba.com stalls rather than answering 429.
	defaultStatsTimeout = 30 * Duration(time.Second)
	defaultStatsRate    = 2.0
	defaultStatsBurst   = 1

	defaultESPNRegion      = "us-east-1"
	defaultESPNIdentityID  = "us-east-1:bf788d54-d676-c9e0-049d-ef3e67cf0372"
	defaultESPNBucket      = "espnsportsanalytics.com"
	defaultESPNFirstSeason = 2021

	defaultMetricsPort = "9090"
	defaultServiceName = "nba-stats-dl"
)
