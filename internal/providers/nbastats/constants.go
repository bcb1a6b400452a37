package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 30 * time.Second
	leagueNBA          = "00"
	seasonTypeRegular  = "Regular Season"
	maxErrorBody       = 512
)

const (
	endpointTeamGameLogs        = "teamgamelogs"
	endpointBoxScoreTraditional = "boxscoretraditionalv3"
	endpointBoxScoreAdvanced    = "boxscoreadvancedv3"
	endpointPlayerStats         = "leaguedashplayerstats"
	endpointPlayerPtShot        = "leaguedashplayerptshot"
	endpointPlayerBioStats      = "leaguedashplayerbiostats"
	endpointTeamStats           = "leaguedashteamstats"
)

// stats.nba.com drops connections from clients that do not look like a browser on nba.com.
var defaultHeaders = map[string]string{
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Origin":          "https://www.nba.com",
	"Referer":         "https://www.nba.com/",
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}
