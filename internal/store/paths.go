package store

import (
	"fmt"
	"path/filepath"
)

// File names of the consolidated outputs.
const (
	GamelogsFile       = "gamelogs.parquet"
	PlayerGameLogsFile = "player_game_logs.parquet"
	PlayerStatsFile    = "playerstats.parquet"
	TeamSummaryFile    = "team_summary.json"
	MetadataFile       = "metadata.json"
	espnDir            = "espn"
)

// GamelogPath is the per-season team game log file.
func GamelogPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("gamelog_%d.parquet", year))
}

// PlayerlogPath is the per-season player box score file.
func PlayerlogPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("playerlog_%d.parquet", year))
}

// PlayersPath is the per-season player dashboard stats file.
func PlayersPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("players_%d.parquet", year))
}

// TeamSummaryPath is the per-season team summary file.
func TeamSummaryPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("team_summary_%d.json", year))
}

// TeamEfficiencyPath is the per-season team efficiency file.
func TeamEfficiencyPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("team_efficiency_%d.json", year))
}

// ESPNSeasonDir holds the daily ESPN files of one season.
func ESPNSeasonDir(dir string, season int) string {
	return filepath.Join(dir, espnDir, fmt.Sprintf("%d", season))
}

// ESPNDayPath is the ESPN file for one day (YYYY-MM-DD).
func ESPNDayPath(dir string, season int, day string) string {
	return filepath.Join(ESPNSeasonDir(dir, season), day+".json")
}

// ConsolidatedPath is a multi-season output file such as GamelogsFile.
func ConsolidatedPath(dir, name string) string {
	return filepath.Join(dir, name)
}
