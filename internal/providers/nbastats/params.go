package nbastats

import "net/url"

// params holds query parameters. stats.nba.com rejects requests that omit parameters it
// expects, so every endpoint starts from a full set of defaults.
type params map[string]string

func (p params) with(kv ...string) params {
	out := make(params, len(p)+len(kv)/2)
	for k, v := range p {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

func (p params) values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

func teamGameLogsParams(season, dateFrom, measure string) params {
	return params{
		"DateFrom":       dateFrom,
		"DateTo":         "",
		"GameSegment":    "",
		"LastNGames":     "",
		"LeagueID":       leagueNBA,
		"Location":       "",
		"MeasureType":    measure,
		"Month":          "",
		"OppTeamID":      "",
		"Outcome":        "",
		"PORound":        "",
		"PerMode":        "",
		"Period":         "",
		"PlayerID":       "",
		"Season":         season,
		"SeasonSegment":  "",
		"SeasonType":     "",
		"ShotClockRange": "",
		"TeamID":         "",
		"VsConference":   "",
		"VsDivision":     "",
	}
}

func boxScoreParams(gameID string) params {
	return params{
		"GameID":      gameID,
		"LeagueID":    leagueNBA,
		"StartPeriod": "0",
		"EndPeriod":   "0",
		"StartRange":  "0",
		"EndRange":    "0",
		"RangeType":   "0",
	}
}

// dashParams are the filters shared by the league dashboard endpoints.
func dashParams(season string) params {
	return params{
		"College":          "",
		"Conference":       "",
		"Country":          "",
		"DateFrom":         "",
		"DateTo":           "",
		"Division":         "",
		"DraftPick":        "",
		"DraftYear":        "",
		"GameScope":        "",
		"GameSegment":      "",
		"Height":           "",
		"LastNGames":       "0",
		"LeagueID":         leagueNBA,
		"Location":         "",
		"Month":            "0",
		"OpponentTeamID":   "0",
		"Outcome":          "",
		"PORound":          "0",
		"Period":           "0",
		"PlayerExperience": "",
		"PlayerPosition":   "",
		"Season":           season,
		"SeasonSegment":    "",
		"SeasonType":       seasonTypeRegular,
		"ShotClockRange":   "",
		"StarterBench":     "",
		"TeamID":           "0",
		"VsConference":     "",
		"VsDivision":       "",
		"Weight":           "",
	}
}

func playerStatsParams(season, measure, perMode string) params {
	return dashParams(season).with(
		"MeasureType", measure,
		"PerMode", perMode,
		"PaceAdjust", "N",
		"PlusMinus", "N",
		"Rank", "N",
		"TwoWay", "0",
	)
}

func playerPtShotParams(season string) params {
	return dashParams(season).with(
		"PerMode", "Totals",
		"CloseDefDistRange", "",
		"DribbleRange", "",
		"GeneralRange", "",
		"ShotDistRange", "",
		"TouchTimeRange", "",
	)
}

func playerBioStatsParams(season string) params {
	return dashParams(season).with("PerMode", "PerGame")
}

func teamStatsParams(season, measure string) params {
	return dashParams(season).with(
		"MeasureType", measure,
		"PerMode", "Totals",
		"PaceAdjust", "N",
		"PlusMinus", "N",
		"Rank", "N",
		"TwoWay", "0",
	)
}
