package teams

// Team identifies an NBA franchise as stats.nba.com reports it.
type Team struct {
	ID           int64  `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Nickname     string `json:"nickname"`
	City         string `json:"city"`
	FullName     string `json:"fullName"`
}

var all = []Team{
	{ID: 1610612737, Abbreviation: "ATL", Nickname: "Hawks", City: "Atlanta", FullName: "Atlanta Hawks"},
	{ID: 1610612738, Abbreviation: "BOS", Nickname: "Celtics", City: "Boston", FullName: "Boston Celtics"},
	{ID: 1610612739, Abbreviation: "CLE", Nickname: "Cavaliers", City: "Cleveland", FullName: "Cleveland Cavaliers"},
	{ID: 1610612740, Abbreviation: "NOP", Nickname: "Pelicans", City: "New Orleans", FullName: "New Orleans Pelicans"},
	{ID: 1610612741, Abbreviation: "CHI", Nickname: "Bulls", City: "Chicago", FullName: "Chicago Bulls"},
	{ID: 1610612742, Abbreviation: "DAL", Nickname: "Mavericks", City: "Dallas", FullName: "Dallas Mavericks"},
	{ID: 1610612743, Abbreviation: "DEN", Nickname: "Nuggets", City: "Denver", FullName: "Denver Nuggets"},
	{ID: 1610612744, Abbreviation: "GSW", Nickname: "Warriors", City: "Golden State", FullName: "Golden State Warriors"},
	{ID: 1610612745, Abbreviation: "HOU", Nickname: "Rockets", City: "Houston", FullName: "Houston Rockets"},
	{ID: 1610612746, Abbreviation: "LAC", Nickname: "Clippers", City: "Los Angeles", FullName: "Los Angeles Clippers"},
	{ID: 1610612747, Abbreviation: "LAL", Nickname: "Lakers", City: "Los Angeles", FullName: "Los Angeles Lakers"},
	{ID: 1610612748, Abbreviation: "MIA", Nickname: "Heat", City: "Miami", FullName: "Miami Heat"},
	{ID: 1610612749, Abbreviation: "MIL", Nickname: "Bucks", City: "Milwaukee", FullName: "Milwaukee Bucks"},
	{ID: 1610612750, Abbreviation: "MIN", Nickname: "Timberwolves", City: "Minnesota", FullName: "Minnesota Timberwolves"},
	{ID: 1610612751, Abbreviation: "BKN", Nickname: "Nets", City: "Brooklyn", FullName: "Brooklyn Nets"},
	{ID: 1610612752, Abbreviation: "NYK", Nickname: "Knicks", City: "New York", FullName: "New York Knicks"},
	{ID: 1610612753, Abbreviation: "ORL", Nickname: "Magic", City: "Orlando", FullName: "Orlando Magic"},
	{ID: 1610612754, Abbreviation: "IND", Nickname: "Pacers", City: "Indiana", FullName: "Indiana Pacers"},
	{ID: 1610612755, Abbreviation: "PHI", Nickname: "76ers", City: "Philadelphia", FullName: "Philadelphia 76ers"},
	{ID: 1610612756, Abbreviation: "PHX", Nickname: "Suns", City: "Phoenix", FullName: "Phoenix Suns"},
	{ID: 1610612757, Abbreviation: "POR", Nickname: "Trail Blazers", City: "Portland", FullName: "Portland Trail Blazers"},
	{ID: 1610612758, Abbreviation: "SAC", Nickname: "Kings", City: "Sacramento", FullName: "Sacramento Kings"},
	{ID: 1610612759, Abbreviation: "SAS", Nickname: "Spurs", City: "San Antonio", FullName: "San Antonio Spurs"},
	{ID: 1610612760, Abbreviation: "OKC", Nickname: "Thunder", City: "Oklahoma City", FullName: "Oklahoma City Thunder"},
	{ID: 1610612761, Abbreviation: "TOR", Nickname: "Raptors", City: "Toronto", FullName: "Toronto Raptors"},
	{ID: 1610612762, Abbreviation: "UTA", Nickname: "Jazz", City: "Utah", FullName: "Utah Jazz"},
	{ID: 1610612763, Abbreviation: "MEM", Nickname: "Grizzlies", City: "Memphis", FullName: "Memphis Grizzlies"},
	{ID: 1610612764, Abbreviation: "WAS", Nickname: "Wizards", City: "Washington", FullName: "Washington Wizards"},
	{ID: 1610612765, Abbreviation: "DET", Nickname: "Pistons", City: "Detroit", FullName: "Detroit Pistons"},
	{ID: 1610612766, Abbreviation: "CHA", Nickname: "Hornets", City: "Charlotte", FullName: "Charlotte Hornets"},
}

var byID = func() map[int64]Team {
	m := make(map[int64]Team, len(all))
	for _, t := range all {
		m[t.ID] = t
	}
	return m
}()

// All returns every franchise ordered by id.
func All() []Team {
	return append([]Team(nil), all...)
}

// ByID looks a team up by its stats.nba.com id.
func ByID(id int64) (Team, bool) {
	t, ok := byID[id]
	return t, ok
}

// Abbreviation returns the three-letter code for id, or "" when id is unknown.
func Abbreviation(id int64) string {
	return byID[id].Abbreviation
}
