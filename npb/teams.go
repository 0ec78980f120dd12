package npb

import "strings"

// AllTeams is the league's twelve franchises. Reference data: read-only after
// init, id'd by a stable short slug.
var AllTeams = []Team{
	{ID: "giants", NameEnglish: "Yomiuri Giants", NameJapanese: "読売ジャイアンツ", Abbreviation: "YOG", League: LeagueCentral, City: "Tokyo", SiteCode: "g"},
	{ID: "tigers", NameEnglish: "Hanshin Tigers", NameJapanese: "阪神タイガース", Abbreviation: "HAN", League: LeagueCentral, City: "Nishinomiya", SiteCode: "t"},
	{ID: "baystars", NameEnglish: "Yokohama DeNA BayStars", NameJapanese: "横浜DeNAベイスターズ", Abbreviation: "YDB", League: LeagueCentral, City: "Yokohama", SiteCode: "db"},
	{ID: "dragons", NameEnglish: "Chunichi Dragons", NameJapanese: "中日ドラゴンズ", Abbreviation: "CHU", League: LeagueCentral, City: "Nagoya", SiteCode: "d"},
	{ID: "carp", NameEnglish: "Hiroshima Toyo Carp", NameJapanese: "広島東洋カープ", Abbreviation: "HIR", League: LeagueCentral, City: "Hiroshima", SiteCode: "c"},
	{ID: "swallows", NameEnglish: "Tokyo Yakult Swallows", NameJapanese: "東京ヤクルトスワローズ", Abbreviation: "YAK", League: LeagueCentral, City: "Tokyo", SiteCode: "s"},
	{ID: "hawks", NameEnglish: "Fukuoka SoftBank Hawks", NameJapanese: "福岡ソフトバンクホークス", Abbreviation: "SFB", League: LeaguePacific, City: "Fukuoka", SiteCode: "h"},
	{ID: "fighters", NameEnglish: "Hokkaido Nippon-Ham Fighters", NameJapanese: "北海道日本ハムファイターズ", Abbreviation: "NIP", League: LeaguePacific, City: "Sapporo", SiteCode: "f"},
	{ID: "marines", NameEnglish: "Chiba Lotte Marines", NameJapanese: "千葉ロッテマリーンズ", Abbreviation: "LOT", League: LeaguePacific, City: "Chiba", SiteCode: "m"},
	{ID: "lions", NameEnglish: "Saitama Seibu Lions", NameJapanese: "埼玉西武ライオンズ", Abbreviation: "SEI", League: LeaguePacific, City: "Tokorozawa", SiteCode: "l"},
	{ID: "eagles", NameEnglish: "Tohoku Rakuten Golden Eagles", NameJapanese: "東北楽天ゴールデンイーグルス", Abbreviation: "RAK", League: LeaguePacific, City: "Sendai", SiteCode: "e"},
	{ID: "buffaloes", NameEnglish: "Orix Buffaloes", NameJapanese: "オリックス・バファローズ", Abbreviation: "ORX", League: LeaguePacific, City: "Osaka", SiteCode: "b"},
}

// TeamByID returns the reference record for an id, or nil.
func TeamByID(id string) *Team {
	for i := range AllTeams {
		if AllTeams[i].ID == id {
			return &AllTeams[i]
		}
	}
	return nil
}

// TeamBySiteCode returns the team carrying the given npb.jp url code, or nil.
func TeamBySiteCode(code string) *Team {
	for i := range AllTeams {
		if AllTeams[i].SiteCode == code {
			return &AllTeams[i]
		}
	}
	return nil
}

// TeamByName resolves a free-form team name: exact id, abbreviation, full
// English name, or a distinctive word of it ("Giants", "SoftBank"). Returns
// nil when nothing matches.
func TeamByName(name string) *Team {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	for i := range AllTeams {
		t := &AllTeams[i]
		if needle == t.ID || needle == strings.ToLower(t.Abbreviation) ||
			needle == strings.ToLower(t.NameEnglish) || name == t.NameJapanese {
			return t
		}
	}
	for i := range AllTeams {
		t := &AllTeams[i]
		if strings.Contains(strings.ToLower(t.NameEnglish), needle) {
			return t
		}
	}
	return nil
}

// TeamsByLeague lists the six teams of one league in reference order.
func TeamsByLeague(league League) []Team {
	out := make([]Team, 0, 6)
	for _, t := range AllTeams {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}

// PositionName expands the numeric position codes used on the league site.
var PositionName = map[string]string{
	"1": "Pitcher",
	"2": "Catcher",
	"3": "First Base",
	"4": "Second Base",
	"5": "Third Base",
	"6": "Shortstop",
	"7": "Left Field",
	"8": "Center Field",
	"9": "Right Field",
}
