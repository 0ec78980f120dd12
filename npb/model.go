// Package npb holds the canonical data model shared by every data source.
// Providers translate whatever their backend returns into these types; nothing
// downstream of a provider ever sees a source-native shape.
package npb

// League is one of the two NPB leagues.
type League string

const (
	LeagueCentral League = "central"
	LeaguePacific League = "pacific"
)

// StatsType discriminates the two SeasonStats variants.
type StatsType string

const (
	StatsBatting  StatsType = "batting"
	StatsPitching StatsType = "pitching"
)

// Team is immutable reference data, loaded once and read-only thereafter.
type Team struct {
	ID           string
	NameEnglish  string
	NameJapanese string
	Abbreviation string
	League       League
	City         string

	// SiteCode is the team code used in npb.jp stat page urls
	// (idb1_<code>.html, idp1_<code>.html).
	SiteCode string
}

// Player is an identity record. ID is unique within the namespace of the
// provider that produced it but NOT globally; SourceIDs tracks the native id
// of the same physical person at every source that has been seen for them.
type Player struct {
	ID           string
	NameEnglish  string
	NameJapanese string

	// SourceIDs maps source name -> native id at that source.
	SourceIDs map[string]string

	Team         *Team
	JerseyNumber string
	Position     string
	YearsActive  string

	// Note carries free-text disambiguation hints, e.g. "MLB & NPB player".
	Note string

	Source string
}

// SeasonStats is a tagged union over batting and pitching stat lines.
// Season == nil means a career aggregate. Counting fields are non-negative
// integers taken from a source; rate fields are always recomputed from the
// counting fields (see RecomputeRates), never trusted verbatim.
type SeasonStats struct {
	PlayerID string
	Season   *int
	Type     StatsType
	Team     string
	Source   string

	Games int

	// batting
	PlateAppearances int
	AtBats           int
	Runs             int
	Hits             int
	Doubles          int
	Triples          int
	HomeRuns         int
	RBI              int
	StolenBases      int
	CaughtStealing   int
	Walks            int
	Strikeouts       int
	HitByPitch       int
	SacrificeFlies   int

	BattingAverage     float64
	OnBasePercentage   float64
	SluggingPercentage float64
	OPS                float64

	// pitching
	Wins              int
	Losses            int
	Saves             int
	Holds             int
	GamesStarted      int
	CompleteGames     int
	Shutouts          int
	InningsPitched    float64
	HitsAllowed       int
	RunsAllowed       int
	EarnedRuns        int
	HomeRunsAllowed   int
	WalksAllowed      int
	HitBatters        int
	StrikeoutsPitched int

	ERA  float64
	WHIP float64

	// Advanced metrics are optional: nil means the source did not carry the
	// field. The aggregator merges these across sources without ever
	// overwriting a populated value.
	WAR     *float64
	WOBA    *float64
	WRCPlus *int
	OPSPlus *int
	ERAPlus *int
	FIP     *float64
	XFIP    *float64
	XWOBA   *float64
}

// PlayerStats is the result of a stats lookup: every season line a source
// knows about (ordered by season ascending) plus an optional career aggregate
// with Season == nil.
type PlayerStats struct {
	PlayerID string
	Player   *Player
	Type     StatsType
	Source   string
	Seasons  []SeasonStats
	Career   *SeasonStats
}

// Standing is one row of a league standings table.
type Standing struct {
	Team        string
	League      League
	Wins        int
	Losses      int
	Ties        int
	PCT         float64
	GamesBehind float64
}

// IntPtr is a convenience for the nullable season arguments.
func IntPtr(v int) *int { return &v }

// Float64Ptr is a convenience for optional advanced-metric fields.
func Float64Ptr(v float64) *float64 { return &v }
