package npb

import "math"

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// TotalBases returns H + 2B + 2*3B + 3*HR, i.e. singles + 2*doubles +
// 3*triples + 4*home runs.
func (s *SeasonStats) TotalBases() int {
	return s.Hits + s.Doubles + 2*s.Triples + 3*s.HomeRuns
}

// RecomputeRates rewrites every derived rate field from the counting fields,
// so that a stat line emitted by this system is always internally consistent
// (OPS == round(OBP+SLG, 3), ERA == 9*ER/IP, ...) regardless of what the
// source claimed.
func (s *SeasonStats) RecomputeRates() {
	switch s.Type {
	case StatsBatting:
		if s.AtBats > 0 {
			s.BattingAverage = round3(float64(s.Hits) / float64(s.AtBats))
			s.SluggingPercentage = round3(float64(s.TotalBases()) / float64(s.AtBats))
		} else {
			s.BattingAverage = 0
			s.SluggingPercentage = 0
		}
		obpDenom := s.AtBats + s.Walks + s.HitByPitch + s.SacrificeFlies
		if obpDenom > 0 {
			s.OnBasePercentage = round3(float64(s.Hits+s.Walks+s.HitByPitch) / float64(obpDenom))
		} else {
			s.OnBasePercentage = 0
		}
		s.OPS = round3(s.OnBasePercentage + s.SluggingPercentage)
	case StatsPitching:
		if s.InningsPitched > 0 {
			s.ERA = round2(float64(s.EarnedRuns) * 9 / s.InningsPitched)
			s.WHIP = round3(float64(s.HitsAllowed+s.WalksAllowed) / s.InningsPitched)
		} else {
			s.ERA = 0
			s.WHIP = 0
		}
	}
}

// CareerTotals sums the counting fields of the given season lines into a new
// aggregate line with Season == nil and recomputes every rate field from the
// sums. Rates are never averaged across seasons. The inputs are not mutated.
func CareerTotals(seasons []SeasonStats) *SeasonStats {
	if len(seasons) == 0 {
		return nil
	}

	total := SeasonStats{
		PlayerID: seasons[0].PlayerID,
		Type:     seasons[0].Type,
		Source:   seasons[0].Source,
	}
	for _, s := range seasons {
		total.Games += s.Games

		total.PlateAppearances += s.PlateAppearances
		total.AtBats += s.AtBats
		total.Runs += s.Runs
		total.Hits += s.Hits
		total.Doubles += s.Doubles
		total.Triples += s.Triples
		total.HomeRuns += s.HomeRuns
		total.RBI += s.RBI
		total.StolenBases += s.StolenBases
		total.CaughtStealing += s.CaughtStealing
		total.Walks += s.Walks
		total.Strikeouts += s.Strikeouts
		total.HitByPitch += s.HitByPitch
		total.SacrificeFlies += s.SacrificeFlies

		total.Wins += s.Wins
		total.Losses += s.Losses
		total.Saves += s.Saves
		total.Holds += s.Holds
		total.GamesStarted += s.GamesStarted
		total.CompleteGames += s.CompleteGames
		total.Shutouts += s.Shutouts
		total.InningsPitched += s.InningsPitched
		total.HitsAllowed += s.HitsAllowed
		total.RunsAllowed += s.RunsAllowed
		total.EarnedRuns += s.EarnedRuns
		total.HomeRunsAllowed += s.HomeRunsAllowed
		total.WalksAllowed += s.WalksAllowed
		total.HitBatters += s.HitBatters
		total.StrikeoutsPitched += s.StrikeoutsPitched
	}
	total.RecomputeRates()
	return &total
}

// Clone returns a deep copy of the stat set. Merging in the aggregator and
// composite provider always works on clones so that no input is ever mutated.
func (p *PlayerStats) Clone() *PlayerStats {
	if p == nil {
		return nil
	}
	out := &PlayerStats{
		PlayerID: p.PlayerID,
		Type:     p.Type,
		Source:   p.Source,
	}
	if p.Player != nil {
		player := *p.Player
		out.Player = &player
	}
	if len(p.Seasons) > 0 {
		out.Seasons = make([]SeasonStats, len(p.Seasons))
		copy(out.Seasons, p.Seasons)
	}
	if p.Career != nil {
		career := *p.Career
		out.Career = &career
	}
	return out
}

// HasRecordedStats reports whether the set contains any played game, either
// in the career aggregate or in any single season.
func (p *PlayerStats) HasRecordedStats() bool {
	if p == nil {
		return false
	}
	if p.Career != nil && p.Career.Games > 0 {
		return true
	}
	for _, s := range p.Seasons {
		if s.Games > 0 {
			return true
		}
	}
	return false
}
