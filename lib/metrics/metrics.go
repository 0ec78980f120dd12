// Package metrics computes advanced baseball metrics with NPB-calibrated
// constants. All functions are pure; EnhanceBatting/EnhancePitching fill the
// optional advanced fields of a stat line in place, only when unset.
package metrics

import (
	"math"

	"github.com/albertinopadin/baseball-mcp/npb"
)

// NPB run environment differs from MLB, so the usual constants are shifted.
const (
	FIPConstant = 3.10

	LeagueOPS = 0.750
	LeagueERA = 3.50
	LeagueFIP = 3.80

	// Replacement level: wins per 600 PA (batting) / 200 IP (pitching).
	ReplacementLevelBatting  = 2.0
	ReplacementLevelPitching = 2.0

	RunsPerWin = 9.5
)

// wOBA linear weights, NPB-calibrated.
const (
	wobaWalk       = 0.69
	wobaHitByPitch = 0.72
	wobaSingle     = 0.88
	wobaDouble     = 1.24
	wobaTriple     = 1.56
	wobaHomeRun    = 1.95
)

// Runs-per-162-games positional adjustments for the WAR estimate.
var positionalAdjustments = map[string]float64{
	"C":  12.5,
	"SS": 7.5,
	"2B": 2.5,
	"3B": 2.5,
	"CF": 2.5,
	"RF": -7.5,
	"LF": -7.5,
	"1B": -12.5,
	"DH": -17.5,
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// FIP = (13*HR + 3*(BB+HBP) - 2*K)/IP + constant. Returns ok=false when no
// innings were pitched.
func FIP(hr, bb, hbp, k int, ip float64) (float64, bool) {
	if ip <= 0 {
		return 0, false
	}
	return round2((13*float64(hr)+3*float64(bb+hbp)-2*float64(k))/ip + FIPConstant), true
}

// WOBA applies the NPB linear weights over AB+BB+SF+HBP plate outcomes.
func WOBA(bb, hbp, singles, doubles, triples, hr, ab, sf int) (float64, bool) {
	denom := ab + bb + sf + hbp
	if denom <= 0 {
		return 0, false
	}
	num := wobaWalk*float64(bb) +
		wobaHitByPitch*float64(hbp) +
		wobaSingle*float64(singles) +
		wobaDouble*float64(doubles) +
		wobaTriple*float64(triples) +
		wobaHomeRun*float64(hr)
	return round3(num / float64(denom)), true
}

// OPSPlus scales OPS against the league average; 100 is average. Park factors
// are not applied.
func OPSPlus(ops float64) (int, bool) {
	if ops <= 0 {
		return 0, false
	}
	return int(math.Round(100 * ops / LeagueOPS)), true
}

// ERAPlus scales ERA against the league average; 100 is average, higher is
// better.
func ERAPlus(era float64) (int, bool) {
	if era <= 0 {
		return 0, false
	}
	return int(math.Round(100 * LeagueERA / era)), true
}

// RunsCreated is the basic (H+BB)*TB/(AB+BB) estimate.
func RunsCreated(hits, walks, totalBases, atBats int) (float64, bool) {
	denom := atBats + walks
	if denom <= 0 {
		return 0, false
	}
	return round1(float64(hits+walks) * float64(totalBases) / float64(denom)), true
}

// BattingWAR is a deliberately rough estimate: runs created above replacement
// plus a positional adjustment, scaled to games played and converted at the
// league runs-per-win rate. No defense, baserunning or park factors.
func BattingWAR(runsCreated float64, games int, position string) float64 {
	gamesFactor := float64(games) / 162.0
	replacementRuns := ReplacementLevelBatting * RunsPerWin * gamesFactor
	aboveReplacement := runsCreated - replacementRuns + positionalAdjustments[position]*gamesFactor
	return round1(aboveReplacement / RunsPerWin)
}

// PitchingWAR estimates wins from FIP distance to league average plus
// replacement level, scaled by innings.
func PitchingWAR(fip, ip float64) float64 {
	aboveAverage := (LeagueFIP - fip) / 9 * ip
	replacementRuns := ReplacementLevelPitching * RunsPerWin * (ip / 200)
	return round1((aboveAverage + replacementRuns) / RunsPerWin)
}

// EnhanceBatting fills wOBA, OPS+ and the WAR estimate on a batting line.
// Populated fields are left alone.
func EnhanceBatting(s *npb.SeasonStats) {
	if s == nil || s.Type != npb.StatsBatting {
		return
	}
	singles := s.Hits - s.Doubles - s.Triples - s.HomeRuns

	if s.WOBA == nil {
		if v, ok := WOBA(s.Walks, s.HitByPitch, singles, s.Doubles, s.Triples, s.HomeRuns, s.AtBats, s.SacrificeFlies); ok {
			s.WOBA = &v
		}
	}
	if s.OPSPlus == nil {
		if v, ok := OPSPlus(s.OPS); ok {
			s.OPSPlus = &v
		}
	}
	if s.WAR == nil {
		if rc, ok := RunsCreated(s.Hits, s.Walks, s.TotalBases(), s.AtBats); ok && s.Games > 0 {
			// Position is unknown at the stat-line level; assume DH, the
			// most conservative adjustment.
			war := BattingWAR(rc, s.Games, "DH")
			s.WAR = &war
		}
	}
}

// EnhancePitching fills FIP, ERA+ and the WAR estimate on a pitching line.
func EnhancePitching(s *npb.SeasonStats) {
	if s == nil || s.Type != npb.StatsPitching {
		return
	}
	if s.FIP == nil {
		if v, ok := FIP(s.HomeRunsAllowed, s.WalksAllowed, s.HitBatters, s.StrikeoutsPitched, s.InningsPitched); ok {
			s.FIP = &v
		}
	}
	if s.ERAPlus == nil {
		if v, ok := ERAPlus(s.ERA); ok {
			s.ERAPlus = &v
		}
	}
	if s.WAR == nil && s.FIP != nil {
		war := PitchingWAR(*s.FIP, s.InningsPitched)
		s.WAR = &war
	}
}
