// Package feature derives analysis signals from a normalized match record:
// implied probabilities from decimal odds, head-to-head goal averages and a
// finished-match outcome label.
package feature

import (
	"github.com/prasetyowira/matchday/internal/domain/match"
	"github.com/prasetyowira/matchday/internal/platform/jsonprobe"
)

// minQuote guards the inversion: quotes at or below it are treated as
// absent rather than producing absurd probabilities.
const minQuote = 1e-9

// OneXTwo is the implied three-way market. Probabilities are normalized by
// the overround and sum to 1 when available.
type OneXTwo struct {
	Available bool    `json:"available"`
	Home      float64 `json:"home,omitempty"`
	Draw      float64 `json:"draw,omitempty"`
	Away      float64 `json:"away,omitempty"`
	Overround float64 `json:"overround,omitempty"`
}

type OverUnder struct {
	Available bool     `json:"available"`
	Total     *float64 `json:"total,omitempty"`
	Over      float64  `json:"over,omitempty"`
	Under     float64  `json:"under,omitempty"`
	Overround float64  `json:"overround,omitempty"`
}

// Handicap is availability only. Handicap lines are not binary markets, so
// no probability math applies.
type Handicap struct {
	Available bool    `json:"available"`
	Market    *string `json:"market,omitempty"`
}

type Bundle struct {
	OneXTwo         OneXTwo   `json:"implied_1x2"`
	OverUnder       OverUnder `json:"implied_over_under"`
	Handicap        Handicap  `json:"handicap"`
	AvgGoalsPerGame *float64  `json:"avg_goals_per_game"`
	TotalGoals      *int      `json:"total_goals"`
}

// Derive computes the full feature bundle. It never fails: any missing or
// malformed input leaves the corresponding feature unavailable or null.
func Derive(rec *match.Record) Bundle {
	bundle := Bundle{
		AvgGoalsPerGame: avgGoalsPerGame(rec.H2H),
		TotalGoals:      totalGoalsLabel(rec),
	}
	if rec.Odds != nil {
		bundle.OneXTwo = impliedOneXTwo(rec.Odds.MatchWinner)
		bundle.OverUnder = impliedOverUnder(rec.Odds.OverUnder)
		bundle.Handicap = handicapSignal(rec.Odds.Handicap)
	}
	return bundle
}

func impliedOneXTwo(mw *match.Market) OneXTwo {
	if mw == nil || !validQuote(mw.Home) || !validQuote(mw.Draw) || !validQuote(mw.Away) {
		return OneXTwo{}
	}
	invHome := 1 / *mw.Home
	invDraw := 1 / *mw.Draw
	invAway := 1 / *mw.Away
	overround := invHome + invDraw + invAway
	return OneXTwo{
		Available: true,
		Home:      invHome / overround,
		Draw:      invDraw / overround,
		Away:      invAway / overround,
		Overround: overround,
	}
}

func impliedOverUnder(ou *match.Market) OverUnder {
	if ou == nil || !validQuote(ou.Over) || !validQuote(ou.Under) {
		return OverUnder{}
	}
	invOver := 1 / *ou.Over
	invUnder := 1 / *ou.Under
	overround := invOver + invUnder
	return OverUnder{
		Available: true,
		Total:     ou.Total,
		Over:      invOver / overround,
		Under:     invUnder / overround,
		Overround: overround,
	}
}

func handicapSignal(hc *match.Market) Handicap {
	if hc == nil || hc.Market == nil {
		return Handicap{}
	}
	if hc.Home == nil && hc.Away == nil {
		return Handicap{}
	}
	return Handicap{Available: true, Market: hc.Market}
}

func validQuote(q *float64) bool {
	return q != nil && *q > minQuote
}

// avgGoalsPerGame reads the aggregated head-to-head stats. Both the nested
// stats.overall shape and a flat map are accepted; anything non-numeric
// yields null and never an error.
func avgGoalsPerGame(h2h map[string]any) *float64 {
	if h2h == nil {
		return nil
	}
	overall, ok := jsonprobe.Map(h2h, "stats", "overall")
	if !ok {
		overall = h2h
	}
	games, ok := jsonprobe.FloatAny(overall, "overall_games_played", "games_played")
	if !ok || games <= 0 {
		return nil
	}
	scored1, ok := jsonprobe.FloatAny(overall, "overall_team1_scored", "team1_scored")
	if !ok {
		return nil
	}
	scored2, ok := jsonprobe.FloatAny(overall, "overall_team2_scored", "team2_scored")
	if !ok {
		return nil
	}
	avg := (scored1 + scored2) / games
	return &avg
}

// totalGoalsLabel is populated only for finished matches with non-negative
// full-time counts. It is an analysis signal, never shown to end users.
func totalGoalsLabel(rec *match.Record) *int {
	if !rec.IsFinished() {
		return nil
	}
	if rec.Goals.HomeFT < 0 || rec.Goals.AwayFT < 0 {
		return nil
	}
	total := rec.Goals.HomeFT + rec.Goals.AwayFT
	return &total
}
