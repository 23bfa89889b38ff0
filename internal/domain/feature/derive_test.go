package feature

import (
	"math"
	"testing"

	"github.com/prasetyowira/matchday/internal/domain/match"
)

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }

func TestImpliedOneXTwoSumsToOne(t *testing.T) {
	t.Parallel()

	rec := &match.Record{
		Odds: &match.Odds{
			MatchWinner: &match.Market{Home: fptr(1.8), Draw: fptr(3.4), Away: fptr(4.5)},
		},
	}
	bundle := Derive(rec)
	p := bundle.OneXTwo
	if !p.Available {
		t.Fatalf("expected 1x2 to be available")
	}
	sum := p.Home + p.Draw + p.Away
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("probabilities must sum to 1, got %v", sum)
	}
	for _, v := range []float64{p.Home, p.Draw, p.Away} {
		if v <= 0 || v >= 1 {
			t.Fatalf("probability out of (0,1): %v", v)
		}
	}
	if p.Overround <= 1 {
		t.Fatalf("overround should exceed 1 for a real book, got %v", p.Overround)
	}
}

func TestImpliedOneXTwoUnavailable(t *testing.T) {
	t.Parallel()

	cases := []*match.Market{
		nil,
		{Home: fptr(1.8), Draw: fptr(3.4)},
		{Home: fptr(1.8), Draw: fptr(0), Away: fptr(4.5)},
		{Home: fptr(-2), Draw: fptr(3.4), Away: fptr(4.5)},
	}
	for i, mw := range cases {
		bundle := Derive(&match.Record{Odds: &match.Odds{MatchWinner: mw}})
		p := bundle.OneXTwo
		if p.Available {
			t.Fatalf("case %d: expected unavailable", i)
		}
		if p.Home != 0 || p.Draw != 0 || p.Away != 0 || p.Overround != 0 {
			t.Fatalf("case %d: unavailable result must carry no probabilities: %+v", i, p)
		}
	}
}

func TestImpliedOverUnder(t *testing.T) {
	t.Parallel()

	rec := &match.Record{
		Odds: &match.Odds{
			OverUnder: &match.Market{Total: fptr(2.5), Over: fptr(1.9), Under: fptr(1.95)},
		},
	}
	ou := Derive(rec).OverUnder
	if !ou.Available {
		t.Fatalf("expected over/under to be available")
	}
	if ou.Total == nil || *ou.Total != 2.5 {
		t.Fatalf("total must pass through unmodified, got %+v", ou.Total)
	}
	if math.Abs(ou.Over+ou.Under-1) > 1e-12 {
		t.Fatalf("two-outcome probabilities must sum to 1")
	}

	missing := Derive(&match.Record{
		Odds: &match.Odds{OverUnder: &match.Market{Total: fptr(2.5), Over: fptr(1.9)}},
	}).OverUnder
	if missing.Available {
		t.Fatalf("missing under quote must yield unavailable")
	}
}

func TestHandicapSignal(t *testing.T) {
	t.Parallel()

	available := Derive(&match.Record{
		Odds: &match.Odds{Handicap: &match.Market{Market: sptr("-0.5"), Home: fptr(2.1)}},
	}).Handicap
	if !available.Available || available.Market == nil || *available.Market != "-0.5" {
		t.Fatalf("expected available handicap signal, got %+v", available)
	}

	noQuotes := Derive(&match.Record{
		Odds: &match.Odds{Handicap: &match.Market{Market: sptr("-0.5")}},
	}).Handicap
	if noQuotes.Available {
		t.Fatalf("handicap without quotes must be unavailable")
	}

	noLine := Derive(&match.Record{
		Odds: &match.Odds{Handicap: &match.Market{Home: fptr(2.1)}},
	}).Handicap
	if noLine.Available {
		t.Fatalf("handicap without market line must be unavailable")
	}
}

func TestAvgGoalsPerGame(t *testing.T) {
	t.Parallel()

	rec := &match.Record{H2H: map[string]any{
		"stats": map[string]any{"overall": map[string]any{
			"overall_games_played": float64(10),
			"overall_team1_scored": float64(14),
			"overall_team2_scored": float64(9),
		}},
	}}
	avg := Derive(rec).AvgGoalsPerGame
	if avg == nil || math.Abs(*avg-2.3) > 1e-12 {
		t.Fatalf("expected 2.3 avg goals, got %+v", avg)
	}

	zero := Derive(&match.Record{H2H: map[string]any{
		"games_played": float64(0), "team1_scored": float64(4), "team2_scored": float64(2),
	}}).AvgGoalsPerGame
	if zero != nil {
		t.Fatalf("games_played=0 must yield null, got %v", *zero)
	}

	garbage := Derive(&match.Record{H2H: map[string]any{
		"games_played": "lots", "team1_scored": float64(4), "team2_scored": float64(2),
	}}).AvgGoalsPerGame
	if garbage != nil {
		t.Fatalf("non-numeric input must yield null")
	}
}

func TestTotalGoalsLabel(t *testing.T) {
	t.Parallel()

	finished := &match.Record{
		Status: "finished",
		Goals:  match.Goals{HomeFT: 2, AwayFT: 1},
	}
	label := Derive(finished).TotalGoals
	if label == nil || *label != 3 {
		t.Fatalf("expected label 3, got %+v", label)
	}

	live := &match.Record{
		Status: "live",
		Goals:  match.Goals{HomeFT: 2, AwayFT: 1},
	}
	if Derive(live).TotalGoals != nil {
		t.Fatalf("live match must have no outcome label")
	}
}
