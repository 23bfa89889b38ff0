package match

import (
	"errors"
	"testing"
)

const minimalMatchJSON = `{
	"id": 77,
	"teams": {"home": {"id": 1, "name": "Arsenal"}, "away": {"id": 2, "name": "Chelsea"}},
	"league": {"id": 228, "name": "Premier League"},
	"goals": {
		"home_ht_goals": 0, "away_ht_goals": 0,
		"home_ft_goals": 0, "away_ft_goals": 0,
		"home_et_goals": 0, "away_et_goals": 0,
		"home_pen_goals": 0, "away_pen_goals": 0
	}
}`

func TestNormalizeMinimalPayload(t *testing.T) {
	t.Parallel()

	rec, err := Normalize([]byte(minimalMatchJSON))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if rec.ID != 77 {
		t.Fatalf("expected id 77, got %d", rec.ID)
	}
	if rec.Home.Name != "Arsenal" || rec.Away.Name != "Chelsea" {
		t.Fatalf("teams not normalized: %+v / %+v", rec.Home, rec.Away)
	}
	if rec.League.ID != 228 {
		t.Fatalf("expected league 228, got %d", rec.League.ID)
	}
	if rec.Odds != nil || rec.Lineups != nil || rec.Preview != nil || rec.Events != nil {
		t.Fatalf("optional sections must be absent on minimal payload")
	}
}

func TestNormalizeMissingRequiredField(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no id":     `{"teams": {"home": {"id": 1}, "away": {"id": 2}}, "league": {"id": 1}, "goals": {}}`,
		"no teams":  `{"id": 1, "league": {"id": 1}, "goals": {}}`,
		"no league": `{"id": 1, "teams": {"home": {"id": 1}, "away": {"id": 2}}, "goals": {}}`,
		"no goals":  `{"id": 1, "teams": {"home": {"id": 1}, "away": {"id": 2}}, "league": {"id": 1}}`,
		"bad shape": `{"id": 1, "teams": "nope", "league": {"id": 1}, "goals": {}}`,
	}
	for name, payload := range cases {
		if _, err := Normalize([]byte(payload)); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("%s: expected ErrInvalidPayload, got %v", name, err)
		}
	}
}

func TestNormalizeTeamNameDefaultsToTBD(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 5,
		"teams": {"home": {"id": 1}, "away": {"id": 2, "name": "Lyon"}},
		"league": {"id": 168},
		"goals": {
			"home_ht_goals": 0, "away_ht_goals": 0,
			"home_ft_goals": 0, "away_ft_goals": 0,
			"home_et_goals": 0, "away_et_goals": 0,
			"home_pen_goals": 0, "away_pen_goals": 0
		}
	}`
	rec, err := Normalize([]byte(payload))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if rec.Home.Name != "TBD" {
		t.Fatalf("expected TBD name default, got %q", rec.Home.Name)
	}
}

func TestNormalizeOddsAndEvents(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 9, "status": "finished", "winner": "home",
		"teams": {"home": {"id": 1, "name": "A"}, "away": {"id": 2, "name": "B"}},
		"league": {"id": 310, "name": "Serie A"},
		"goals": {
			"home_ht_goals": 1, "away_ht_goals": 0,
			"home_ft_goals": 2, "away_ft_goals": 1,
			"home_et_goals": 0, "away_et_goals": 0,
			"home_pen_goals": 0, "away_pen_goals": 0
		},
		"odds": {
			"match_winner": {"home": 1.8, "draw": 3.4, "away": 4.5},
			"over_under": {"total": 2.5, "over": 1.9, "under": 1.95},
			"handicap": {"market": -0.5, "home": 2.1, "away": 1.75},
			"last_modified_timestamp": 1714000000
		},
		"events": [
			{"event_type": "goal", "event_minute": "12", "team": "home",
			 "player": {"id": 10, "name": "Scorer"}, "assist_player": {"id": 11, "name": "Helper"}},
			{"event_type": "substitution", "event_minute": 60, "team": "away",
			 "player_in": {"id": 20, "name": "In"}, "player_out": {"id": 21, "name": "Out"}}
		]
	}`
	rec, err := Normalize([]byte(payload))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	mw := rec.Odds.MatchWinner
	if mw == nil || mw.Home == nil || *mw.Home != 1.8 {
		t.Fatalf("match winner odds not normalized: %+v", mw)
	}
	if rec.Odds.Handicap.Market == nil || *rec.Odds.Handicap.Market != "-0.5" {
		t.Fatalf("numeric handicap line must become a string, got %+v", rec.Odds.Handicap.Market)
	}
	if len(rec.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.Events))
	}
	if rec.Events[1].Minute != "60" {
		t.Fatalf("numeric event minute must coerce to string, got %q", rec.Events[1].Minute)
	}
	if rec.Events[0].AssistPlayer == nil || rec.Events[0].AssistPlayer.Name != "Helper" {
		t.Fatalf("assist player not normalized: %+v", rec.Events[0].AssistPlayer)
	}
	if !rec.IsFinished() {
		t.Fatalf("status finished not recognized")
	}
}

func TestParseKickoffLayouts(t *testing.T) {
	t.Parallel()

	for _, date := range []string{"01/05/2024", "01-05-2024", "2024-05-01"} {
		ts := ParseKickoff(date, "18:30")
		if ts == nil {
			t.Fatalf("expected %q to parse", date)
		}
		if ts.Day() != 1 || ts.Month() != 5 || ts.Hour() != 18 {
			t.Fatalf("%q parsed to wrong instant: %v", date, ts)
		}
	}

	if ts := ParseKickoff("May 1st", "18:30"); ts != nil {
		t.Fatalf("unparseable date must yield nil, got %v", ts)
	}
	if ts := ParseKickoff("", ""); ts != nil {
		t.Fatalf("empty date must yield nil, got %v", ts)
	}
}

func TestStandingRow(t *testing.T) {
	t.Parallel()

	standing := map[string]any{
		"stage": []any{
			map[string]any{"standings": []any{
				map[string]any{"team_id": float64(1), "position": float64(3)},
				map[string]any{"team_id": float64(2), "position": float64(7)},
			}},
		},
	}
	row := StandingRow(standing, 2)
	if row == nil {
		t.Fatalf("expected row for team 2")
	}
	if row["position"] != float64(7) {
		t.Fatalf("wrong row: %+v", row)
	}
	if StandingRow(standing, 99) != nil {
		t.Fatalf("unknown team must yield nil")
	}
	if StandingRow(map[string]any{"stage": "oops"}, 1) != nil {
		t.Fatalf("malformed table must yield nil")
	}
}

func TestAttachPreview(t *testing.T) {
	t.Parallel()

	rec := &Record{}
	AttachPreview(rec, map[string]any{
		"word_count": float64(120),
		"match_data": map[string]any{
			"excitement_rating": 7.5,
			"weather":           map[string]any{"temp_c": 21.0, "description": "clear sky"},
			"prediction":        map[string]any{"type": "over_under", "total": "2.5", "choice": "over"},
		},
	})
	if rec.Preview == nil {
		t.Fatalf("preview not attached")
	}
	if rec.Preview.ExcitementRating != 7.5 || rec.Preview.WordCount != 120 {
		t.Fatalf("preview signals wrong: %+v", rec.Preview)
	}
	if rec.Preview.Weather == nil || rec.Preview.Weather.Description != "clear sky" {
		t.Fatalf("weather not attached: %+v", rec.Preview.Weather)
	}
	if rec.Preview.Prediction == nil || rec.Preview.Prediction.Choice != "over" {
		t.Fatalf("prediction not attached: %+v", rec.Preview.Prediction)
	}

	other := &Record{}
	AttachPreview(other, map[string]any{"word_count": float64(5)})
	if other.Preview != nil {
		t.Fatalf("payload without match_data must not attach a preview")
	}
}
