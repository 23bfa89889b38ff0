// Package match holds the normalized fixture record and the logic that
// builds it from loosely typed upstream payloads.
package match

import "time"

// IDName is the minimal identity pair the upstream uses for leagues,
// countries and similar nested objects.
type IDName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Stadium struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

type Stage struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Goals carries the eight sub-scores of a fixture. These are required on
// every match payload, even for not-yet-played fixtures (zeros).
type Goals struct {
	HomeHT  int `json:"home_ht_goals"`
	AwayHT  int `json:"away_ht_goals"`
	HomeFT  int `json:"home_ft_goals"`
	AwayFT  int `json:"away_ft_goals"`
	HomeET  int `json:"home_et_goals"`
	AwayET  int `json:"away_et_goals"`
	HomePen int `json:"home_pen_goals"`
	AwayPen int `json:"away_pen_goals"`
}

type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

type LineupPlayer struct {
	Player   Player `json:"player"`
	Position string `json:"position"`
}

type SidelinedEntry struct {
	Player Player `json:"player"`
	Status string `json:"status,omitempty"`
	Desc   string `json:"desc,omitempty"`
}

// LineupSides groups a per-side list; empty slices mean "not announced".
type LineupSides struct {
	Home []LineupPlayer `json:"home"`
	Away []LineupPlayer `json:"away"`
}

type SidelinedSides struct {
	Home []SidelinedEntry `json:"home"`
	Away []SidelinedEntry `json:"away"`
}

type Formation struct {
	Home string `json:"home,omitempty"`
	Away string `json:"away,omitempty"`
}

type Lineups struct {
	LineupType string         `json:"lineup_type"`
	Lineups    LineupSides    `json:"lineups"`
	Bench      LineupSides    `json:"bench"`
	Sidelined  SidelinedSides `json:"sidelined"`
	Formation  Formation      `json:"formation"`
}

// Market is one odds market. Every quote is independently nullable; Market
// holds the handicap line, which upstream sends as either a string or a
// number.
type Market struct {
	Home   *float64 `json:"home,omitempty"`
	Draw   *float64 `json:"draw,omitempty"`
	Away   *float64 `json:"away,omitempty"`
	Total  *float64 `json:"total,omitempty"`
	Over   *float64 `json:"over,omitempty"`
	Under  *float64 `json:"under,omitempty"`
	Market *string  `json:"market,omitempty"`
}

type Odds struct {
	MatchWinner           *Market `json:"match_winner,omitempty"`
	OverUnder             *Market `json:"over_under,omitempty"`
	Handicap              *Market `json:"handicap,omitempty"`
	LastModifiedTimestamp *int64  `json:"last_modified_timestamp,omitempty"`
}

type Event struct {
	Type         string  `json:"event_type"`
	Minute       string  `json:"event_minute"`
	Team         string  `json:"team"`
	Player       *Player `json:"player,omitempty"`
	AssistPlayer *Player `json:"assist_player,omitempty"`
	PlayerIn     *Player `json:"player_in,omitempty"`
	PlayerOut    *Player `json:"player_out,omitempty"`
}

type Weather struct {
	TempF       float64 `json:"temp_f"`
	TempC       float64 `json:"temp_c"`
	Description string  `json:"description"`
}

type Prediction struct {
	Type   string `json:"type"`
	Choice string `json:"choice"`
	Total  string `json:"total,omitempty"`
}

// Preview is the extracted signal set from a detailed match preview.
type Preview struct {
	WordCount        int         `json:"word_count"`
	Weather          *Weather    `json:"weather,omitempty"`
	ExcitementRating float64     `json:"excitement_rating"`
	Prediction       *Prediction `json:"prediction,omitempty"`
}

// Record is one normalized fixture. Only ID, Home, Away, League and Goals
// are guaranteed; everything else degrades to its zero value or nil.
// Standing and H2H stay as raw maps because only a handful of their fields
// are ever read, always through defensive probing.
type Record struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
	Minute  int    `json:"minute"`
	Winner  string `json:"winner,omitempty"`
	League  IDName `json:"league"`
	Home    Team   `json:"home_team"`
	Away    Team   `json:"away_team"`
	Goals   Goals  `json:"goals"`

	Kickoff      *time.Time     `json:"kickoff,omitempty"`
	Country      *IDName        `json:"country,omitempty"`
	Stage        *Stage         `json:"stage,omitempty"`
	Stadium      *Stadium       `json:"stadium,omitempty"`
	HasExtraTime *bool          `json:"has_extra_time,omitempty"`
	HasPenalties *bool          `json:"has_penalties,omitempty"`
	Events       []Event        `json:"events,omitempty"`
	Odds         *Odds          `json:"odds,omitempty"`
	Lineups      *Lineups       `json:"lineups,omitempty"`
	Preview      *Preview       `json:"preview,omitempty"`
	Standing     map[string]any `json:"standing,omitempty"`
	H2H          map[string]any `json:"h2h,omitempty"`

	// HasPreviewFlag mirrors the primary payload's match_preview.has_preview
	// marker and drives the enrichment fetch.
	HasPreviewFlag bool `json:"-"`
}

// IsFinished reports whether the fixture status resolves to finished,
// compared case-insensitively the way the renderer does.
func (r *Record) IsFinished() bool {
	return normalizedStatus(r.Status) == "finished"
}

func (r *Record) IsLive() bool {
	return normalizedStatus(r.Status) == "live"
}
