package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/prasetyowira/matchday/internal/platform/jsonprobe"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidPayload marks a match payload missing one of the structurally
// required fields (id, teams, league, goals) or carrying them in the wrong
// shape. Everything else is optional and never raises.
var ErrInvalidPayload = errors.New("invalid match payload")

var kickoffDateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

// Normalize validates and coerces a raw match response into a Record.
// Optional fields are probed defensively; only the four required fields can
// produce an error.
func Normalize(raw []byte) (*Record, error) {
	var doc map[string]any
	if err := jsonAPI.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidPayload, err)
	}
	return NormalizeMap(doc)
}

// NormalizeMap is Normalize for an already-decoded document.
func NormalizeMap(doc map[string]any) (*Record, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPayload)
	}

	id, ok := jsonprobe.Int(doc, "id")
	if !ok {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidPayload)
	}

	teams, ok := jsonprobe.Map(doc, "teams")
	if !ok {
		return nil, fmt.Errorf("%w: missing teams", ErrInvalidPayload)
	}
	home, err := normalizeTeam(teams, "home")
	if err != nil {
		return nil, err
	}
	away, err := normalizeTeam(teams, "away")
	if err != nil {
		return nil, err
	}

	leagueMap, ok := jsonprobe.Map(doc, "league")
	if !ok {
		return nil, fmt.Errorf("%w: missing league", ErrInvalidPayload)
	}
	leagueID, ok := jsonprobe.Int(leagueMap, "id")
	if !ok {
		return nil, fmt.Errorf("%w: league missing id", ErrInvalidPayload)
	}

	goalsMap, ok := jsonprobe.Map(doc, "goals")
	if !ok {
		return nil, fmt.Errorf("%w: missing goals", ErrInvalidPayload)
	}
	goals, err := normalizeGoals(goalsMap)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:     id,
		Date:   jsonprobe.StringOr(doc, "", "date"),
		Time:   jsonprobe.StringOr(doc, "", "time"),
		Status: jsonprobe.StringOr(doc, "", "status"),
		Winner: jsonprobe.StringOr(doc, "", "winner"),
		League: IDName{ID: leagueID, Name: jsonprobe.StringOr(leagueMap, "", "name")},
		Home:   home,
		Away:   away,
		Goals:  goals,
	}

	if minute, ok := jsonprobe.Int(doc, "minute"); ok {
		rec.Minute = int(minute)
	}
	rec.Kickoff = ParseKickoff(rec.Date, rec.Time)

	if country, ok := jsonprobe.Map(doc, "country"); ok {
		rec.Country = &IDName{Name: jsonprobe.StringOr(country, "", "name")}
		if cid, ok := jsonprobe.Int(country, "id"); ok {
			rec.Country.ID = cid
		}
	}
	if stage, ok := jsonprobe.Map(doc, "stage"); ok {
		s := &Stage{Name: jsonprobe.StringOr(stage, "", "name")}
		if sid, ok := jsonprobe.Int(stage, "id"); ok {
			s.ID = sid
		}
		if active, ok := jsonprobe.Bool(stage, "is_active"); ok {
			s.IsActive = active
		}
		rec.Stage = s
	}
	if stadium, ok := jsonprobe.Map(doc, "stadium"); ok {
		v := &Stadium{
			Name: jsonprobe.StringOr(stadium, "", "name"),
			City: jsonprobe.StringOr(stadium, "", "city"),
		}
		if vid, ok := jsonprobe.Int(stadium, "id"); ok {
			v.ID = vid
		}
		rec.Stadium = v
	}
	if het, ok := jsonprobe.Bool(doc, "has_extra_time"); ok {
		rec.HasExtraTime = &het
	}
	if hp, ok := jsonprobe.Bool(doc, "has_penalties"); ok {
		rec.HasPenalties = &hp
	}
	if flag, ok := jsonprobe.Bool(doc, "match_preview", "has_preview"); ok {
		rec.HasPreviewFlag = flag
	}

	rec.Events = normalizeEvents(doc)
	rec.Odds = normalizeOdds(doc)
	rec.Lineups = normalizeLineups(doc)

	return rec, nil
}

func normalizeTeam(teams map[string]any, side string) (Team, error) {
	sideMap, ok := jsonprobe.Map(teams, side)
	if !ok {
		return Team{}, fmt.Errorf("%w: teams missing %s side", ErrInvalidPayload, side)
	}
	id, ok := jsonprobe.Int(sideMap, "id")
	if !ok {
		return Team{}, fmt.Errorf("%w: %s team missing id", ErrInvalidPayload, side)
	}
	return Team{ID: id, Name: jsonprobe.StringOr(sideMap, "TBD", "name")}, nil
}

func normalizeGoals(goalsMap map[string]any) (Goals, error) {
	read := func(key string) (int, error) {
		v, ok := jsonprobe.Int(goalsMap, key)
		if !ok {
			return 0, fmt.Errorf("%w: goals missing %s", ErrInvalidPayload, key)
		}
		return int(v), nil
	}

	var goals Goals
	var err error
	if goals.HomeHT, err = read("home_ht_goals"); err != nil {
		return Goals{}, err
	}
	if goals.AwayHT, err = read("away_ht_goals"); err != nil {
		return Goals{}, err
	}
	if goals.HomeFT, err = read("home_ft_goals"); err != nil {
		return Goals{}, err
	}
	if goals.AwayFT, err = read("away_ft_goals"); err != nil {
		return Goals{}, err
	}
	if goals.HomeET, err = read("home_et_goals"); err != nil {
		return Goals{}, err
	}
	if goals.AwayET, err = read("away_et_goals"); err != nil {
		return Goals{}, err
	}
	if goals.HomePen, err = read("home_pen_goals"); err != nil {
		return Goals{}, err
	}
	if goals.AwayPen, err = read("away_pen_goals"); err != nil {
		return Goals{}, err
	}
	return goals, nil
}

func normalizeEvents(doc map[string]any) []Event {
	items, ok := jsonprobe.Slice(doc, "events")
	if !ok {
		return nil
	}
	events := make([]Event, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		events = append(events, Event{
			Type:         jsonprobe.StringOr(entry, "", "event_type"),
			Minute:       eventMinute(entry),
			Team:         jsonprobe.StringOr(entry, "", "team"),
			Player:       normalizePlayer(entry, "player"),
			AssistPlayer: normalizePlayer(entry, "assist_player"),
			PlayerIn:     normalizePlayer(entry, "player_in"),
			PlayerOut:    normalizePlayer(entry, "player_out"),
		})
	}
	if len(events) == 0 {
		return nil
	}
	return events
}

// eventMinute tolerates the upstream sending minutes as either a string or
// a number.
func eventMinute(entry map[string]any) string {
	if s, ok := jsonprobe.String(entry, "event_minute"); ok {
		return s
	}
	if n, ok := jsonprobe.Int(entry, "event_minute"); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

func normalizePlayer(entry map[string]any, key string) *Player {
	playerMap, ok := jsonprobe.Map(entry, key)
	if !ok {
		return nil
	}
	p := &Player{
		Name:     jsonprobe.StringOr(playerMap, "", "name"),
		Position: jsonprobe.StringOr(playerMap, "", "position"),
	}
	if pid, ok := jsonprobe.Int(playerMap, "id"); ok {
		p.ID = pid
	}
	return p
}

func normalizeOdds(doc map[string]any) *Odds {
	oddsMap, ok := jsonprobe.Map(doc, "odds")
	if !ok {
		return nil
	}
	odds := &Odds{
		MatchWinner: normalizeMarket(oddsMap, "match_winner"),
		OverUnder:   normalizeMarket(oddsMap, "over_under"),
		Handicap:    normalizeMarket(oddsMap, "handicap"),
	}
	if ts, ok := jsonprobe.Int(oddsMap, "last_modified_timestamp"); ok {
		odds.LastModifiedTimestamp = &ts
	}
	if odds.MatchWinner == nil && odds.OverUnder == nil && odds.Handicap == nil && odds.LastModifiedTimestamp == nil {
		return nil
	}
	return odds
}

func normalizeMarket(oddsMap map[string]any, key string) *Market {
	marketMap, ok := jsonprobe.Map(oddsMap, key)
	if !ok {
		return nil
	}
	market := &Market{
		Home:  probeQuote(marketMap, "home"),
		Draw:  probeQuote(marketMap, "draw"),
		Away:  probeQuote(marketMap, "away"),
		Total: probeQuote(marketMap, "total"),
		Over:  probeQuote(marketMap, "over"),
		Under: probeQuote(marketMap, "under"),
	}
	if line := marketLine(marketMap); line != "" {
		market.Market = &line
	}
	return market
}

func probeQuote(marketMap map[string]any, key string) *float64 {
	v, ok := jsonprobe.Float(marketMap, key)
	if !ok {
		return nil
	}
	return &v
}

// marketLine reads the handicap line, which arrives as either a string or a
// number.
func marketLine(marketMap map[string]any) string {
	if s, ok := jsonprobe.String(marketMap, "market"); ok {
		return strings.TrimSpace(s)
	}
	if f, ok := jsonprobe.Float(marketMap, "market"); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func normalizeLineups(doc map[string]any) *Lineups {
	lineupsMap, ok := jsonprobe.Map(doc, "lineups")
	if !ok {
		return nil
	}
	l := &Lineups{
		LineupType: jsonprobe.StringOr(lineupsMap, "", "lineup_type"),
		Lineups: LineupSides{
			Home: normalizeXI(lineupsMap, "lineups", "home"),
			Away: normalizeXI(lineupsMap, "lineups", "away"),
		},
		Bench: LineupSides{
			Home: normalizeXI(lineupsMap, "bench", "home"),
			Away: normalizeXI(lineupsMap, "bench", "away"),
		},
		Sidelined: SidelinedSides{
			Home: normalizeSidelined(lineupsMap, "home"),
			Away: normalizeSidelined(lineupsMap, "away"),
		},
		Formation: Formation{
			Home: jsonprobe.StringOr(lineupsMap, "", "formation", "home"),
			Away: jsonprobe.StringOr(lineupsMap, "", "formation", "away"),
		},
	}
	return l
}

func normalizeXI(lineupsMap map[string]any, group, side string) []LineupPlayer {
	items, ok := jsonprobe.Slice(lineupsMap, group, side)
	if !ok {
		return nil
	}
	players := make([]LineupPlayer, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lp := LineupPlayer{Position: jsonprobe.StringOr(entry, "", "position")}
		if p := normalizePlayer(entry, "player"); p != nil {
			lp.Player = *p
		}
		players = append(players, lp)
	}
	if len(players) == 0 {
		return nil
	}
	return players
}

func normalizeSidelined(lineupsMap map[string]any, side string) []SidelinedEntry {
	items, ok := jsonprobe.Slice(lineupsMap, "sidelined", side)
	if !ok {
		return nil
	}
	entries := make([]SidelinedEntry, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		se := SidelinedEntry{
			Status: jsonprobe.StringOr(entry, "", "status"),
			Desc:   jsonprobe.StringOr(entry, "", "desc"),
		}
		if p := normalizePlayer(entry, "player"); p != nil {
			se.Player = *p
		}
		entries = append(entries, se)
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// AttachPreview extracts the preview signals from a detailed-preview
// response and attaches them when the payload carries match_data. A payload
// without match_data leaves the record untouched.
func AttachPreview(rec *Record, previewRaw map[string]any) {
	matchData, ok := jsonprobe.Map(previewRaw, "match_data")
	if !ok {
		return
	}
	preview := &Preview{}
	if wc, ok := jsonprobe.Int(previewRaw, "word_count"); ok {
		preview.WordCount = int(wc)
	}
	if rating, ok := jsonprobe.Float(matchData, "excitement_rating"); ok {
		preview.ExcitementRating = rating
	}
	if weather, ok := jsonprobe.Map(matchData, "weather"); ok {
		w := &Weather{Description: jsonprobe.StringOr(weather, "", "description")}
		if c, ok := jsonprobe.Float(weather, "temp_c"); ok {
			w.TempC = c
		}
		if f, ok := jsonprobe.Float(weather, "temp_f"); ok {
			w.TempF = f
		}
		preview.Weather = w
	}
	if prediction, ok := jsonprobe.Map(matchData, "prediction"); ok {
		preview.Prediction = &Prediction{
			Type:   jsonprobe.StringOr(prediction, "", "type"),
			Choice: jsonprobe.StringOr(prediction, "", "choice"),
			Total:  jsonprobe.StringOr(prediction, "", "total"),
		}
	}
	rec.Preview = preview
}

// StandingRow scans every stage's standings list for the row belonging to
// teamID. Returns nil when the table or the row is absent.
func StandingRow(standing map[string]any, teamID int64) map[string]any {
	stages, ok := jsonprobe.Slice(standing, "stage")
	if !ok {
		return nil
	}
	for _, stage := range stages {
		stageMap, ok := stage.(map[string]any)
		if !ok {
			continue
		}
		rows, ok := jsonprobe.Slice(stageMap, "standings")
		if !ok {
			continue
		}
		for _, row := range rows {
			rowMap, ok := row.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := jsonprobe.Int(rowMap, "team_id"); ok && id == teamID {
				return rowMap
			}
		}
	}
	return nil
}

// ParseKickoff tries the three known upstream date layouts in order and
// returns nil when none matches. Never an error: scheduling strings are
// free text.
func ParseKickoff(date, clock string) *time.Time {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return nil
	}
	for _, layout := range kickoffDateLayouts {
		full := layout
		value := date
		if clock != "" {
			full += " 15:04"
			value += " " + clock
		}
		if ts, err := time.Parse(full, value); err == nil {
			return &ts
		}
	}
	return nil
}

func normalizedStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
