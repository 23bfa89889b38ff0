package report

import (
	"fmt"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/prasetyowira/matchday/internal/domain/match"
	"github.com/prasetyowira/matchday/internal/platform/jsonprobe"
)

const maxOtherEvents = 25

// Render assembles the full text report. Section order is fixed; each
// section degrades to placeholders or disappears when its data is absent,
// so a record carrying only the required fields still renders.
func Render(rec *match.Record) string {
	b := newBuilder()
	defer b.release()

	home := CleanName(rec.Home.Name)
	away := CleanName(rec.Away.Name)

	writeHeader(b, rec, home, away)
	writeStatusScore(b, rec, home, away)
	writePreview(b, rec)
	writeStandings(b, rec, home, away)
	writeOdds(b, rec, home, away)
	writeLineups(b, rec, home, away)
	writeEvents(b, rec)

	return b.String()
}

func writeHeader(b *builder, rec *match.Record, home, away string) {
	b.linef("%s (Home) vs %s (Away)", home, away)
	b.linef("Match ID: %d", rec.ID)

	country := "TBD"
	if rec.Country != nil {
		country = CleanName(rec.Country.Name)
	}
	b.linef("Competition: %s (%s) | League ID: %d", CleanName(rec.League.Name), country, rec.League.ID)

	if rec.Stage != nil {
		b.linef("Stage: %s | Active: %t", CleanName(rec.Stage.Name), rec.Stage.IsActive)
	}
	b.linef("Kick-off: %s %s", rec.Date, rec.Time)

	if rec.Stadium != nil {
		venue := CleanName(rec.Stadium.Name)
		city := CleanName(rec.Stadium.City)
		if city != "TBD" {
			b.linef("Venue: %s, %s", venue, city)
		} else {
			b.linef("Venue: %s", venue)
		}
	} else {
		b.line("Venue: TBD")
	}
}

func writeStatusScore(b *builder, rec *match.Record, home, away string) {
	b.blank()
	switch {
	case rec.IsFinished():
		b.line("Status: FINISHED")
	case rec.IsLive():
		b.linef("Status: LIVE | Minute: %d", rec.Minute)
	default:
		b.linef("Status: %s", strings.ToUpper(rec.Status))
	}

	g := rec.Goals
	b.linef("Score: FT %s (Home) %d–%d %s (Away) | HT %d–%d", home, g.HomeFT, g.AwayFT, away, g.HomeHT, g.AwayHT)

	if winner := CleanName(rec.Winner); winner != "TBD" {
		b.linef("Winner: %s", strings.ToUpper(winner))
	}
}

func writePreview(b *builder, rec *match.Record) {
	p := rec.Preview
	if p == nil {
		return
	}
	b.blank()
	if p.Weather != nil {
		b.linef("Weather: %s°C, %s", FormatCelsius(p.Weather.TempC), CleanName(p.Weather.Description))
	}
	b.linef("Excitement rating: %s/10", FormatFloat(p.ExcitementRating))
	if p.Prediction != nil {
		label := CleanName(p.Prediction.Type)
		if total := strings.TrimSpace(p.Prediction.Total); total != "" {
			label += " " + total
		}
		b.linef("Prediction [%s]: %s", label, CleanName(p.Prediction.Choice))
	}
}

func writeStandings(b *builder, rec *match.Record, home, away string) {
	if rec.Standing == nil || rec.Home.ID == 0 || rec.Away.ID == 0 {
		return
	}
	homeRow := match.StandingRow(rec.Standing, rec.Home.ID)
	awayRow := match.StandingRow(rec.Standing, rec.Away.ID)
	if homeRow == nil && awayRow == nil {
		return
	}

	b.blank()
	b.line("Table snapshot")
	if homeRow != nil {
		b.line(standingLine(home+" (Home)", homeRow))
	}
	if awayRow != nil {
		b.line(standingLine(away+" (Away)", awayRow))
	}
}

func standingLine(label string, row map[string]any) string {
	return fmt.Sprintf("%s: Pos %s | Pts %s | GP %s | W-D-L %s-%s-%s | GF %s GA %s",
		label,
		cell(row, "position"), cell(row, "points"), cell(row, "games_played"),
		cell(row, "wins"), cell(row, "draws"), cell(row, "losses"),
		cell(row, "goals_for"), cell(row, "goals_against"),
	)
}

func cell(row map[string]any, key string) string {
	if n, ok := jsonprobe.Int(row, key); ok {
		return fmt.Sprintf("%d", n)
	}
	if s, ok := jsonprobe.String(row, key); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return "N/A"
}

func writeOdds(b *builder, rec *match.Record, home, away string) {
	odds := rec.Odds
	if odds == nil {
		return
	}
	b.blank()
	if ts := FormatUnixUTC(odds.LastModifiedTimestamp); ts != "" {
		b.linef("Odds (last update: %s)", ts)
	} else {
		b.line("Odds")
	}

	if mw := odds.MatchWinner; mw != nil && (mw.Home != nil || mw.Draw != nil || mw.Away != nil) {
		b.linef("1X2: %s (Home) %s | Draw %s | %s (Away) %s",
			home, FormatNumber(mw.Home), FormatNumber(mw.Draw), away, FormatNumber(mw.Away))
	}
	if ou := odds.OverUnder; ou != nil && ou.Total != nil && (ou.Over != nil || ou.Under != nil) {
		b.linef("Over/Under %s: Over %s | Under %s",
			FormatFloat(*ou.Total), FormatNumber(ou.Over), FormatNumber(ou.Under))
	}
	if hc := odds.Handicap; hc != nil && hc.Market != nil && (hc.Home != nil || hc.Away != nil) {
		b.linef("Handicap %s: %s (Home) %s | %s (Away) %s",
			*hc.Market, home, FormatNumber(hc.Home), away, FormatNumber(hc.Away))
	}
}

func writeLineups(b *builder, rec *match.Record, home, away string) {
	l := rec.Lineups
	if l == nil {
		return
	}
	b.blank()
	b.linef("Lineups: %s", CleanName(l.LineupType))

	homeForm := strings.TrimSpace(l.Formation.Home)
	awayForm := strings.TrimSpace(l.Formation.Away)
	if homeForm != "" && awayForm != "" &&
		!strings.EqualFold(homeForm, "none") && !strings.EqualFold(awayForm, "none") {
		b.linef("Formations: %s (Home) %s | %s (Away) %s", home, homeForm, away, awayForm)
	} else {
		b.line("Formations: not announced")
	}

	b.blank()
	b.linef("%s (Home) XI", home)
	for _, line := range formatXI(l.Lineups.Home) {
		b.line(line)
	}

	b.blank()
	b.linef("%s (Away) XI", away)
	for _, line := range formatXI(l.Lineups.Away) {
		b.line(line)
	}

	var extra []string
	extra = append(extra, formatSidelined(home+" (Home) sidelined", l.Sidelined.Home)...)
	extra = append(extra, formatSidelined(away+" (Away) sidelined", l.Sidelined.Away)...)
	if len(extra) > 0 {
		b.blank()
		for _, line := range extra {
			b.line(line)
		}
	}
}

var bucketOrder = []string{"GK", "DEF", "MID", "ATT", "OTHER"}

func positionBucket(pos string) string {
	p := strings.ToLower(strings.TrimSpace(pos))
	switch {
	case strings.Contains(p, "goal") || p == "gk":
		return "GK"
	case strings.Contains(p, "def") || p == "d":
		return "DEF"
	case strings.Contains(p, "mid") || p == "m":
		return "MID"
	case strings.Contains(p, "att") || strings.Contains(p, "forw") || p == "f":
		return "ATT"
	default:
		return "OTHER"
	}
}

// formatXI groups the starting eleven into fixed position buckets, keeping
// only the first 11 entries.
func formatXI(players []match.LineupPlayer) []string {
	buckets := map[string][]string{}
	xi := players
	if len(xi) > 11 {
		xi = xi[:11]
	}
	for _, lp := range xi {
		bucket := positionBucket(lp.Position)
		buckets[bucket] = append(buckets[bucket], CleanName(lp.Player.Name))
	}

	var out []string
	for _, key := range bucketOrder {
		if names := buckets[key]; len(names) > 0 {
			out = append(out, key+": "+strings.Join(names, ", "))
		}
	}
	if len(out) == 0 {
		return []string{"XI: Not available"}
	}
	return out
}

// formatSidelined drops entries whose player name resolves to the
// placeholder; an empty result suppresses the line entirely.
func formatSidelined(title string, items []match.SidelinedEntry) []string {
	if len(items) == 0 {
		return nil
	}
	var parts []string
	for _, item := range items {
		name := CleanName(item.Player.Name)
		if name == "TBD" {
			continue
		}
		var tail []string
		if item.Status != "" {
			tail = append(tail, item.Status)
		}
		if item.Desc != "" {
			tail = append(tail, item.Desc)
		}
		if len(tail) > 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)", name, strings.Join(tail, "; ")))
		} else {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []string{title + ": " + strings.Join(parts, ", ")}
}

func writeEvents(b *builder, rec *match.Record) {
	if len(rec.Events) == 0 {
		return
	}

	var goals, yellows, subs, others []match.Event
	for _, e := range rec.Events {
		switch strings.ToLower(e.Type) {
		case "goal":
			goals = append(goals, e)
		case "yellow_card":
			yellows = append(yellows, e)
		case "substitution":
			subs = append(subs, e)
		default:
			others = append(others, e)
		}
	}

	b.blank()
	b.line("Events")

	if len(goals) > 0 {
		b.line("Goals")
		for _, e := range goals {
			line := fmt.Sprintf("- %s' %s (%s)", e.Minute, playerName(e.Player), eventSide(e.Team))
			if e.AssistPlayer != nil {
				line += ", assist " + CleanName(e.AssistPlayer.Name)
			}
			b.line(line)
		}
	}
	if len(yellows) > 0 {
		b.line("Yellow cards")
		for _, e := range yellows {
			b.linef("- %s' %s (%s)", e.Minute, playerName(e.Player), eventSide(e.Team))
		}
	}
	if len(subs) > 0 {
		b.line("Substitutions")
		for _, e := range subs {
			b.linef("- %s' (%s) IN %s | OUT %s",
				e.Minute, eventSide(e.Team), playerName(e.PlayerIn), playerName(e.PlayerOut))
		}
	}
	if len(others) > 0 {
		b.line("Other")
		capped := others
		if len(capped) > maxOtherEvents {
			capped = capped[:maxOtherEvents]
		}
		for _, e := range capped {
			b.linef("- %s' %s (%s)", e.Minute, e.Type, eventSide(e.Team))
		}
	}
}

// eventSide maps anything that is not explicitly "home" to Away.
func eventSide(team string) string {
	if strings.ToLower(strings.TrimSpace(team)) == "home" {
		return "Home"
	}
	return "Away"
}

func playerName(p *match.Player) string {
	if p == nil {
		return "TBD"
	}
	return CleanName(p.Name)
}

// builder assembles the report line by line over a pooled byte buffer.
type builder struct {
	buf *bytebufferpool.ByteBuffer
}

func newBuilder() *builder {
	return &builder{buf: bytebufferpool.Get()}
}

func (b *builder) line(s string) {
	if b.buf.Len() > 0 {
		_ = b.buf.WriteByte('\n')
	}
	_, _ = b.buf.WriteString(s)
}

func (b *builder) linef(format string, args ...any) {
	b.line(fmt.Sprintf(format, args...))
}

func (b *builder) blank() {
	b.line("")
}

func (b *builder) String() string {
	return b.buf.String()
}

func (b *builder) release() {
	bytebufferpool.Put(b.buf)
}
