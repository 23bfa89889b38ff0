// Package upcoming flattens the upstream match-preview feed into
// league-grouped, deterministically ordered listings with pagination and
// inline action buttons.
package upcoming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/prasetyowira/matchday/internal/platform/jsonprobe"
)

// DefaultAllowedLeagueIDs is the fixed surface set; an environment override
// replaces it wholesale.
var DefaultAllowedLeagueIDs = []int64{228, 326, 310, 322, 323, 198, 235, 241, 253, 297, 299, 168}

// Match is a lightweight summary for the upcoming list.
type Match struct {
	MatchID  int64  `json:"match_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	HomeID   int64  `json:"home_id"`
	AwayID   int64  `json:"away_id"`
	HomeName string `json:"home_name"`
	AwayName string `json:"away_name"`
}

type LeagueGroup struct {
	LeagueID    int64   `json:"league_id"`
	LeagueName  string  `json:"league_name"`
	CountryName string  `json:"country_name"`
	Matches     []Match `json:"matches"`
}

// Button is one per-match action reference carried alongside a batch.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// Batch is one message-sized page of a league listing with its button rows.
type Batch struct {
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons"`
}

// Aggregate filters the raw feed to the allow-list and groups matches by
// league. Matches inside a group sort by the plain (date, time, match_id)
// string key; groups sort by ascending league id. The lexicographic date
// ordering assumes the upstream emits one consistent date format.
// maxPerLeague caps each group when positive.
func Aggregate(payload map[string]any, allowed []int64, maxPerLeague int) []LeagueGroup {
	allowSet := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		allowSet[id] = struct{}{}
	}

	results, ok := jsonprobe.Slice(payload, "results")
	if !ok {
		return nil
	}

	groups := map[int64]*LeagueGroup{}
	for _, block := range results {
		blockMap, ok := block.(map[string]any)
		if !ok {
			continue
		}
		leagueID, ok := jsonprobe.Int(blockMap, "league_id")
		if !ok {
			continue
		}
		if _, allowed := allowSet[leagueID]; !allowed {
			continue
		}

		previews, ok := jsonprobe.Slice(blockMap, "match_previews")
		if !ok {
			continue
		}

		group := groups[leagueID]
		if group == nil {
			group = &LeagueGroup{
				LeagueID:    leagueID,
				LeagueName:  jsonprobe.StringOr(blockMap, "", "league_name"),
				CountryName: jsonprobe.StringOr(blockMap, "", "country", "name"),
			}
			groups[leagueID] = group
		}

		for _, preview := range previews {
			previewMap, ok := preview.(map[string]any)
			if !ok {
				continue
			}
			matchID, ok := jsonprobe.Int(previewMap, "id")
			if !ok {
				continue
			}
			m := Match{
				MatchID:  matchID,
				Date:     jsonprobe.StringOr(previewMap, "", "date"),
				Time:     jsonprobe.StringOr(previewMap, "", "time"),
				HomeName: jsonprobe.StringOr(previewMap, "TBD", "teams", "home", "name"),
				AwayName: jsonprobe.StringOr(previewMap, "TBD", "teams", "away", "name"),
			}
			if id, ok := jsonprobe.Int(previewMap, "teams", "home", "id"); ok {
				m.HomeID = id
			}
			if id, ok := jsonprobe.Int(previewMap, "teams", "away", "id"); ok {
				m.AwayID = id
			}
			group.Matches = append(group.Matches, m)
		}
	}

	ordered := make([]LeagueGroup, 0, len(groups))
	for _, group := range groups {
		if len(group.Matches) == 0 {
			continue
		}
		sort.SliceStable(group.Matches, func(i, j int) bool {
			a, b := group.Matches[i], group.Matches[j]
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			if a.Time != b.Time {
				return a.Time < b.Time
			}
			return a.MatchID < b.MatchID
		})
		if maxPerLeague > 0 && len(group.Matches) > maxPerLeague {
			group.Matches = group.Matches[:maxPerLeague]
		}
		ordered = append(ordered, *group)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LeagueID < ordered[j].LeagueID
	})
	return ordered
}

// Paginate splits a league group into message-sized batches of
// matchesPerPage entries, each with its own header and button rows of
// buttonsPerRow. Part numbering appears only when the group spans more than
// one batch.
func Paginate(group LeagueGroup, matchesPerPage, buttonsPerRow int) []Batch {
	if len(group.Matches) == 0 {
		return nil
	}
	if matchesPerPage < 1 {
		matchesPerPage = 1
	}
	if buttonsPerRow < 1 {
		buttonsPerRow = 1
	}

	total := (len(group.Matches) + matchesPerPage - 1) / matchesPerPage
	batches := make([]Batch, 0, total)
	for part := 0; part < total; part++ {
		start := part * matchesPerPage
		end := start + matchesPerPage
		if end > len(group.Matches) {
			end = len(group.Matches)
		}
		page := group.Matches[start:end]
		batches = append(batches, Batch{
			Text:    renderBatch(group, page, part+1, total),
			Buttons: buttonRows(page, buttonsPerRow),
		})
	}
	return batches
}

func renderBatch(group LeagueGroup, page []Match, part, total int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "%s (%s) | League ID: %d", group.LeagueName, group.CountryName, group.LeagueID)
	if total > 1 {
		_, _ = fmt.Fprintf(buf, " (part %d/%d)", part, total)
	}
	_ = buf.WriteByte('\n')

	for _, m := range page {
		_, _ = fmt.Fprintf(buf, "\n• %s (Home) vs %s (Away) | %s %s | ID: %d",
			m.HomeName, m.AwayName, orTBD(m.Date), orTBD(m.Time), m.MatchID)
	}
	return buf.String()
}

func buttonRows(page []Match, buttonsPerRow int) [][]Button {
	buttons := make([]Button, 0, len(page))
	for _, m := range page {
		buttons = append(buttons, Button{
			Label: fmt.Sprintf("Report %d", m.MatchID),
			Data:  fmt.Sprintf("r:%d", m.MatchID),
		})
	}
	var rows [][]Button
	for start := 0; start < len(buttons); start += buttonsPerRow {
		end := start + buttonsPerRow
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[start:end])
	}
	return rows
}

func orTBD(s string) string {
	if strings.TrimSpace(s) == "" {
		return "TBD"
	}
	return s
}
