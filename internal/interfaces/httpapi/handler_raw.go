package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) RawMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawMatch")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.rawService.Match(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw match fetch failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

func (h *Handler) RawMatchPreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawMatchPreview")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.rawService.MatchPreview(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw preview fetch failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

func (h *Handler) RawStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawStanding")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season := strings.TrimSpace(r.URL.Query().Get("season"))

	doc, err := h.rawService.Standing(ctx, leagueID, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw standing fetch failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

func (h *Handler) RawHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawHeadToHead")
	defer span.End()

	team1ID, err := queryInt64(r, "team_1_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	team2ID, err := queryInt64(r, "team_2_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.rawService.HeadToHead(ctx, team1ID, team2ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw h2h fetch failed",
			"team_1_id", team1ID, "team_2_id", team2ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

func (h *Handler) RawUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawUpcoming")
	defer span.End()

	doc, err := h.rawService.Upcoming(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw upcoming fetch failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

func (h *Handler) RawMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RawMatches")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := rawMatchesQuery{
		LeagueID: leagueID,
		Season:   strings.TrimSpace(r.URL.Query().Get("season")),
		Date:     strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := h.rawService.Matches(ctx, query.LeagueID, query.Season, query.Date)
	if err != nil {
		h.logger.ErrorContext(ctx, "raw matches fetch failed", "league_id", query.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRaw(ctx, w, doc.Raw)
}

type rawMatchesQuery struct {
	LeagueID int64  `validate:"required,gt=0"`
	Season   string `validate:"max=32"`
	Date     string `validate:"max=16"`
}
