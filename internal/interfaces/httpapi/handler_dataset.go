package httpapi

import (
	"net/http"
	"strings"
)

type datasetMatchesQuery struct {
	MatchIDs       []int64 `validate:"required,min=1,max=50,dive,gt=0"`
	StandingSeason string  `validate:"max=32"`
}

type seasonMatchesQuery struct {
	LeagueID     int64  `validate:"required,gt=0"`
	Season       string `validate:"max=32"`
	OnlyFinished bool
	Limit        int `validate:"gte=0,lte=1000"`
}

func (h *Handler) DatasetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DatasetMatch")
	defer span.End()

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season := strings.TrimSpace(r.URL.Query().Get("standing_season"))

	dataset, err := h.matchService.Dataset(ctx, matchID, season)
	if err != nil {
		h.logger.ErrorContext(ctx, "build match dataset failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dataset)
}

func (h *Handler) DatasetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DatasetMatches")
	defer span.End()

	matchIDs, err := queryInt64List(r, "match_ids")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := datasetMatchesQuery{
		MatchIDs:       matchIDs,
		StandingSeason: strings.TrimSpace(r.URL.Query().Get("standing_season")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	datasets, err := h.matchService.DatasetMany(ctx, query.MatchIDs, query.StandingSeason)
	if err != nil {
		h.logger.ErrorContext(ctx, "build match datasets failed", "count", len(query.MatchIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, datasets)
}

func (h *Handler) DatasetUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DatasetUpcoming")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.upcomingService.Dataset(ctx, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "build upcoming dataset failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, groups)
}

func (h *Handler) DatasetSeasonMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DatasetSeasonMatches")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	onlyFinished, err := queryBool(r, "only_finished")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt64(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := seasonMatchesQuery{
		LeagueID:     leagueID,
		Season:       strings.TrimSpace(r.URL.Query().Get("season")),
		OnlyFinished: onlyFinished,
		Limit:        int(limit),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.matchService.SeasonMatches(ctx, query.LeagueID, query.Season, query.OnlyFinished, query.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "build season matches failed", "league_id", query.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
