package usecase

import (
	"context"
	"fmt"

	"github.com/prasetyowira/matchday/internal/domain/feature"
	"github.com/prasetyowira/matchday/internal/domain/match"
	"github.com/prasetyowira/matchday/internal/domain/report"
	"github.com/prasetyowira/matchday/internal/platform/logging"
)

// MatchDataset pairs the normalized record with its derived features and
// the rendered text report.
type MatchDataset struct {
	MatchID  int64          `json:"match_id"`
	Record   *match.Record  `json:"record"`
	Features feature.Bundle `json:"features"`
	Report   string         `json:"report"`
}

// SeasonMatches is the raw season listing: the id index plus the untouched
// upstream match objects.
type SeasonMatches struct {
	MatchIDs []int64          `json:"match_ids"`
	Matches  []map[string]any `json:"matches"`
}

// MatchService builds complete match records. One primary fetch plus up to
// three best-effort enrichment fetches, fully sequential; enrichment
// failures degrade the record, never the request.
type MatchService struct {
	data   SportsData
	logger *logging.Logger
}

func NewMatchService(data SportsData, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{data: data, logger: logger}
}

// Complete fetches and normalizes a match, then attaches preview, standing
// and head-to-head enrichment when available.
func (s *MatchService) Complete(ctx context.Context, matchID int64, standingSeason string) (*match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Complete")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	doc, err := s.data.Match(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("fetch match %d: %w", matchID, err)
	}
	rec, err := match.NormalizeMap(doc.Data)
	if err != nil {
		return nil, err
	}

	if rec.HasPreviewFlag {
		if preview, err := s.data.MatchPreview(ctx, matchID); err != nil {
			s.logger.WarnContext(ctx, "match preview unavailable", "match_id", matchID, "error", err)
		} else {
			match.AttachPreview(rec, preview.Data)
		}
	}

	if rec.League.ID > 0 {
		if standing, err := s.data.Standing(ctx, rec.League.ID, standingSeason); err != nil {
			s.logger.WarnContext(ctx, "standing unavailable", "league_id", rec.League.ID, "error", err)
		} else {
			rec.Standing = standing.Data
		}
	}

	if rec.Home.ID > 0 && rec.Away.ID > 0 && rec.Home.ID != rec.Away.ID {
		if h2h, err := s.data.HeadToHead(ctx, rec.Home.ID, rec.Away.ID); err != nil {
			s.logger.WarnContext(ctx, "head-to-head unavailable",
				"home_id", rec.Home.ID, "away_id", rec.Away.ID, "error", err)
		} else {
			rec.H2H = h2h.Data
		}
	}

	return rec, nil
}

// ReportText renders the full text report for a match.
func (s *MatchService) ReportText(ctx context.Context, matchID int64) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ReportText")
	defer span.End()

	rec, err := s.Complete(ctx, matchID, "")
	if err != nil {
		return "", err
	}
	return report.Render(rec), nil
}

// Dataset builds the record plus derived-feature bundle for one match.
func (s *MatchService) Dataset(ctx context.Context, matchID int64, standingSeason string) (MatchDataset, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Dataset")
	defer span.End()

	rec, err := s.Complete(ctx, matchID, standingSeason)
	if err != nil {
		return MatchDataset{}, err
	}
	return MatchDataset{
		MatchID:  rec.ID,
		Record:   rec,
		Features: feature.Derive(rec),
		Report:   report.Render(rec),
	}, nil
}

// DatasetMany builds datasets for a list of match ids, sequentially. The
// first failed primary fetch aborts the whole batch.
func (s *MatchService) DatasetMany(ctx context.Context, matchIDs []int64, standingSeason string) ([]MatchDataset, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.DatasetMany")
	defer span.End()

	if len(matchIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one match id is required", ErrInvalidInput)
	}

	items := make([]MatchDataset, 0, len(matchIDs))
	for _, id := range matchIDs {
		item, err := s.Dataset(ctx, id, standingSeason)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// SeasonMatches lists a league's season matches as raw objects plus an id
// index, optionally keeping only finished matches and capping the count.
func (s *MatchService) SeasonMatches(ctx context.Context, leagueID int64, season string, onlyFinished bool, limit int) (SeasonMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SeasonMatches")
	defer span.End()

	if leagueID <= 0 {
		return SeasonMatches{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	doc, err := s.data.MatchesByLeague(ctx, leagueID, season, "")
	if err != nil {
		return SeasonMatches{}, fmt.Errorf("fetch season matches for league %d: %w", leagueID, err)
	}

	out := SeasonMatches{}
	for _, m := range collectMatchObjects(doc.Data) {
		if onlyFinished && !isFinishedStatus(m) {
			continue
		}
		id, ok := matchObjectID(m)
		if !ok {
			continue
		}
		out.MatchIDs = append(out.MatchIDs, id)
		out.Matches = append(out.Matches, m)
		if limit > 0 && len(out.Matches) >= limit {
			break
		}
	}
	return out, nil
}
