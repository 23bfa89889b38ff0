package usecase

import (
	"context"
	"fmt"
)

// RawDataService exposes the upstream endpoints as verbatim passthroughs
// for the /raw facade. No normalization happens here.
type RawDataService struct {
	data SportsData
}

func NewRawDataService(data SportsData) *RawDataService {
	return &RawDataService{data: data}
}

func (s *RawDataService) Match(ctx context.Context, matchID int64) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.Match")
	defer span.End()

	if matchID <= 0 {
		return RawDocument{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	return s.data.Match(ctx, matchID)
}

func (s *RawDataService) MatchPreview(ctx context.Context, matchID int64) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.MatchPreview")
	defer span.End()

	if matchID <= 0 {
		return RawDocument{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}
	return s.data.MatchPreview(ctx, matchID)
}

func (s *RawDataService) Standing(ctx context.Context, leagueID int64, season string) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.Standing")
	defer span.End()

	if leagueID <= 0 {
		return RawDocument{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	return s.data.Standing(ctx, leagueID, season)
}

func (s *RawDataService) HeadToHead(ctx context.Context, team1ID, team2ID int64) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.HeadToHead")
	defer span.End()

	if team1ID <= 0 || team2ID <= 0 {
		return RawDocument{}, fmt.Errorf("%w: both team ids must be positive", ErrInvalidInput)
	}
	return s.data.HeadToHead(ctx, team1ID, team2ID)
}

func (s *RawDataService) Upcoming(ctx context.Context) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.Upcoming")
	defer span.End()

	return s.data.UpcomingPreviews(ctx)
}

func (s *RawDataService) Matches(ctx context.Context, leagueID int64, season, date string) (RawDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "RawDataService.Matches")
	defer span.End()

	if leagueID <= 0 {
		return RawDocument{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	return s.data.MatchesByLeague(ctx, leagueID, season, date)
}
