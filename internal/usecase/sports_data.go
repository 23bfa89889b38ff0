package usecase

import "context"

// RawDocument is one upstream response held in both representations: the
// verbatim bytes for passthrough endpoints and the decoded tree for probing.
type RawDocument struct {
	Raw  []byte
	Data map[string]any
}

// SportsData is the upstream football-data provider. One method per endpoint,
// one attempt per call; the caller decides whether a failure is fatal or just
// a missing enrichment.
type SportsData interface {
	Match(ctx context.Context, matchID int64) (RawDocument, error)
	MatchPreview(ctx context.Context, matchID int64) (RawDocument, error)
	Standing(ctx context.Context, leagueID int64, season string) (RawDocument, error)
	HeadToHead(ctx context.Context, team1ID, team2ID int64) (RawDocument, error)
	UpcomingPreviews(ctx context.Context) (RawDocument, error)
	MatchesByLeague(ctx context.Context, leagueID int64, season, date string) (RawDocument, error)
}
