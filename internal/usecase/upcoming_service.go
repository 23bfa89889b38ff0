package usecase

import (
	"context"
	"fmt"

	"github.com/prasetyowira/matchday/internal/domain/upcoming"
	"github.com/prasetyowira/matchday/internal/platform/logging"
)

// UpcomingService aggregates the upcoming-preview feed into allow-listed
// league groups.
type UpcomingService struct {
	data         SportsData
	allowed      []int64
	maxPerLeague int
	logger       *logging.Logger
}

func NewUpcomingService(data SportsData, allowed []int64, maxPerLeague int, logger *logging.Logger) *UpcomingService {
	if len(allowed) == 0 {
		allowed = upcoming.DefaultAllowedLeagueIDs
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &UpcomingService{
		data:         data,
		allowed:      allowed,
		maxPerLeague: maxPerLeague,
		logger:       logger,
	}
}

// Groups fetches the upcoming feed and returns the ordered league groups.
func (s *UpcomingService) Groups(ctx context.Context) ([]upcoming.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "UpcomingService.Groups")
	defer span.End()

	doc, err := s.data.UpcomingPreviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch upcoming previews: %w", err)
	}
	return upcoming.Aggregate(doc.Data, s.allowed, s.maxPerLeague), nil
}

// Dataset is Groups optionally narrowed to a single allow-listed league.
// A league outside the allow-list yields an empty result, not an error.
func (s *UpcomingService) Dataset(ctx context.Context, leagueID int64) ([]upcoming.LeagueGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "UpcomingService.Dataset")
	defer span.End()

	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if leagueID <= 0 {
		return groups, nil
	}
	for _, group := range groups {
		if group.LeagueID == leagueID {
			return []upcoming.LeagueGroup{group}, nil
		}
	}
	return nil, nil
}
