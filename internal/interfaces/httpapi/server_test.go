package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/prasetyowira/matchday/external/soccerdata"
	"github.com/prasetyowira/matchday/internal/platform/logging"
	"github.com/prasetyowira/matchday/internal/usecase"
)

type stubSportsData struct {
	matchDoc    usecase.RawDocument
	matchErr    error
	upcomingDoc usecase.RawDocument
}

func (s *stubSportsData) Match(ctx context.Context, matchID int64) (usecase.RawDocument, error) {
	return s.matchDoc, s.matchErr
}

func (s *stubSportsData) MatchPreview(ctx context.Context, matchID int64) (usecase.RawDocument, error) {
	return usecase.RawDocument{}, nil
}

func (s *stubSportsData) Standing(ctx context.Context, leagueID int64, season string) (usecase.RawDocument, error) {
	return usecase.RawDocument{Data: map[string]any{"stage": []any{}}}, nil
}

func (s *stubSportsData) HeadToHead(ctx context.Context, team1ID, team2ID int64) (usecase.RawDocument, error) {
	return usecase.RawDocument{Data: map[string]any{}}, nil
}

func (s *stubSportsData) UpcomingPreviews(ctx context.Context) (usecase.RawDocument, error) {
	return s.upcomingDoc, nil
}

func (s *stubSportsData) MatchesByLeague(ctx context.Context, leagueID int64, season, date string) (usecase.RawDocument, error) {
	return usecase.RawDocument{Data: map[string]any{"results": []any{}}}, nil
}

func validMatchDoc() usecase.RawDocument {
	raw := `{
		"id": 55, "status": "finished",
		"teams": {"home": {"id": 1, "name": "Ajax"}, "away": {"id": 2, "name": "PSV"}},
		"league": {"id": 310, "name": "Eredivisie"},
		"goals": {
			"home_ht_goals": 1, "away_ht_goals": 0,
			"home_ft_goals": 2, "away_ft_goals": 1,
			"home_et_goals": 0, "away_et_goals": 0,
			"home_pen_goals": 0, "away_pen_goals": 0
		}
	}`
	var data map[string]any
	_ = sonic.Unmarshal([]byte(raw), &data)
	return usecase.RawDocument{Raw: []byte(raw), Data: data}
}

func newTestRouter(data usecase.SportsData) http.Handler {
	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewRawDataService(data),
		usecase.NewMatchService(data, logger),
		usecase.NewUpcomingService(data, nil, 0, logger),
		nil,
	)
	return NewRouter(handler, nil)
}

func doRequest(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(&stubSportsData{})

	rec := doRequest(t, router, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}

func TestRouterRawMatchPassthrough(t *testing.T) {
	doc := validMatchDoc()
	router := newTestRouter(&stubSportsData{matchDoc: doc})

	rec := doRequest(t, router, "/raw/match/55")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != string(doc.Raw) {
		t.Fatalf("raw endpoint must return verbatim upstream bytes")
	}
}

func TestRouterRawMatchInvalidID(t *testing.T) {
	router := newTestRouter(&stubSportsData{})

	rec := doRequest(t, router, "/raw/match/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouterUpstreamErrorIs502(t *testing.T) {
	router := newTestRouter(&stubSportsData{
		matchErr: &soccerdata.StatusError{StatusCode: 403, Detail: "subscription expired"},
	})

	rec := doRequest(t, router, "/raw/match/55")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "subscription expired") {
		t.Fatalf("error detail must surface: %s", rec.Body.String())
	}
}

func TestRouterDatasetMatch(t *testing.T) {
	router := newTestRouter(&stubSportsData{matchDoc: validMatchDoc()})

	rec := doRequest(t, router, "/dataset/match/55")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal dataset body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data envelope: %s", rec.Body.String())
	}
	features, ok := data["features"].(map[string]any)
	if !ok {
		t.Fatalf("expected features in dataset: %s", rec.Body.String())
	}
	if features["total_goals"] != float64(3) {
		t.Fatalf("expected total_goals label 3, got %v", features["total_goals"])
	}
}

func TestRouterDatasetMatchesRequiresIDs(t *testing.T) {
	router := newTestRouter(&stubSportsData{})

	rec := doRequest(t, router, "/dataset/matches")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing match_ids, got %d", rec.Code)
	}
}

func TestRouterDatasetUpcoming(t *testing.T) {
	router := newTestRouter(&stubSportsData{
		upcomingDoc: usecase.RawDocument{Data: map[string]any{"results": []any{
			map[string]any{
				"league_id":   float64(228),
				"league_name": "Premier League",
				"country":     map[string]any{"name": "England"},
				"match_previews": []any{
					map[string]any{"id": float64(7), "date": "01/05/2024", "time": "18:00"},
				},
			},
		}}},
	})

	rec := doRequest(t, router, "/dataset/upcoming?league_id=228")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"league_id":228`) {
		t.Fatalf("expected league group in body: %s", rec.Body.String())
	}
}
