package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /healthz", handler.Health)
}

func registerRawRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /raw/match/{matchID}", handler.RawMatch)
	mux.HandleFunc("GET /raw/match-preview/{matchID}", handler.RawMatchPreview)
	mux.HandleFunc("GET /raw/standing", handler.RawStanding)
	mux.HandleFunc("GET /raw/h2h", handler.RawHeadToHead)
	mux.HandleFunc("GET /raw/upcoming", handler.RawUpcoming)
	mux.HandleFunc("GET /raw/matches", handler.RawMatches)
}

func registerDatasetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /dataset/match/{matchID}", handler.DatasetMatch)
	mux.HandleFunc("GET /dataset/matches", handler.DatasetMatches)
	mux.HandleFunc("GET /dataset/upcoming", handler.DatasetUpcoming)
	mux.HandleFunc("GET /dataset/season-matches", handler.DatasetSeasonMatches)
}
