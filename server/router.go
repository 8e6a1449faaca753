package server

import (
	"meetgrid/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	gridHandler         *handlers.GridHandler
	availabilityHandler *handlers.AvailabilityHandler
	resultHandler       *handlers.ResultHandler
	router              *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	gridHandler *handlers.GridHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	resultHandler *handlers.ResultHandler,
	router *mux.Router) *Router {
	return &Router{
		gridHandler:         gridHandler,
		availabilityHandler: availabilityHandler,
		resultHandler:       resultHandler,
		router:              router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestIDMiddleware, LoggingMiddleware)

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")

	r.router.HandleFunc("/v1/grid/spans", r.gridHandler.MergePoints).Methods("POST")
	r.router.HandleFunc("/v1/grid/points", r.gridHandler.ExpandSpans).Methods("POST")
	r.router.HandleFunc("/v1/grid/selection", r.gridHandler.ApplySelection).Methods("POST")

	// expects ?interval={minutes} on GET, defaults to the configured grid interval
	r.router.HandleFunc("/v1/users/{user_id}/availability", r.availabilityHandler.Submit).Methods("POST")
	r.router.HandleFunc("/v1/users/{user_id}/availability", r.availabilityHandler.Load).Methods("GET")
	r.router.HandleFunc("/v1/users/{user_id}/draft", r.availabilityHandler.GetDraft).Methods("GET")
	r.router.HandleFunc("/v1/users/{user_id}/draft", r.availabilityHandler.PutDraft).Methods("PUT")
	r.router.HandleFunc("/v1/users/{user_id}", r.availabilityHandler.Leave).Methods("DELETE")
	r.router.HandleFunc("/v1/drafts", r.availabilityHandler.ListDrafts).Methods("GET")
	r.router.HandleFunc("/v1/rank-options", r.availabilityHandler.RankOptions).Methods("POST")

	r.router.HandleFunc("/v1/rooms/{room_link}/result", r.resultHandler.GetResult).Methods("GET")
	r.router.HandleFunc("/v1/rooms/{room_link}/heatmap.html", r.resultHandler.GetHeatmapPage).Methods("GET")
}
