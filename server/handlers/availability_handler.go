package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"meetgrid/models/grid"
	services "meetgrid/service"
)

// SubmitRequest is the body of POST /v1/users/{user_id}/availability.
type SubmitRequest struct {
	Spans []grid.TimeSpan `json:"spans"`
	Ranks grid.RankSpans  `json:"ranks"`
}

// SubmitResponse echoes the matrix registered with the room service.
type SubmitResponse struct {
	UserID       string              `json:"user_id"`
	Availability grid.PriorityMatrix `json:"availability"`
}

// DraftRequest is the body of PUT /v1/users/{user_id}/draft.
type DraftRequest struct {
	Interval int             `json:"interval"`
	Spans    []grid.TimeSpan `json:"spans"`
	Ranks    grid.RankSpans  `json:"ranks"`
}

// RankOptionsRequest is the body of POST /v1/rank-options.
type RankOptionsRequest struct {
	Spans []grid.TimeSpan `json:"spans"`
}

type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
	defaultInterval     int
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService, defaultInterval int) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		defaultInterval:     defaultInterval,
	}
}

// Submit handles POST /v1/users/{user_id}/availability
func (h *AvailabilityHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[USER_ID_PATH_ARG]
	var req SubmitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	matrix, err := h.availabilityService.Submit(r.Context(), userID, req.Spans, req.Ranks)
	if err != nil {
		log.Printf("[AvailabilityHandler] Submit failed for user_id=%s: %v", userID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitResponse{UserID: userID, Availability: matrix})
}

// Load handles GET /v1/users/{user_id}/availability?interval={minutes}
func (h *AvailabilityHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[USER_ID_PATH_ARG]
	interval, ok := parseInterval(w, r, h.defaultInterval)
	if !ok {
		return
	}

	availability, err := h.availabilityService.Load(r.Context(), userID, interval)
	if err != nil {
		log.Printf("[AvailabilityHandler] Load failed for user_id=%s: %v", userID, err)
		writeError(w, err)
		return
	}
	availability.Spans = orEmpty(availability.Spans)
	availability.Points = orEmpty(availability.Points)
	writeJSON(w, http.StatusOK, availability)
}

// GetDraft handles GET /v1/users/{user_id}/draft
func (h *AvailabilityHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[USER_ID_PATH_ARG]
	draft, err := h.availabilityService.LoadDraft(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// PutDraft handles PUT /v1/users/{user_id}/draft
func (h *AvailabilityHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[USER_ID_PATH_ARG]
	var req DraftRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Interval != 0 && !validInterval(req.Interval) {
		http.Error(w, "Invalid argument "+INTERVAL_QUERY_ARG, http.StatusBadRequest)
		return
	}

	draft, err := h.availabilityService.SaveDraft(r.Context(), grid.Draft{
		UserID:   userID,
		Interval: req.Interval,
		Spans:    req.Spans,
		Ranks:    req.Ranks,
	})
	if err != nil {
		log.Printf("[AvailabilityHandler] SaveDraft failed for user_id=%s: %v", userID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// PendingDraftsResponse is returned by GET /v1/drafts.
type PendingDraftsResponse struct {
	UserIDs []string `json:"user_ids"`
}

// ListDrafts handles GET /v1/drafts
func (h *AvailabilityHandler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	ids, err := h.availabilityService.PendingDrafts(r.Context())
	if err != nil {
		log.Printf("[AvailabilityHandler] ListDrafts failed: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PendingDraftsResponse{UserIDs: ids})
}

// Leave handles DELETE /v1/users/{user_id}
func (h *AvailabilityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)[USER_ID_PATH_ARG]
	if err := h.availabilityService.Leave(r.Context(), userID); err != nil {
		log.Printf("[AvailabilityHandler] Leave failed for user_id=%s: %v", userID, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RankOptions handles POST /v1/rank-options
func (h *AvailabilityHandler) RankOptions(w http.ResponseWriter, r *http.Request) {
	var req RankOptionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, services.RankOptions(req.Spans))
}
