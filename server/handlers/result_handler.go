package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	services "meetgrid/service"
	"meetgrid/util"
)

type ResultHandler struct {
	resultService *services.ResultService
}

func NewResultHandler(resultService *services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetResult handles GET /v1/rooms/{room_link}/result
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	roomLink := mux.Vars(r)[ROOM_LINK_PATH_ARG]
	result, err := h.resultService.GetResult(r.Context(), roomLink)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetHeatmapPage handles GET /v1/rooms/{room_link}/heatmap.html
func (h *ResultHandler) GetHeatmapPage(w http.ResponseWriter, r *http.Request) {
	roomLink := mux.Vars(r)[ROOM_LINK_PATH_ARG]
	hm, err := h.resultService.GetHeatmap(r.Context(), roomLink)
	if err != nil {
		writeError(w, err)
		return
	}

	// Render into a buffer so a failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := util.RenderHeatmap(&buf, "Availability "+roomLink, *hm); err != nil {
		log.Printf("[ResultHandler] Failed to render heatmap for room=%s: %v", roomLink, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
