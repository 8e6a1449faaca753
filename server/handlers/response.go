package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"meetgrid/api"
	"meetgrid/dao/redis"
	services "meetgrid/service"
)

const (
	USER_ID_PATH_ARG   = "user_id"
	ROOM_LINK_PATH_ARG = "room_link"
	INTERVAL_QUERY_ARG = "interval"
)

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps service and collaborator errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var statusErr *api.StatusError
	switch {
	case errors.Is(err, services.ErrInvalidRanks), errors.Is(err, services.ErrNoAvailability):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, redis.ErrCacheMiss):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, api.ErrCircuitOpen):
		http.Error(w, "Room service unavailable", http.StatusServiceUnavailable)
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, api.ErrUnexpectedStatus):
		http.Error(w, "Room service error", http.StatusBadGateway)
	default:
		log.Println("Internal error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// parseInterval reads ?interval=, falling back to def when absent.
func parseInterval(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	s := r.URL.Query().Get(INTERVAL_QUERY_ARG)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || !validInterval(n) {
		http.Error(w, "Invalid argument "+INTERVAL_QUERY_ARG, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func validInterval(n int) bool {
	return n > 0 && 60%n == 0
}
