package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetgrid/api/roomapi"
	"meetgrid/dao/redis"
	"meetgrid/db"
	"meetgrid/server/handlers"
	services "meetgrid/service"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	root, err := filepath.Abs("..")
	require.NoError(t, err)
	t.Setenv("PROJECT_ROOT", root)

	roomAPI := roomapi.NewRoomApiClientMock()
	draftDao := redis.NewRedisDraftDAO(db.NewMockRedisClient(), time.Hour)
	availabilityService := services.NewAvailabilityService(roomAPI, draftDao, 60)
	resultService := services.NewResultService(roomAPI)

	muxRouter := mux.NewRouter()
	NewRouter(
		handlers.NewGridHandler(60),
		handlers.NewAvailabilityHandler(availabilityService, 60),
		handlers.NewResultHandler(resultService),
		muxRouter,
	).RegisterRoutes()
	return muxRouter
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		statusCode int
		response   string
	}{
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status":"pong"}`,
		},
		{
			name:       "Merge Points",
			method:     "POST",
			path:       "/v1/grid/spans",
			body:       `{"interval":60,"points":[{"day":"Mon","time":"10:00"},{"day":"Mon","time":"09:00"}]}`,
			statusCode: http.StatusOK,
			response: `{"interval":60,"spans":[{"day":"Mon","startTime":"09:00","endTime":"11:00"}],` +
				`"points":[{"day":"Mon","time":"09:00"},{"day":"Mon","time":"10:00"}]}`,
		},
		{
			name:       "Expand Spans Empty",
			method:     "POST",
			path:       "/v1/grid/points",
			body:       `{"spans":[]}`,
			statusCode: http.StatusOK,
			response:   `{"interval":60,"spans":[],"points":[]}`,
		},
		{
			name:       "Bad Interval",
			method:     "POST",
			path:       "/v1/grid/points",
			body:       `{"interval":7,"spans":[]}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Bad Body",
			method:     "POST",
			path:       "/v1/grid/spans",
			body:       `{"points":`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Missing Draft",
			method:     "GET",
			path:       "/v1/users/nobody/draft",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Empty Submission",
			method:     "POST",
			path:       "/v1/users/u1/availability",
			body:       `{"spans":[]}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "Wrong Method",
			method:     "DELETE",
			path:       "/v1/grid/spans",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := do(router, test.method, test.path, test.body)

			assert.Equal(t, test.statusCode, rr.Code, rr.Body.String())
			if test.response != "" {
				assert.JSONEq(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_Selection(t *testing.T) {
	router := newTestRouter(t)
	body := `{"interval":60,"spans":[{"day":"Tue","startTime":"09:00","endTime":"12:00"}],"events":[
		{"op":"press","point":{"day":"Tue","time":"10:00"}},
		{"op":"enter","point":{"day":"Tue","time":"11:00"}},
		{"op":"release"},
		{"op":"toggle","point":{"day":"Wed","time":"08:00"}}
	]}`

	rr := do(router, "POST", "/v1/grid/selection", body)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"interval":60,
		"spans":[{"day":"Tue","startTime":"09:00","endTime":"10:00"},{"day":"Wed","startTime":"08:00","endTime":"09:00"}],
		"points":[{"day":"Tue","time":"09:00"},{"day":"Wed","time":"08:00"}]}`, rr.Body.String())

	rr = do(router, "POST", "/v1/grid/selection", `{"events":[{"op":"press"}]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = do(router, "POST", "/v1/grid/selection", `{"events":[{"op":"jump"}]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = do(router, "POST", "/v1/grid/selection", `{"events":[{"op":"release"},{"op":"toggle"}]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Missing point at index 1")
	rr = do(router, "POST", "/v1/grid/selection",
		`{"spans":[{"day":"Mon","startTime":"09:00","endTime":"10:00"}],"events":[{"op":"clear"}]}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"interval":60,"spans":[],"points":[]}`, rr.Body.String())
}

func TestRouter_SubmitThenLoad(t *testing.T) {
	router := newTestRouter(t)
	submit := `{"spans":[{"day":"Mon","startTime":"09:00","endTime":"11:00"},{"day":"Fri","startTime":"19:00","endTime":"20:00"}],
		"ranks":{"rank1":{"day":"Fri","startTime":"19:00","endTime":"20:00"}}}`

	rr := do(router, "POST", "/v1/users/u1/availability", submit)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var submitted handlers.SubmitResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &submitted))
	assert.Equal(t, 1, submitted.Availability[0][9])
	assert.Equal(t, 4, submitted.Availability[4][19])

	rr = do(router, "GET", "/v1/users/u1/availability?interval=30", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var loaded services.Availability
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loaded))
	assert.Equal(t, 30, loaded.Interval)
	assert.Len(t, loaded.Spans, 2)
	assert.Len(t, loaded.Points, 6)
	require.NotNil(t, loaded.Ranks.Rank1)
	assert.Equal(t, "Fri", loaded.Ranks.Rank1.Day)

	rr = do(router, "GET", "/v1/users/u1/availability?interval=abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(router, "DELETE", "/v1/users/u1", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRouter_InvalidRanks(t *testing.T) {
	router := newTestRouter(t)
	body := `{"spans":[{"day":"Mon","startTime":"09:00","endTime":"10:00"}],
		"ranks":{"rank2":{"day":"Mon","startTime":"09:00","endTime":"10:00"}}}`

	rr := do(router, "POST", "/v1/users/u1/availability", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid rank selection")
}

func TestRouter_DraftRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "PUT", "/v1/users/u2/draft",
		`{"spans":[{"day":"Sat","startTime":"10:00","endTime":"11:00"},{"day":"Sat","startTime":"11:00","endTime":"12:00"}]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(router, "GET", "/v1/users/u2/draft", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var draft struct {
		UserID string `json:"user_id"`
		Spans  []struct {
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		} `json:"spans"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draft))
	assert.Equal(t, "u2", draft.UserID)
	require.Len(t, draft.Spans, 1)
	assert.Equal(t, "10:00", draft.Spans[0].StartTime)
	assert.Equal(t, "12:00", draft.Spans[0].EndTime)
}

func TestRouter_ListDrafts(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "GET", "/v1/drafts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user_ids":[]}`, rr.Body.String())

	rr = do(router, "PUT", "/v1/users/u3/draft", `{"spans":[]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = do(router, "GET", "/v1/drafts", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user_ids":["u3"]}`, rr.Body.String())

	rr = do(router, "POST", "/v1/users/u3/availability", `{"spans":[{"day":"Mon","startTime":"09:00","endTime":"10:00"}]}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = do(router, "GET", "/v1/drafts", "")
	assert.JSONEq(t, `{"user_ids":[]}`, rr.Body.String())
}

func TestRouter_RankOptions(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "POST", "/v1/rank-options",
		`{"spans":[{"day":"Sun","startTime":"09:00","endTime":"10:00"},{"day":"Mon","startTime":"09:00","endTime":"10:00"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var options []services.RankOption
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &options))
	require.Len(t, options, 2)
	assert.Equal(t, "Mon 09:00~10:00", options[0].Label)
}

func TestRouter_RoomResult(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "GET", "/v1/rooms/demo-room/result", "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var result services.RoomResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "demo-room", result.Room.RoomLink)
	assert.Equal(t, 3, result.NumUsers)
	require.Len(t, result.Windows, 5)
	first := result.Windows[0]
	assert.Equal(t, [4]int{0, 10, 11, 1}, [4]int{first.Day, first.StartHour, first.EndHour, first.Rank})
	assert.Empty(t, first.UnavailableUsers)
	carol := result.Windows[2]
	assert.Equal(t, [4]int{0, 9, 12, 4}, [4]int{carol.Day, carol.StartHour, carol.EndHour, carol.Rank})
	assert.Equal(t, 3, result.Heatmap["Mon-10:00"])
	assert.Equal(t, 1, result.Heatmap["Wed-13:00"])
	assert.NotContains(t, result.Heatmap, "Tue-10:00")
}

func TestRouter_HeatmapPage(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "GET", "/v1/rooms/demo-room/heatmap.html", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "echarts")
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newTestRouter(t)

	rr := do(router, "GET", "/ping", "")
	_, err := uuid.Parse(rr.Header().Get(REQUEST_ID_HEADER))
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/ping", nil)
	id := uuid.NewString()
	req.Header.Set(REQUEST_ID_HEADER, id)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(REQUEST_ID_HEADER))
}
