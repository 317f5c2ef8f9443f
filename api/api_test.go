package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/campusnav/api"
	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *api.Error      `json:"error"`
	RequestID string          `json:"request_id"`
}

func newServer(t testing.TB, log *zap.Logger) http.Handler {
	t.Helper()
	g, err := campusmap.Default().Build()
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("9", "Observatory"))

	nav := navigator.New(g, navigator.WithLogger(log))

	return api.NewRouter(api.NewHandlers(nav, navigator.NewSessions(), log))
}

func get(t testing.TB, h http.Handler, target string, hdr map[string]string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.Equal(t, rec.Header().Get(api.HeaderRequestID), env.RequestID)

	return rec.Code, env
}

func decode(t testing.TB, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestHealth(t *testing.T) {
	code, env := get(t, newServer(t, zap.NewNop()), "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var body struct {
		Status    string `json:"status"`
		Locations int    `json:"locations"`
		Paths     int    `json:"paths"`
	}
	decode(t, env.Data, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, 9, body.Locations)
	assert.Equal(t, 10, body.Paths)
}

func TestRequestID_Propagated(t *testing.T) {
	_, env := get(t, newServer(t, zap.NewNop()), "/api/health", map[string]string{api.HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", env.RequestID)

	_, env = get(t, newServer(t, zap.NewNop()), "/api/health", nil)
	assert.Len(t, env.RequestID, 36, "generated ids are UUIDs")
}

func TestLocations(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/locations", nil)
	require.Equal(t, http.StatusOK, code)
	var locs []api.Location
	decode(t, env.Data, &locs)
	require.Len(t, locs, 9)
	assert.Equal(t, "Main Gate", locs[0].Name)
	assert.Equal(t, "Entrance", locs[0].Type)
	require.NotNil(t, locs[0].Lat)
	assert.InDelta(t, 29.375481, *locs[0].Lat, 1e-9)
	assert.Nil(t, locs[8].Lat)

	code, env = get(t, h, "/api/locations/4", nil)
	require.Equal(t, http.StatusOK, code)
	var l api.Location
	decode(t, env.Data, &l)
	assert.Equal(t, "Computer Science Lab", l.Name)

	code, env = get(t, h, "/api/locations/99", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, api.CodeLocationNotFound, env.Error.Code)
}

func TestNearest(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/nearest?lat=29.375850&lng=79.531250", nil)
	require.Equal(t, http.StatusOK, code)
	var body struct {
		Location  api.Location `json:"location"`
		DistanceM float64      `json:"distance_m"`
	}
	decode(t, env.Data, &body)
	assert.Equal(t, "8", body.Location.ID)
	assert.InDelta(t, 0, body.DistanceM, 0.01)

	code, env = get(t, h, "/api/nearest?lat=29.3", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, api.CodeBadRequest, env.Error.Code)

	code, _ = get(t, h, "/api/nearest?lat=91&lng=0", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPaths(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/paths", nil)
	require.Equal(t, http.StatusOK, code)
	var paths []api.Path
	decode(t, env.Data, &paths)
	require.Len(t, paths, 10)
	assert.Equal(t, api.Path{From: "1", To: "2", Distance: 150, Time: 120}, paths[0])

	code, env = get(t, h, "/api/paths/7/1", nil)
	require.Equal(t, http.StatusOK, code)
	var p api.Path
	decode(t, env.Data, &p)
	assert.Equal(t, api.Path{From: "7", To: "1", Distance: 100, Time: 80, Duration: "1 min 20 sec"}, p)

	code, env = get(t, h, "/api/paths/1/3", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, api.CodePathNotFound, env.Error.Code)

	code, env = get(t, h, "/api/paths/1/99", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, api.CodeLocationNotFound, env.Error.Code)
}

func TestShortestRoute(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/routes/shortest?from=1&to=8", nil)
	require.Equal(t, http.StatusOK, code)
	var r navigator.Route
	decode(t, env.Data, &r)
	assert.Equal(t, []string{"1", "7", "5", "4", "6", "8"}, r.Path)
	assert.Equal(t, int64(625), r.TotalDistance)
	assert.Equal(t, "8 min 20 sec", r.Duration)
	assert.Len(t, r.Steps, 5)
	assert.Equal(t, "Main Gate", r.Steps[0].FromName)
	assert.True(t, r.Shortest)
}

func TestShortestRoute_Errors(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/routes/shortest?from=1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, api.CodeBadRequest, env.Error.Code)

	code, env = get(t, h, "/api/routes/shortest?from=1&to=42", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, api.CodeLocationNotFound, env.Error.Code)

	code, env = get(t, h, "/api/routes/shortest?from=1&to=9", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Success)
	assert.Equal(t, api.CodeNoRoute, env.Error.Code)
	assert.Zero(t, env.Error.Required)
}

func TestRoutes(t *testing.T) {
	h := newServer(t, zap.NewNop())

	code, env := get(t, h, "/api/routes?from=1&to=3", nil)
	require.Equal(t, http.StatusOK, code)
	var body struct {
		Routes []navigator.Route `json:"routes"`
		Count  int               `json:"count"`
	}
	decode(t, env.Data, &body)
	assert.Equal(t, 6, body.Count)
	assert.Equal(t, int64(210), body.Routes[0].TotalDistance)

	code, env = get(t, h, "/api/routes?from=1&to=3&limit=2&max_depth=4", nil)
	require.Equal(t, http.StatusOK, code)
	decode(t, env.Data, &body)
	assert.Equal(t, 2, body.Count)
}

func TestRoutes_DepthTooSmall(t *testing.T) {
	code, env := get(t, newServer(t, zap.NewNop()), "/api/routes?from=1&to=8&max_depth=3", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, env.Success)
	assert.Equal(t, api.CodeNoRoute, env.Error.Code)
	assert.Equal(t, 5, env.Error.Required)
}

func TestRoutes_BadQuery(t *testing.T) {
	h := newServer(t, zap.NewNop())
	for _, q := range []string{
		"/api/routes?to=3",
		"/api/routes?from=1&to=3&max_depth=0x",
		"/api/routes?from=1&to=3&max_depth=50",
		"/api/routes?from=1&to=3&limit=-1",
	} {
		code, env := get(t, h, q, nil)
		assert.Equal(t, http.StatusBadRequest, code, q)
		assert.Equal(t, api.CodeBadRequest, env.Error.Code, q)
	}
}

func TestSessionHistory(t *testing.T) {
	h := newServer(t, zap.NewNop())
	user := map[string]string{api.HeaderUserID: "student-7"}

	code, _ := get(t, h, "/api/session/history", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	get(t, h, "/api/routes?from=1&to=3&limit=1", user)
	get(t, h, "/api/routes?from=1&to=9", user)

	code, env := get(t, h, "/api/session/history", user)
	require.Equal(t, http.StatusOK, code)
	var body struct {
		UserID  string              `json:"user_id"`
		History []navigator.Request `json:"history"`
		Current []navigator.Route   `json:"current"`
	}
	decode(t, env.Data, &body)
	assert.Equal(t, "student-7", body.UserID)
	require.Len(t, body.History, 2)
	assert.Equal(t, 1, body.History[0].Routes)
	assert.NotEmpty(t, body.History[1].Error)
	require.Len(t, body.Current, 1)
	assert.Equal(t, []string{"1", "7", "3"}, body.Current[0].Path)
}

func TestNoRoute(t *testing.T) {
	code, env := get(t, newServer(t, zap.NewNop()), "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, api.CodeNotFound, env.Error.Code)
}

func TestAccessLog(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	h := newServer(t, zap.New(obs))

	get(t, h, "/api/locations/2", map[string]string{api.HeaderRequestID: "rid-1"})

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/locations/2", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "rid-1", fields["request_id"])
}

func TestRecover(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	log := zap.New(obs)
	g := core.NewGraph()
	h := api.NewHandlers(navigator.New(g), nil, log)
	r := api.NewRouter(h)
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	code, env := get(t, r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, api.CodeInternal, env.Error.Code)
	assert.Len(t, logs.FilterMessage("panic in handler").All(), 1)
}
