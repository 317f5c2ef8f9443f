package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/route"
)

// Handlers serves the navigation endpoints.
type Handlers struct {
	nav      *navigator.Navigator
	sessions *navigator.Sessions
	log      *zap.Logger
}

// NewHandlers returns handlers over nav. sessions may be nil, which disables
// session recording and the history endpoint.
func NewHandlers(nav *navigator.Navigator, sessions *navigator.Sessions, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}

	return &Handlers{nav: nav, sessions: sessions, log: log}
}

// Location is the wire form of core.Location.
type Location struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type string   `json:"type,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

func toLocation(l core.Location) Location {
	out := Location{ID: l.ID, Name: l.Name, Type: l.Kind}
	if l.HasCoords {
		lat, lng := l.Lat, l.Lng
		out.Lat, out.Lng = &lat, &lng
	}

	return out
}

// Path is the wire form of a direct walkway.
type Path struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance"`
	Time     int64  `json:"time"`
	Duration string `json:"duration,omitempty"`
}

// routeQuery binds the route endpoints. max_depth is capped because
// enumeration grows exponentially with it.
type routeQuery struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	MaxDepth int    `form:"max_depth" binding:"omitempty,min=1,max=20"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

type tourQuery struct {
	Stops  string `form:"stops" binding:"required"`
	Return bool   `form:"return"`
}

type nearestQuery struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `form:"lng" binding:"required,min=-180,max=180"`
}

func badRequest(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, Error{Code: CodeBadRequest, Message: err.Error()})
}

// Health reports liveness and the size of the loaded map.
func (h *Handlers) Health(c *gin.Context) {
	stats := h.nav.Graph().Stats()
	respond(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"locations": stats.VertexCount,
		"paths":     stats.EdgeCount,
	})
}

// Locations lists every location in catalog order.
func (h *Handlers) Locations(c *gin.Context) {
	locs := h.nav.Locations()
	out := make([]Location, len(locs))
	for i, l := range locs {
		out[i] = toLocation(l)
	}
	respond(c, http.StatusOK, out)
}

// Location returns one location by id.
func (h *Handlers) Location(c *gin.Context) {
	l, err := h.nav.Location(c.Param("id"))
	if err != nil {
		failFrom(c, err)
		return
	}
	respond(c, http.StatusOK, toLocation(l))
}

// Nearest returns the location closest to lat/lng.
func (h *Handlers) Nearest(c *gin.Context) {
	var q nearestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	l, dist, err := h.nav.Nearest(*q.Lat, *q.Lng)
	if err != nil {
		fail(c, http.StatusNotFound, Error{Code: CodeNotFound, Message: "No location has coordinates"})
		return
	}
	respond(c, http.StatusOK, gin.H{
		"location":   toLocation(l),
		"distance_m": dist,
	})
}

// Paths lists every direct walkway in catalog order.
func (h *Handlers) Paths(c *gin.Context) {
	edges := h.nav.Graph().Edges()
	out := make([]Path, len(edges))
	for i, e := range edges {
		out[i] = Path{From: e.From, To: e.To, Distance: e.Distance, Time: e.Time}
	}
	respond(c, http.StatusOK, out)
}

// PathDetail returns the direct walkway between two locations.
func (h *Handlers) PathDetail(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	for _, id := range []string{from, to} {
		if _, err := h.nav.Location(id); err != nil {
			failFrom(c, err)
			return
		}
	}
	d, ok := h.nav.PathDetail(from, to)
	if !ok {
		fail(c, http.StatusNotFound, Error{Code: CodePathNotFound, Message: "No direct path between these locations"})
		return
	}
	respond(c, http.StatusOK, Path{From: from, To: to, Distance: d.Distance, Time: d.Time, Duration: route.FormatDuration(d.Time)})
}

// ShortestRoute returns the cheapest route between two locations.
func (h *Handlers) ShortestRoute(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.nav.ComputeShortestPath(c.Request.Context(), q.From, q.To)
	if err != nil {
		failFrom(c, err)
		return
	}
	respond(c, http.StatusOK, r)
}

// Routes returns every route within max_depth, cheapest first. With an
// X-User-Id header the request is recorded in that user's session.
func (h *Handlers) Routes(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var (
		routes []navigator.Route
		err    error
	)
	if user := c.GetHeader(HeaderUserID); user != "" && h.sessions != nil {
		routes, err = h.sessions.Get(user).NavigateWithin(c.Request.Context(), h.nav, q.From, q.To, q.MaxDepth, q.Limit)
	} else {
		routes, err = h.nav.ComputeBestPaths(c.Request.Context(), q.From, q.To, q.MaxDepth, q.Limit)
	}
	if err != nil {
		failFrom(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"routes": routes,
		"count":  len(routes),
	})
}

// History returns the caller's session: past requests and current options.
func (h *Handlers) History(c *gin.Context) {
	user := c.GetHeader(HeaderUserID)
	if user == "" || h.sessions == nil {
		fail(c, http.StatusBadRequest, Error{Code: CodeBadRequest, Message: HeaderUserID + " header is required"})
		return
	}
	s := h.sessions.Get(user)
	respond(c, http.StatusOK, gin.H{
		"user_id": s.UserID(),
		"history": s.History(),
		"current": s.Current(),
	})
}

// Tour orders a comma-separated list of stops into the cheapest walk that
// starts at the first one. return=true asks for a round trip.
func (h *Handlers) Tour(c *gin.Context) {
	var q tourQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	var stops []string
	for _, s := range strings.Split(q.Stops, ",") {
		if s = strings.TrimSpace(s); s != "" {
			stops = append(stops, s)
		}
	}
	t, err := h.nav.PlanTour(c.Request.Context(), stops, q.Return)
	if err != nil {
		failFrom(c, err)
		return
	}
	respond(c, http.StatusOK, t)
}

// Distances returns the shortest walking distance between every pair of
// locations. Unreachable pairs are omitted.
func (h *Handlers) Distances(c *gin.Context) {
	tbl, err := h.nav.DistanceTable()
	if err != nil {
		failFrom(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"ids":       tbl.IDs(),
		"distances": tbl.Rows(),
	})
}

// Backbone returns the cheapest set of walkways that keeps every location connected.
func (h *Handlers) Backbone(c *gin.Context) {
	b, err := h.nav.Backbone()
	if err != nil {
		failFrom(c, err)
		return
	}
	paths := make([]Path, len(b.Edges))
	for i, e := range b.Edges {
		paths[i] = Path{From: e.From, To: e.To, Distance: e.Distance, Time: e.Time}
	}
	respond(c, http.StatusOK, gin.H{
		"paths":          paths,
		"total_distance": b.TotalDistance,
		"total_time":     b.TotalTime,
		"duration":       b.Duration,
	})
}
