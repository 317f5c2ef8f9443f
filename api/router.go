package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes into a gin engine.
// The caller selects the gin mode beforehand with gin.SetMode.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestID(),
		Logger(h.log),
		AccessLog(h.log),
		Recover(h.log),
		cors.Default(),
	)
	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, Error{Code: CodeNotFound, Message: "Route " + c.Request.URL.Path + " not found"})
	})

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/locations", h.Locations)
	api.GET("/locations/:id", h.Location)
	api.GET("/nearest", h.Nearest)
	api.GET("/paths", h.Paths)
	api.GET("/paths/:from/:to", h.PathDetail)
	api.GET("/routes", h.Routes)
	api.GET("/routes/shortest", h.ShortestRoute)
	api.GET("/tour", h.Tour)
	api.GET("/distances", h.Distances)
	api.GET("/backbone", h.Backbone)
	api.GET("/session/history", h.History)

	return r
}
