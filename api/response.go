package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campusnav/navigator"
)

// Error codes carried in Envelope.Error.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeLocationNotFound = "LOCATION_NOT_FOUND"
	CodePathNotFound     = "PATH_NOT_FOUND"
	CodeNoRoute          = "NO_ROUTE"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

// Envelope wraps every JSON response.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *Error      `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// Error is the machine-readable failure of a request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Required is the smallest max_depth that yields a route, when known.
	Required int `json:"required_depth,omitempty"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data, RequestID: requestID(c)})
}

func fail(c *gin.Context, status int, e Error) {
	c.AbortWithStatusJSON(status, Envelope{Error: &e, RequestID: requestID(c)})
}

// failFrom maps navigator errors onto status codes. "No route" is an answer,
// not a fault, so it is returned with 200 and success=false.
func failFrom(c *gin.Context, err error) {
	var de *navigator.DepthError
	switch {
	case errors.Is(err, navigator.ErrNoStops):
		fail(c, http.StatusBadRequest, Error{Code: CodeBadRequest, Message: "At least one stop is required"})
	case errors.Is(err, navigator.ErrDisconnected):
		fail(c, http.StatusOK, Error{Code: CodeNoRoute, Message: "Campus map is not fully connected"})
	case errors.Is(err, navigator.ErrLocationNotFound):
		fail(c, http.StatusNotFound, Error{Code: CodeLocationNotFound, Message: "Location not found"})
	case errors.As(err, &de):
		fail(c, http.StatusOK, Error{
			Code:     CodeNoRoute,
			Message:  "No route found within the selected number of stops",
			Required: de.Required,
		})
	case errors.Is(err, navigator.ErrNoRoute):
		fail(c, http.StatusOK, Error{Code: CodeNoRoute, Message: "No route found between these locations"})
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, Error{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)})
	}
}
