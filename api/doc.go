// Package api exposes the navigator over HTTP with gin.
//
// Every response is an Envelope:
//
//	{"success": true, "data": ..., "request_id": "..."}
//	{"success": false, "error": {"code": "NO_ROUTE", "message": "..."}, "request_id": "..."}
//
// Status mapping:
//
//   - 400 BAD_REQUEST         missing or malformed query parameters.
//   - 404 LOCATION_NOT_FOUND  an id is not on the map.
//   - 404 PATH_NOT_FOUND      no direct walkway between two locations.
//   - 200 NO_ROUTE            both locations exist but no route connects them
//     (within max_depth, in which case required_depth says what would work).
//
// Routes:
//
//	GET /api/health
//	GET /api/locations
//	GET /api/locations/:id
//	GET /api/nearest?lat=&lng=
//	GET /api/paths
//	GET /api/paths/:from/:to
//	GET /api/routes/shortest?from=&to=
//	GET /api/routes?from=&to=&max_depth=&limit=
//	GET /api/tour?stops=1,3,8&return=
//	GET /api/distances
//	GET /api/backbone
//	GET /api/session/history            (X-User-Id header)
package api
