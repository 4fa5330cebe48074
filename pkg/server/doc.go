// Package server shows a laid-out graph over HTTP.
//
// [Display] implements [viewer.Display]: Show centres the first frame,
// serves the state until the context is cancelled and then shuts down
// gracefully. Routes:
//
//	GET /healthz      liveness and graph summary (JSON)
//	GET /api/layout   positions, edges and view transform (JSON)
//	GET /graph.svg    the graph rendered at its laid-out positions
//	GET /             redirects to /graph.svg
//
// Every served state gets a random layout id, returned in the JSON
// responses and the X-Layout-Id header, so clients can tell restarts apart.
package server
