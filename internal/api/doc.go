// Package api defines the JSON wire types of the searchd HTTP service and
// small client helpers for calling it.
//
// Endpoints:
//
//	GET  /health     200 when the service is up
//	POST /search     SearchRequest    -> SearchResponse
//	POST /benchmark  BenchmarkRequest -> BenchmarkResponse
//	GET  /runs       RunsResponse (recent runs, oldest first)
//	GET  /metrics    Prometheus exposition
//
// Client helpers return an error wrapping ErrStatus for any status >= 300.
package api
