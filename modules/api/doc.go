// Package api wires the query endpoints onto a chi router.
//
//	GET /         Hello, world!
//	GET /hello    ?name=<s>&age=<lat>, deferred age, text errors
//	GET /bbox     ?ne=<lng>,<lat>&sw=<lng>,<lat>, fail-fast corners, JSON errors
//	GET /healthz  liveness
//	GET /readyz   readiness
//	GET /metrics  prometheus, when Options.Metrics is set
//
// Options.ErrorFormat overrides the per-route error rendering.
package api
