// Package metrics exposes Prometheus collectors for the HTTP surface and
// for query validation failures.
//
// Each Metrics value owns its registry, so tests and multiple routers never
// collide on the global default registerer.
//
//	m := metrics.New("geoquery")
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
package metrics
