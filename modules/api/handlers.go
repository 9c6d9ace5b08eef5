package api

import (
	"github.com/dmitrymomot/geoquery/handler"
	"github.com/dmitrymomot/geoquery/pkg/geo"
	"github.com/dmitrymomot/geoquery/pkg/query"
)

// HelloQuery is bound from /hello?name=<s>&age=<lat>. Age is deferred: a
// bad value does not fail binding, the handler decides.
type HelloQuery struct {
	Name string
	Age  query.Result[geo.Latitude]
}

var helloSchema = query.NewSchema(
	query.Strict("name", query.Text(), func(q *HelloQuery, v string) { q.Name = v }),
	query.Deferred("age", geo.LatitudeParser, func(q *HelloQuery, r query.Result[geo.Latitude]) { q.Age = r }),
)

// BBoxQuery is bound from /bbox?ne=<lng>,<lat>&sw=<lng>,<lat>. The box is
// fail-fast: any malformed corner rejects the request.
type BBoxQuery struct {
	Box geo.BoundingBox
}

var bboxSchema = query.NewSchema(
	query.Nested(geo.BoundingBoxSchema, func(q *BBoxQuery, b geo.BoundingBox) { q.Box = b }),
)

func index(_ handler.Context, _ struct{}) handler.Response {
	return handler.Text("Hello, world!")
}

func hello(_ handler.Context, req HelloQuery) handler.Response {
	if !req.Age.IsOk() {
		return handler.Error(req.Age.Err())
	}
	return handler.Text("Hello, Mr " + req.Name)
}

func bbox(_ handler.Context, req BBoxQuery) handler.Response {
	return handler.Text(req.Box.String())
}
