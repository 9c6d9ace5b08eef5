// Package handler provides type-safe HTTP request handling and error rendering.
//
// # Core Concepts
//
// A HandlerFunc receives a typed request, already bound from the HTTP
// request by one or more binders, and returns a Response:
//
//	type HelloRequest struct {
//		Name string
//		Age  query.Result[geo.Latitude]
//	}
//
//	func hello(ctx handler.Context, req HelloRequest) handler.Response {
//		if !req.Age.IsOk() {
//			return handler.Error(req.Age.Err())
//		}
//		return handler.Text("Hello, Mr " + req.Name)
//	}
//
//	http.HandleFunc("/hello", handler.Wrap(hello,
//		handler.WithBinder[handler.Context, HelloRequest](binder.Query(helloSchema)),
//	))
//
// # Error Rendering
//
// Binding errors and Error responses reach the ErrorHandler configured
// with WithErrorHandler. NewErrorHandler selects a Responder and writes its
// Rendering. Two responders are built in:
//
//	handler.TextResponder{}  // 400 "msg: <reason>", text/plain
//	handler.JSONResponder{}  // 400 {"message":"<reason>"}, application/json
//
// An error can declare its responder by implementing ResponderProvider, or
// be bound to one with WithResponder. Otherwise the handler falls back to
// Accept negotiation (ErrorHandlerConfig.Negotiate) or the configured
// default. If the JSON payload cannot be encoded the response is a 500.
package handler
