// Package query decodes raw query-string parameters into typed, validated values.
//
// The package has three layers:
//
//   - Parsers convert one raw value into one typed value. Int and Float
//     produce bounded numbers, Text accepts anything, Composite splits a
//     comma-separated value into a fixed number of numeric components.
//   - Fields bind a parameter name to a parser and to a place in the target
//     struct. The binding policy is chosen per field.
//   - A Schema lists the fields of a target struct and decodes a query
//     string into it.
//
// # Binding policies
//
// Deferred fields store their outcome as a Result, so the caller always
// receives a populated struct and decides what a failed field means:
//
//	type Person struct {
//		Name string
//		Age  query.Result[int]
//	}
//
//	var personSchema = query.NewSchema(
//		query.Strict("name", query.Text(), func(p *Person, v string) { p.Name = v }),
//		query.Deferred("age", query.Int(0, 150), func(p *Person, r query.Result[int]) { p.Age = r }),
//	)
//
//	p, err := personSchema.DecodeString("name=Bob&age=200")
//	// err == nil, p.Age.IsOk() == false, p.Age.Err().Error() == "must be between 0 and 150."
//
// Strict, Optional and Nested fields fail fast: the first failure, in
// declaration order, aborts the decode and is returned as the error.
//
// # Errors
//
// Every failure is a ValidationError. Its Reason is meant for the client;
// its kind (ErrFormat, ErrRange, ErrArity, ErrMissing, ErrUnknown) is
// available through errors.Is.
//
// Parsers and schemas are pure and hold no mutable state, so they are safe
// for concurrent use.
package query
