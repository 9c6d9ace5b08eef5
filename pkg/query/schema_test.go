package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoquery/pkg/query"
)

type person struct {
	Name string
	Age  query.Result[int]
}

var personSchema = query.NewSchema(
	query.Strict("name", query.Text(), func(p *person, v string) { p.Name = v }),
	query.Deferred("age", query.Int(-90, 90), func(p *person, r query.Result[int]) { p.Age = r }),
)

type span struct {
	From, To float64
}

type window struct {
	Label string
	Span  span
	Limit int
}

var spanSchema = query.NewSchema(
	query.Strict("from", query.Float(-1000.0, 1000.0), func(s *span, v float64) { s.From = v }),
	query.Strict("to", query.Float(-1000.0, 1000.0), func(s *span, v float64) { s.To = v }),
)

var windowSchema = query.NewSchema(
	query.Strict("label", query.Text(), func(w *window, v string) { w.Label = v }),
	query.Nested(spanSchema, func(w *window, s span) { w.Span = s }),
	query.Optional("limit", query.Int(1, 100), func(w *window, v int) { w.Limit = v }),
)

func TestSchema_Deferred(t *testing.T) {
	t.Parallel()

	t.Run("valid field", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.DecodeString("name=Alice&age=45")
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Name)
		require.True(t, p.Age.IsOk())
		assert.Equal(t, 45, p.Age.Value())
	})

	t.Run("out of range field does not abort the decode", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.DecodeString("name=Bob&age=200")
		require.NoError(t, err)
		assert.Equal(t, "Bob", p.Name)
		assert.True(t, p.Age.IsSet())
		assert.False(t, p.Age.IsOk())

		ve, ok := query.AsValidationError(p.Age.Err())
		require.True(t, ok)
		assert.Equal(t, "must be between -90 and 90.", ve.Reason)
		assert.Equal(t, "age", ve.Field)
		assert.ErrorIs(t, ve, query.ErrRange)
	})

	t.Run("non numeric field is stored as format error", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.DecodeString("name=Carol&age=abc")
		require.NoError(t, err)
		assert.ErrorIs(t, p.Age.Err(), query.ErrFormat)
		assert.Equal(t, query.MsgNotANumber, p.Age.Err().Error())
	})

	t.Run("missing deferred key fails the decode", func(t *testing.T) {
		t.Parallel()
		_, err := personSchema.DecodeString("name=Dave")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrMissing)
		assert.Equal(t, `missing required parameter "age"`, err.Error())
	})

	t.Run("missing strict key fails the decode", func(t *testing.T) {
		t.Parallel()
		_, err := personSchema.DecodeString("age=10")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrMissing)

		ve, ok := query.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "name", ve.Field)
	})

	t.Run("empty name is a present value", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.DecodeString("name=&age=0")
		require.NoError(t, err)
		assert.Equal(t, "", p.Name)
		assert.True(t, p.Age.IsOk())
	})

	t.Run("url escapes are decoded", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.DecodeString("name=Mary+Ann%21&age=-7")
		require.NoError(t, err)
		assert.Equal(t, "Mary Ann!", p.Name)
		assert.Equal(t, -7, p.Age.Value())
	})

	t.Run("first value wins for repeated keys", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.Decode(url.Values{"name": {"first", "second"}, "age": {"1"}})
		require.NoError(t, err)
		assert.Equal(t, "first", p.Name)
	})
}

func TestSchema_Strictness(t *testing.T) {
	t.Parallel()

	t.Run("unknown key fails a strict schema", func(t *testing.T) {
		t.Parallel()
		_, err := personSchema.DecodeString("name=Eve&age=3&admin=true")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrUnknown)
		assert.Equal(t, `unexpected parameter "admin"`, err.Error())
	})

	t.Run("lenient schema ignores unknown keys", func(t *testing.T) {
		t.Parallel()
		p, err := personSchema.Lenient().DecodeString("name=Eve&age=3&admin=true")
		require.NoError(t, err)
		assert.Equal(t, "Eve", p.Name)
	})

	t.Run("lenient copy leaves the original strict", func(t *testing.T) {
		t.Parallel()
		_ = personSchema.Lenient()
		_, err := personSchema.DecodeString("name=Eve&age=3&x=1")
		assert.ErrorIs(t, err, query.ErrUnknown)
	})

	t.Run("malformed query string", func(t *testing.T) {
		t.Parallel()
		_, err := personSchema.DecodeString("name=%zz&age=1")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrFormat)
		assert.Equal(t, "malformed query string", err.Error())
	})

	t.Run("keys in declaration order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"name", "age"}, personSchema.Keys())
		assert.Equal(t, []string{"label", "from", "to", "limit"}, windowSchema.Keys())
	})
}

func TestSchema_FailFast(t *testing.T) {
	t.Parallel()

	t.Run("nested schema decodes", func(t *testing.T) {
		t.Parallel()
		w, err := windowSchema.DecodeString("label=q1&from=-5&to=7.5&limit=20")
		require.NoError(t, err)
		assert.Equal(t, window{Label: "q1", Span: span{From: -5, To: 7.5}, Limit: 20}, w)
	})

	t.Run("optional key may be absent", func(t *testing.T) {
		t.Parallel()
		w, err := windowSchema.DecodeString("label=q1&from=0&to=1")
		require.NoError(t, err)
		assert.Equal(t, 0, w.Limit)
	})

	t.Run("present optional key is still validated", func(t *testing.T) {
		t.Parallel()
		_, err := windowSchema.DecodeString("label=q1&from=0&to=1&limit=0")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrRange)
	})

	t.Run("nested failure aborts and returns zero value", func(t *testing.T) {
		t.Parallel()
		w, err := windowSchema.DecodeString("label=q1&from=1&to=far")
		require.Error(t, err)
		assert.Zero(t, w)

		ve, ok := query.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "to", ve.Field)
		assert.Equal(t, query.MsgNotANumber, ve.Reason)
	})

	t.Run("first failure in declaration order is reported", func(t *testing.T) {
		t.Parallel()
		_, err := windowSchema.DecodeString("label=q1&from=bad&to=bad&limit=500")
		ve, ok := query.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "from", ve.Field)
	})
}
