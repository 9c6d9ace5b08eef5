package query_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoquery/pkg/query"
)

func TestInt(t *testing.T) {
	t.Parallel()

	p := query.Int(-90, 90)

	t.Run("every value in range is accepted", func(t *testing.T) {
		t.Parallel()
		for n := -90; n <= 90; n++ {
			v, err := p.Parse(strconv.Itoa(n))
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, n, v)
		}
	})

	t.Run("values out of range report the range message", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{-1000, -91, 91, 200, 1000} {
			_, err := p.Parse(strconv.Itoa(n))
			require.Error(t, err, "n=%d", n)
			assert.Equal(t, "must be between -90 and 90.", err.Error())
			assert.ErrorIs(t, err, query.ErrRange)
			assert.NotErrorIs(t, err, query.ErrFormat)
		}
	})

	t.Run("integers wider than int64 are out of range", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse("99999999999999999999999")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrRange)
		assert.Equal(t, "must be between -90 and 90.", err.Error())
	})

	t.Run("non numeric tokens report the format message", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"abc", "", "12.5", "1e2", " 5", "0x10"} {
			_, err := p.Parse(raw)
			require.Error(t, err, "raw=%q", raw)
			assert.Equal(t, query.MsgNotANumber, err.Error())
			assert.ErrorIs(t, err, query.ErrFormat)
		}
	})

	t.Run("explicit sign is accepted", func(t *testing.T) {
		t.Parallel()
		v, err := p.Parse("+45")
		require.NoError(t, err)
		assert.Equal(t, 45, v)
	})

	t.Run("narrow target type overflows into range error", func(t *testing.T) {
		t.Parallel()
		small := query.Int[int8](-100, 100)
		_, err := small.Parse("300")
		require.Error(t, err)
		assert.ErrorIs(t, err, query.ErrRange)
		assert.Equal(t, "must be between -100 and 100.", err.Error())
	})

	t.Run("panics on inverted bounds", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { query.Int(10, -10) })
	})
}

func TestFloat(t *testing.T) {
	t.Parallel()

	p := query.Float(-180.0, 180.0)

	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr error
		msg     string
	}{
		{name: "integer token", raw: "12", want: 12},
		{name: "decimal token", raw: "-179.5", want: -179.5},
		{name: "lower bound", raw: "-180", want: -180},
		{name: "upper bound", raw: "180", want: 180},
		{name: "above range", raw: "180.01", wantErr: query.ErrRange, msg: "must be between -180 and 180."},
		{name: "infinity", raw: "Inf", wantErr: query.ErrRange, msg: "must be between -180 and 180."},
		{name: "nan", raw: "NaN", wantErr: query.ErrFormat, msg: query.MsgNotANumber},
		{name: "garbage", raw: "east", wantErr: query.ErrFormat, msg: query.MsgNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := p.Parse(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, tt.msg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "Alice", "with spaces", "ünïcødé"} {
		v, err := query.Text().Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, v)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	type percent int
	p := query.Map(query.Int(0, 100), func(n int) percent { return percent(n) })

	v, err := p.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, percent(42), v)

	_, err = p.Parse("101")
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrRange)
}
