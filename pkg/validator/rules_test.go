package validator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoquery/pkg/validator"
)

func TestBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		ok    bool
	}{
		{"lower bound", -90, true},
		{"upper bound", 90, true},
		{"inside", 0, true},
		{"below", -91, false},
		{"above", 91, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.Between("age", tt.value, -90, 90))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			errs := validator.ExtractValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, "age", errs[0].Field)
			assert.Equal(t, "must be between -90 and 90.", errs.First())
			assert.Equal(t, "validation.between", errs[0].TranslationKey)
			assert.Equal(t, map[string]any{"min": -90, "max": 90}, errs[0].Params)
		})
	}

	t.Run("float formatting", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.Between("", 5.5, -1.5, 2.25))
		assert.Equal(t, "must be between -1.5 and 2.25.", validator.ExtractValidationErrors(err).First())
	})

	t.Run("NaN fails", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, validator.Apply(validator.Between("", math.NaN(), -1.0, 1.0)))
	})
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Min("n", 5, 5), validator.Max("n", 5, 5)))

	err := validator.Apply(validator.Min("n", 4, 5), validator.Max("n", 4, 3))
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "must be at least 5.", errs[0].Message)
	assert.Equal(t, "must be at most 3.", errs[1].Message)
	assert.Equal(t, "validation failed: n: must be at least 5.; n: must be at most 3.", err.Error())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := errors.Join(errors.New("ctx"), validator.Apply(validator.Min("", 0, 1)))
	errs := validator.ExtractValidationErrors(wrapped)
	assert.False(t, errs.IsEmpty())
	assert.Equal(t, "must be at least 1.", errs.First())
	assert.Equal(t, "must be at least 1.", errs[0].Message)

	assert.Equal(t, "", validator.ValidationErrors{}.First())
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}
