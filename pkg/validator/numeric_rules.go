package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v.", min),
			TranslationKey: "validation.min",
			Params:         map[string]any{"min": min},
		},
	}
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v.", max),
			TranslationKey: "validation.max",
			Params:         map[string]any{"max": max},
		},
	}
}

// Between validates that a numeric value lies in the closed interval [min, max].
// NaN never satisfies the rule.
func Between[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v.", min, max),
			TranslationKey: "validation.between",
			Params:         map[string]any{"min": min, "max": max},
		},
	}
}
