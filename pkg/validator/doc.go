// Package validator builds declarative numeric rules.
//
// A Rule pairs a Check with the ValidationError reported when it fails.
// Apply evaluates rules in order and returns the failures as
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//		validator.Between("age", age, -90, 90),
//	)
//	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
//		fmt.Println(errs.First()) // must be between -90 and 90.
//	}
//
// Messages end with a period and carry a TranslationKey plus Params for
// localisation.
package validator
