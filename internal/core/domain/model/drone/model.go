package drone

import (
	"fmt"

	"dronedispatch/internal/pkg/errs"
)

// Model is the fixed enumeration of drone airframes. The model is a
// static attribute set at registration; it does not change thereafter.
type Model int

const (
	// UnknownModel represents an invalid or undefined model.
	UnknownModel Model = iota

	Lightweight
	Middleweight
	Cruiserweight
	Heavyweight
)

func getModelStrings() map[Model]string {
	return map[Model]string{
		UnknownModel:  "Unknown",
		Lightweight:   "Lightweight",
		Middleweight:  "Middleweight",
		Cruiserweight: "Cruiserweight",
		Heavyweight:   "Heavyweight",
	}
}

func getValidModelStrings() map[Model]string {
	//nolint:exhaustive // UnknownModel is intentionally excluded as it's invalid
	return map[Model]string{
		Lightweight:   "Lightweight",
		Middleweight:  "Middleweight",
		Cruiserweight: "Cruiserweight",
		Heavyweight:   "Heavyweight",
	}
}

// ModelFromString parses a model name as received from the API or the
// database. Returns an error for names outside the enumeration.
func ModelFromString(s string) (Model, error) {
	for model, str := range getValidModelStrings() {
		if str == s {
			return model, nil
		}
	}
	return UnknownModel, errs.NewValueIsInvalidErrorWithCause(
		"model is invalid",
		fmt.Errorf("%q is not one of Lightweight, Middleweight, Cruiserweight, Heavyweight", s),
	)
}

// Validate checks if the Model value is valid.
func (m Model) Validate() error {
	if _, ok := getValidModelStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"model is invalid",
			fmt.Errorf("%d is not a valid model", m),
		)
	}
	return nil
}

// String returns the model name, or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (m Model) String() string {
	if str, ok := getModelStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
