package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"namur_backend/internals/constants"
)

// flexString accepts string, number or bool JSON values; clients send
// machinery attributes in whichever form their form builder produced.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexString(strconv.FormatBool(v))
		return nil
	}
	return fmt.Errorf("unsupported value %s", string(b))
}

func (f flexString) empty() bool { return strings.TrimSpace(string(f)) == "" }

// Typed views of the extra_fields column, keyed by category. Categories
// outside Food/Animal/Machinery carry free-form attributes and are
// stored as-is.

type FoodFields struct {
	Breed flexString `json:"breed"`
}

type AnimalFields struct {
	Breed    flexString `json:"breed"`
	Quantity flexString `json:"quantity"`
}

type MachineryFields struct {
	Brand            flexString `json:"brand"`
	Model            flexString `json:"model"`
	ManufactureYear  flexString `json:"manufacture_year"`
	RegistrationNo   flexString `json:"registration_no"`
	PrevOwners       flexString `json:"prev_owners"`
	DrivenHours      flexString `json:"driven_hours"`
	KmsCovered       flexString `json:"kms_covered"`
	InsuranceRunning flexString `json:"insurance_running"`
	FcValue          flexString `json:"fc_value"`
}

// ValidateExtraFields checks the category-specific mandatory attributes
// against the effective category. unit is the effective unit column
// value (merged existing + incoming), required for Food.
func ValidateExtraFields(categoryName string, raw []byte, unit *string) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch categoryName {
	case constants.CategoryFood:
		var f FoodFields
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("invalid extra_fields: %w", err)
		}
		if f.Breed.empty() {
			return fmt.Errorf("breed is required for Food category")
		}
		if unit == nil || strings.TrimSpace(*unit) == "" {
			return fmt.Errorf("unit is required for Food category")
		}

	case constants.CategoryAnimal:
		var a AnimalFields
		if err := json.Unmarshal(raw, &a); err != nil {
			return fmt.Errorf("invalid extra_fields: %w", err)
		}
		if a.Breed.empty() {
			return fmt.Errorf("breed is required for Animal category")
		}
		if a.Quantity.empty() {
			return fmt.Errorf("quantity is required for Animal category")
		}

	case constants.CategoryMachinery:
		var m MachineryFields
		if err := json.Unmarshal(raw, &m); err != nil {
			return fmt.Errorf("invalid extra_fields: %w", err)
		}
		for _, check := range []struct {
			name string
			val  flexString
		}{
			{"brand", m.Brand},
			{"model", m.Model},
			{"manufacture_year", m.ManufactureYear},
			{"registration_no", m.RegistrationNo},
			{"prev_owners", m.PrevOwners},
			{"driven_hours", m.DrivenHours},
			{"kms_covered", m.KmsCovered},
			{"insurance_running", m.InsuranceRunning},
			{"fc_value", m.FcValue},
		} {
			if check.val.empty() {
				return fmt.Errorf("missing required machinery field: %s", check.name)
			}
		}
	}
	return nil
}
