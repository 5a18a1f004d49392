package service

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateExtraFieldsFood(t *testing.T) {
	if err := ValidateExtraFields("Food", []byte(`{"breed":"Sona Masoori"}`), strPtr("kg")); err != nil {
		t.Fatalf("valid food fields rejected: %v", err)
	}
	if err := ValidateExtraFields("Food", []byte(`{}`), strPtr("kg")); err == nil {
		t.Fatal("missing breed should fail")
	}
	if err := ValidateExtraFields("Food", []byte(`{"breed":"Sona"}`), nil); err == nil {
		t.Fatal("missing unit should fail")
	}
	if err := ValidateExtraFields("Food", []byte(`{"breed":"  "}`), strPtr("kg")); err == nil {
		t.Fatal("blank breed should fail")
	}
}

func TestValidateExtraFieldsAnimal(t *testing.T) {
	if err := ValidateExtraFields("Animal", []byte(`{"breed":"Gir","quantity":3}`), nil); err != nil {
		t.Fatalf("valid animal fields rejected: %v", err)
	}
	if err := ValidateExtraFields("Animal", []byte(`{"breed":"Gir"}`), nil); err == nil {
		t.Fatal("missing quantity should fail")
	}
	if err := ValidateExtraFields("Animal", []byte(`{"quantity":"2"}`), nil); err == nil {
		t.Fatal("missing breed should fail")
	}
}

func TestValidateExtraFieldsMachinery(t *testing.T) {
	full := `{
		"brand":"Mahindra","model":"575 DI","manufacture_year":2019,
		"registration_no":"KA01AB1234","prev_owners":1,"driven_hours":1200,
		"kms_covered":"8000","insurance_running":true,"fc_value":"2026-01-01"
	}`
	if err := ValidateExtraFields("Machinery", []byte(full), nil); err != nil {
		t.Fatalf("valid machinery fields rejected: %v", err)
	}

	missing := `{
		"brand":"Mahindra","model":"575 DI","manufacture_year":2019,
		"registration_no":"KA01AB1234","prev_owners":1,"driven_hours":1200,
		"kms_covered":"8000","insurance_running":true
	}`
	err := ValidateExtraFields("Machinery", []byte(missing), nil)
	if err == nil {
		t.Fatal("missing fc_value should fail")
	}
	if !strings.Contains(err.Error(), "fc_value") {
		t.Errorf("error should name the missing field, got %q", err.Error())
	}
}

func TestValidateExtraFieldsNumericAndBoolValues(t *testing.T) {
	// clients send numbers and bools where strings are expected
	if err := ValidateExtraFields("Animal", []byte(`{"breed":123,"quantity":true}`), nil); err != nil {
		t.Fatalf("coercible values rejected: %v", err)
	}
}

func TestValidateExtraFieldsOtherCategory(t *testing.T) {
	// unknown categories carry free-form attributes
	if err := ValidateExtraFields("Services", []byte(`{"anything":"goes"}`), nil); err != nil {
		t.Fatalf("non-special category should pass: %v", err)
	}
	if err := ValidateExtraFields("Services", nil, nil); err != nil {
		t.Fatalf("empty extra_fields should pass for non-special category: %v", err)
	}
}

func TestValidateExtraFieldsMalformedJSON(t *testing.T) {
	if err := ValidateExtraFields("Food", []byte(`{breed}`), strPtr("kg")); err == nil {
		t.Fatal("malformed JSON should fail")
	}
}
