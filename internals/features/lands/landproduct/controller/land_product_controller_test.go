package controller

import "testing"

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }
func strPtr(s string) *string     { return &s }

func TestValidateShapeFood(t *testing.T) {
	if err := validateShape("Food", floatPtr(2.5), nil, nil, nil); err != nil {
		t.Errorf("valid food row rejected: %v", err)
	}
	if err := validateShape("food", floatPtr(1), nil, nil, nil); err != nil {
		t.Errorf("category match should be case-insensitive: %v", err)
	}
	if err := validateShape("Food", nil, nil, nil, nil); err == nil {
		t.Error("food without acres should fail")
	}
	if err := validateShape("Food", floatPtr(0), nil, nil, nil); err == nil {
		t.Error("zero acres should fail")
	}
}

func TestValidateShapeAnimal(t *testing.T) {
	if err := validateShape("Animal", nil, intPtr(2), nil, nil); err != nil {
		t.Errorf("valid animal row rejected: %v", err)
	}
	if err := validateShape("Animal", nil, nil, nil, nil); err == nil {
		t.Error("animal without quantity should fail")
	}
	if err := validateShape("Animal", nil, intPtr(0), nil, nil); err == nil {
		t.Error("zero head count should fail")
	}
}

func TestValidateShapeMachinery(t *testing.T) {
	if err := validateShape("Machinery", nil, nil, strPtr("575 DI"), strPtr("KA01AB1234")); err != nil {
		t.Errorf("valid machinery row rejected: %v", err)
	}
	if err := validateShape("Machinery", nil, nil, nil, strPtr("KA01AB1234")); err == nil {
		t.Error("machinery without model_no should fail")
	}
	if err := validateShape("Machinery", nil, nil, strPtr("575 DI"), strPtr("")); err == nil {
		t.Error("machinery with blank registration_no should fail")
	}
}

func TestValidateShapeUnknownCategory(t *testing.T) {
	if err := validateShape("Vehicles", nil, nil, nil, nil); err == nil {
		t.Error("unknown category should fail")
	}
}
