package validation

import (
	"testing"

	"github.com/kbukum/logkit/errors"
)

func TestValidator_Required(t *testing.T) {
	v := New().Required("name", "")
	err := v.Validate()
	if err == nil {
		t.Fatal("expected error for empty required field")
	}
	if err.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
}

func TestValidator_NoErrors(t *testing.T) {
	v := New().Required("name", "ok").OneOf("mode", "json", []string{"json", "simple"})
	if err := v.Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidator_OneOf(t *testing.T) {
	v := New().OneOf("format", "xml", []string{"json", "simple"})
	if !v.HasErrors() {
		t.Error("expected error for disallowed value")
	}
}

func TestValidator_Custom(t *testing.T) {
	v := New().Custom(false, "count", "must be positive")
	errs := v.Errors()
	if len(errs) != 1 || errs[0].Field != "count" {
		t.Errorf("expected single 'count' error, got %v", errs)
	}
}

func TestRequired_Helper(t *testing.T) {
	if err := Required("name", "present"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("name", "  "); err == nil {
		t.Error("expected error for blank value")
	}
}

type demoConfig struct {
	Host      string `mapstructure:"host" validate:"required"`
	TableName string `mapstructure:"table_name"`
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	err := ValidateStruct(&demoConfig{})
	if err == nil {
		t.Fatal("expected error for missing host")
	}
	if !errors.HasCode(err, errors.ErrCodeMissingField) {
		t.Errorf("expected MISSING_FIELD, got %v", err)
	}
}

func TestValidateStruct_UsesMapstructureNames(t *testing.T) {
	err := ValidateStruct(&demoConfig{})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := err.(*errors.AppError)
	if appErr.Details["field"] != "host" {
		t.Errorf("expected config key name 'host', got %v", appErr.Details["field"])
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	if err := ValidateStruct(&demoConfig{Host: "localhost"}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
