package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeConnectionFailed, "down")
	if !err.Retryable {
		t.Error("CONNECTION_FAILED should be retryable")
	}
	err = New(ErrCodeInvalidInput, "bad")
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_Error(t *testing.T) {
	err := InvalidInput("message cannot be empty")
	want := "INVALID_INPUT: message cannot be empty"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestAppError_ErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := ConnectionFailed("mysql", cause)
	if got := err.Error(); got != "CONNECTION_FAILED: unable to connect to mysql (cause: dial tcp: refused)" {
		t.Errorf("unexpected message: %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("db_path")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.Details["field"] != "db_path" {
		t.Errorf("expected field detail, got %v", err.Details)
	}
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("logger", "app")
	if err.Details["name"] != "app" {
		t.Errorf("expected name detail, got %v", err.Details)
	}
}

func TestHasCode(t *testing.T) {
	err := NotFound("logger", "ghost")
	if !HasCode(err, ErrCodeNotFound) {
		t.Error("expected HasCode to match NOT_FOUND")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, ErrCodeNotFound) {
		t.Error("HasCode should see through wrapping")
	}
	if HasCode(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("plain errors carry no code")
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(WriteFailed("file", nil)) != ErrCodeWriteFailed {
		t.Error("expected WRITE_FAILED")
	}
	if CodeOf(stderrors.New("plain")) != ErrCodeInternal {
		t.Error("plain errors default to INTERNAL")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(WriteFailed("file", nil)) {
		t.Error("WRITE_FAILED should be retryable")
	}
	if IsRetryable(MissingField("x")) {
		t.Error("MISSING_FIELD should not be retryable")
	}
}

func TestWithDetail(t *testing.T) {
	err := InvalidInput("bad").WithDetail("got", 42)
	if err.Details["got"] != 42 {
		t.Errorf("expected detail 42, got %v", err.Details["got"])
	}
}
