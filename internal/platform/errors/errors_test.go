package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeNotFound, "record not found")
	if err.Error() != "record not found" {
		t.Fatalf("message = %q, want %q", err.Error(), "record not found")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeDuplicateID, "record identifier already exists")
	err := WithMetadata(CodeDuplicateID, "user 7 already exists", map[string]string{"id": "7"})

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeNotFound, "record not found")) {
		t.Fatal("expected errors with different codes to not match")
	}
}

func TestIsIgnoresForeignErrors(t *testing.T) {
	err := New(CodeNotFound, "record not found")
	if stderrors.Is(err, stderrors.New("record not found")) {
		t.Fatal("expected no match against a plain error")
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeStorageUnavailable, "put user", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found in the chain")
	}
}

func TestWrapPreservesChainThroughFmt(t *testing.T) {
	sentinel := New(CodeNotFound, "record not found")
	wrapped := fmt.Errorf("load snapshot: %w", sentinel)

	if !stderrors.Is(wrapped, sentinel) {
		t.Fatal("expected sentinel to survive fmt wrapping")
	}
}
