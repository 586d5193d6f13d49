package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(CodeDatasetLoadFailed, "load sessions", stderrors.New("no such file"))
	if got := err.Error(); got != "load sessions: no such file" {
		t.Fatalf("unexpected message %q", got)
	}
	if New(CodeNotFound, "session not found").Error() != "session not found" {
		t.Fatal("expected bare message without cause")
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	base := WithMetadata(CodeUnknownOperation, "unknown tool", map[string]string{"tool": "drop_tables"})
	wrapped := fmt.Errorf("invoke: %w", base)

	if GetCode(wrapped) != CodeUnknownOperation {
		t.Fatalf("expected %s, got %s", CodeUnknownOperation, GetCode(wrapped))
	}
	if !IsCode(wrapped, CodeUnknownOperation) {
		t.Fatal("expected IsCode to match")
	}
	if GetMetadata(wrapped)["tool"] != "drop_tables" {
		t.Fatalf("expected metadata, got %v", GetMetadata(wrapped))
	}
	if GetCode(stderrors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
	if GetMetadata(stderrors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := WrapWithMetadata(CodeInvalidFilter, "parse filter", nil, stderrors.New("bad token"))
	if !stderrors.Is(err, New(CodeInvalidFilter, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestCodeClassification(t *testing.T) {
	for _, code := range []Code{CodeInvalidArgument, CodeInvalidFilter, CodeUnknownOperation} {
		if !code.CallerFault() {
			t.Errorf("expected %s to be a caller fault", code)
		}
	}
	for _, code := range []Code{CodeNotFound, CodeDatasetLoadFailed, CodeUnknown} {
		if code.CallerFault() {
			t.Errorf("expected %s not to be a caller fault", code)
		}
	}
}
