package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("upload: %w", Ingest(errors.New("no file")))
	if status, code := StatusOf(wrapped); status != http.StatusBadRequest || code != CodeIngest {
		t.Fatalf("StatusOf(ingest) = %d %q", status, code)
	}
	if !IsIngest(wrapped) {
		t.Fatal("IsIngest should see through wrapping")
	}

	if status, code := StatusOf(Store(errors.New("down"))); status != http.StatusInternalServerError || code != CodeStore {
		t.Fatalf("StatusOf(store) = %d %q", status, code)
	}
	if status, _ := StatusOf(errors.New("plain")); status != http.StatusInternalServerError {
		t.Fatalf("StatusOf(plain) = %d", status)
	}
}

func TestUnwrap(t *testing.T) {
	base := errors.New("boom")
	if !errors.Is(Store(base), base) {
		t.Fatal("Store should unwrap to the cause")
	}
	if Store(base).Error() != "boom" {
		t.Fatalf("Error() = %q", Store(base).Error())
	}
}
