package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
		if e.Error() != "ROOM_NOT_FOUND: Room not found" {
			t.Fatalf("unexpected error string %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "ROOM_NOT_FOUND" || body.Message != "Room not found" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into body")
		}
	})
}
