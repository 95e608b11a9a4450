package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	sentinel := Conflict("challenge is already being processed")

	t.Run("direct", func(t *testing.T) {
		if KindOf(sentinel) != KindConflict {
			t.Fatalf("expected conflict, got %q", KindOf(sentinel))
		}
	})

	t.Run("wrapped with fmt", func(t *testing.T) {
		err := fmt.Errorf("select: %w", sentinel)
		if !Is(err, KindConflict) {
			t.Fatalf("expected conflict through wrap")
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected errors.Is to match sentinel")
		}
	})

	t.Run("sentinel with cause", func(t *testing.T) {
		cause := errors.New("ddb timeout")
		err := With(sentinel, cause)
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel identity to survive With")
		}
		if !errors.Is(err, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if err.Error() != "challenge is already being processed: ddb timeout" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("plain error", func(t *testing.T) {
		if KindOf(errors.New("boom")) != "" {
			t.Fatalf("expected empty kind")
		}
		if Is(nil, KindConflict) {
			t.Fatalf("nil must not match")
		}
	})

	t.Run("different messages do not match", func(t *testing.T) {
		if errors.Is(InvalidState("a"), InvalidState("b")) {
			t.Fatalf("expected distinct sentinels")
		}
	})
}
