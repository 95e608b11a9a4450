package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fellowship_escrow/internal/domain/errs"
	"fellowship_escrow/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid", usecase.ErrInvalidPrice, http.StatusBadRequest, "INVALID"},
		{"forbidden", usecase.ErrNotChallengeOwner, http.StatusForbidden, "FORBIDDEN"},
		{"not found", usecase.ErrRoomNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"conflict", usecase.ErrChallengeAlreadyAwarded, http.StatusConflict, "CONFLICT"},
		{"invalid state", usecase.ErrEscrowSettled, http.StatusConflict, "INVALID_STATE"},
		{"verification", usecase.ErrPaymentVerification, http.StatusUnprocessableEntity, "VERIFICATION"},
		{"rate limited", usecase.ErrMessageRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"unavailable", errs.Unavailable("store unreachable", errors.New("dial tcp")), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"transport", errs.Transport("relay down", nil), http.StatusServiceUnavailable, "TRANSPORT"},
		{"wrapped", fmt.Errorf("select: %w", usecase.ErrSelectionInFlight), http.StatusConflict, "CONFLICT"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.wantStatus || got.Code != tc.wantCode {
				t.Fatalf("expected %d/%s, got %d/%s", tc.wantStatus, tc.wantCode, got.HTTPStatus, got.Code)
			}
		})
	}

	if msg := mapError(errors.New("secret dsn in here")).ToHTTPError().Message; msg != "An internal error occurred" {
		t.Fatalf("internal cause leaked: %q", msg)
	}
}
