package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindForbidden, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindUpstream, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := New(tc.kind, "x").HTTPStatus(); got != tc.want {
			t.Fatalf("kind %d: expected status %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestGetKindFindsWrappedError(t *testing.T) {
	err := fmt.Errorf("update call status: %w", NotFound("follow-up task not found"))

	if !Is(err, KindNotFound) {
		t.Fatalf("expected wrapped not found error to be detected, got kind %d", GetKind(err))
	}
	if Is(errors.New("plain"), KindNotFound) {
		t.Fatal("plain errors must not report a kind")
	}
}

func TestUpstreamKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Upstream("member", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected upstream error to unwrap to its cause")
	}
	if err.Error() != "member lookup failed: connection reset" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
