package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	base := errors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error is upstream", base, Upstream},
		{"validation", Validationf("bad %s", "input"), Validation},
		{"wrapped conflict", fmt.Errorf("create user: %w", Conflictf("taken")), Conflict},
		{"configuration", Misconfigured("no store", base), Configuration},
		{"forbidden", Forbidden("nope"), Authorization},
		{"unauthenticated", Unauthenticated("login"), Authentication},
		{"not found", NotFoundf("missing %d", 1), NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	cause := errors.New("duplicate key")
	if got := Message(Conflictf("Username taken")); got != "Username taken" {
		t.Errorf("conflict message = %q", got)
	}
	if got := Message(&Error{Kind: Upstream, Message: "insert match", Err: cause}); got != "insert match: duplicate key" {
		t.Errorf("upstream message = %q", got)
	}
	if got := Message(cause); got != "duplicate key" {
		t.Errorf("plain message = %q", got)
	}
	if !errors.Is(Misconfigured("x", cause), cause) {
		t.Error("Misconfigured should unwrap to its cause")
	}
}
