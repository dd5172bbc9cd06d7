package session

import (
	"context"

	"github.com/Wozus/Fc-tournament/internal/apperr"
	"github.com/Wozus/Fc-tournament/internal/models"
)

// State is the outcome of resolving a request's session. It travels in the
// request context so handlers never touch cookies themselves.
type State struct {
	User *models.User
	Err  error
}

type ctxKey struct{}

// WithState returns a copy of ctx carrying st.
func WithState(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the resolved session, or an empty State.
func FromContext(ctx context.Context) State {
	st, _ := ctx.Value(ctxKey{}).(State)
	return st
}

// Require returns the authenticated user or the error a protected
// operation must fail with.
func (st State) Require() (models.User, error) {
	if st.Err != nil {
		return models.User{}, st.Err
	}
	if st.User == nil {
		return models.User{}, apperr.Unauthenticated("login required")
	}
	return *st.User, nil
}
