package auth

import "context"

// Session is the identity of the caller. The zero value means nobody is
// signed in. It is resolved once per request by the auth interceptor and
// handed to services explicitly.
type Session struct {
	UserID string
	Email  string
}

func (s Session) Authenticated() bool { return s.UserID != "" }

// Require returns ErrUnauthenticated for an anonymous session.
func (s Session) Require() error {
	if !s.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session, or the anonymous one.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
