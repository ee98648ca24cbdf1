package session

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sessionKey ctxKey = "session"

// Middleware resolves the bearer token on each request into the owning
// session and puts it on the request context.
type Middleware struct {
	store  *Store
	secret []byte
}

func NewMiddleware(store *Store, secret []byte) Middleware {
	return Middleware{store: store, secret: secret}
}

func (m Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(h, "Bearer ")
		id, err := ParseToken(m.secret, tokenString)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		sess, ok := m.store.Get(id)
		if !ok {
			http.Error(w, "unknown session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx))
	}
}

// FromContext returns the session the middleware attached.
func FromContext(ctx context.Context) (*Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}
