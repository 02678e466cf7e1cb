package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/railscookie/pkg/logger"
)

// Middleware attaches the verified session to the request context.
// Requests without a valid session pass through unchanged.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := m.Load(r)
		if err != nil {
			m.logRejected(r, err)
			next.ServeHTTP(w, r)
			return
		}

		if id, ok := sess.UserID(); ok {
			m.logger.LogAttrs(r.Context(), slog.LevelDebug, "session attached", logger.UserID(id))
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// RequireAuth only lets requests with an authenticated session through.
// Others are redirected to the login path, or get 401 when none is set.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			var err error
			sess, err = m.Load(r)
			if err != nil {
				m.logRejected(r, err)
				m.deny(w, r)
				return
			}
		}

		if !sess.IsAuthenticated() {
			m.deny(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

func (m *Manager) deny(w http.ResponseWriter, r *http.Request) {
	if m.loginPath != "" {
		http.Redirect(w, r, m.loginPath, http.StatusFound)
		return
	}
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
