package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/railscookie/pkg/logger"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
)

// DefaultCookieName is the session cookie set by the news application.
const DefaultCookieName = "_news_session"

// Verifier turns a raw token into a session mapping.
// *railscookie.Verifier satisfies it.
type Verifier interface {
	Verify(token string) (railscookie.Session, error)
}

// Manager loads verified sessions for incoming requests.
type Manager struct {
	verifier  Verifier
	transport Transport
	logger    *slog.Logger
	loginPath string
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithTransport sets a custom token transport.
func WithTransport(t Transport) Option {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
}

// WithCookieName reads the token from the named cookie.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.transport = NewCookieTransport(name)
	}
}

// WithLogger sets the logger used to report rejected cookies.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithLoginRedirect makes RequireAuth redirect anonymous requests to path
// instead of answering 401.
func WithLoginRedirect(path string) Option {
	return func(m *Manager) {
		m.loginPath = path
	}
}

// NewManager creates a Manager. Without options it reads DefaultCookieName
// and logs through slog.Default().
func NewManager(v Verifier, opts ...Option) *Manager {
	m := &Manager{
		verifier:  v,
		transport: NewCookieTransport(DefaultCookieName),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("session"))
	return m
}

// Load extracts and verifies the session carried by r.
// It returns ErrSessionNotFound when there is no token and
// ErrInvalidSession joined with the verifier error otherwise.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	values, err := m.verifier.Verify(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}

	return New(values), nil
}

func (m *Manager) logRejected(r *http.Request, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		return
	}

	level := slog.LevelInfo
	if errors.Is(err, railscookie.ErrAuthenticationFailed) {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(r.Context(), level, "session cookie rejected",
		logger.ErrorCategory(err),
		logger.RemoteAddr(r.RemoteAddr),
	)
}
