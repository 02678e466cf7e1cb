package session

import (
	"net/http"
	"strings"
)

// Transport extracts the raw session token from a request.
type Transport interface {
	GetToken(r *http.Request) (string, error)
}

// CookieTransport reads the token from a named cookie.
type CookieTransport struct {
	name string
}

// NewCookieTransport returns a transport reading the cookie called name.
func NewCookieTransport(name string) *CookieTransport {
	return &CookieTransport{name: name}
}

// Name returns the cookie name.
func (t *CookieTransport) Name() string {
	return t.name
}

// GetToken returns the raw cookie value. The value is handed to the verifier
// untouched; percent-decoding is the verifier's job.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrSessionNotFound
	}
	return c.Value, nil
}

// HeaderTransport reads the token from a request header.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// HeaderOption is a functional option for HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets the prefix stripped from the header value.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// NewHeaderTransport creates a header-based transport. The default prefix is "Bearer ".
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetToken extracts the session token from the header.
func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(t.headerName))
	if prefix := strings.TrimSpace(t.prefix); prefix != "" {
		value = strings.TrimSpace(strings.TrimPrefix(value, prefix))
	}
	if value == "" {
		return "", ErrSessionNotFound
	}
	return value, nil
}

// CompositeTransport tries several transports in order.
type CompositeTransport struct {
	transports []Transport
}

// NewCompositeTransport creates a composite transport.
func NewCompositeTransport(transports ...Transport) *CompositeTransport {
	return &CompositeTransport{transports: transports}
}

// GetToken returns the token from the first transport that has one.
func (t *CompositeTransport) GetToken(r *http.Request) (string, error) {
	for _, transport := range t.transports {
		token, err := transport.GetToken(r)
		if err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrSessionNotFound
}
