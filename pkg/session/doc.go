// Package session exposes verified Rails session cookies to net/http handlers.
//
// A Manager pulls the raw token out of the request through a Transport,
// verifies it with a Verifier (usually a *railscookie.Verifier) and stores
// the result in the request context. Requests carrying no cookie, or a
// cookie that fails verification, continue anonymously: the client is never
// told why its cookie was rejected, while the reason is logged with its
// railscookie error category.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/railscookie/pkg/railscookie"
//	    "github.com/dmitrymomot/railscookie/pkg/session"
//	)
//
//	v, err := railscookie.New([]byte(secretKeyBase),
//	    railscookie.WithPurpose(railscookie.CookiePurpose("_news_session")))
//	if err != nil {
//	    return err
//	}
//
//	mgr := session.NewManager(v,
//	    session.WithLogger(log),
//	    session.WithLoginRedirect("/home/login"),
//	)
//
//	r := chi.NewRouter()
//	r.Use(mgr.Middleware)
//	r.With(mgr.RequireAuth).Get("/feeds", feedsHandler)
//
// Inside a handler:
//
//	if id, ok := session.UserIDFromContext(r.Context()); ok {
//	    // signed-in user
//	}
//
// # Transports
//
// CookieTransport reads a named cookie and is the default. HeaderTransport
// reads a header such as "Authorization: Bearer <token>", which is handy for
// debugging tools that cannot set cookies. CompositeTransport tries several
// transports in order.
package session
