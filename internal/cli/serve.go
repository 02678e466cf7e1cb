package cli

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/railscookie/pkg/httpserver"
	"github.com/dmitrymomot/railscookie/pkg/logger"
	"github.com/dmitrymomot/railscookie/pkg/railscookie"
	"github.com/dmitrymomot/railscookie/pkg/session"
)

func (a *app) serveCommand() *cobra.Command {
	var (
		addr      string
		loginPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local debug endpoint that shows the caller's verified session",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.cookieConfig()
			if err != nil {
				return err
			}
			v, err := railscookie.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr = addr
			}

			mgr := newManager(v, cfg.CookieName, a.log, loginPath)
			srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("serving session debug endpoint",
				logger.CookieName(cfg.CookieName),
				logger.TokenFormat(v.Format()),
			)
			return srv.Run(ctx, newRouter(mgr, a.log))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address ($HTTP_ADDR)")
	cmd.Flags().StringVar(&loginPath, "login-path", "", "redirect unauthenticated /session/user requests here instead of answering 401")

	return cmd
}

// newManager accepts the session from the named cookie or, for tools that
// cannot set cookies, from "Authorization: Bearer <token>".
func newManager(v session.Verifier, cookieName string, log *slog.Logger, loginPath string) *session.Manager {
	return session.NewManager(v,
		session.WithTransport(session.NewCompositeTransport(
			session.NewCookieTransport(cookieName),
			session.NewHeaderTransport("Authorization"),
		)),
		session.WithLogger(log),
		session.WithLoginRedirect(loginPath),
	)
}

type sessionResponse struct {
	Authenticated bool                `json:"authenticated"`
	UserID        *int64              `json:"user_id,omitempty"`
	Session       railscookie.Session `json:"session,omitempty"`
}

func newRouter(mgr *session.Manager, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	r.Group(func(r chi.Router) {
		r.Use(mgr.Middleware)
		r.Get("/session", func(w http.ResponseWriter, r *http.Request) {
			resp := sessionResponse{}
			if s, ok := session.FromContext(r.Context()); ok {
				resp.Session = s.Values()
				if id, ok := s.UserID(); ok {
					resp.Authenticated = true
					resp.UserID = &id
				}
			}
			writeJSON(w, log, resp)
		})
		r.With(mgr.RequireAuth).Get("/session/user", func(w http.ResponseWriter, r *http.Request) {
			id, _ := session.UserIDFromContext(r.Context())
			writeJSON(w, log, sessionResponse{Authenticated: true, UserID: &id})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("write response", logger.Error(err))
	}
}
