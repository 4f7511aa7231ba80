package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/services/directory"
)

const (
	sessionCookie = "athena_session"
	sessionKey    = "session"
)

// ErrNoSession is returned to clients that post to the page without a live session.
var ErrNoSession = echo.NewHTTPError(http.StatusBadRequest, "no active session, reload the page")

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, sl.Err(err))
			}
			log.DebugContext(req.Context(), "Request served", attrs...)

			return nil
		}
	}
}

// requireSession resolves the session cookie and rejects requests without a live session.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := s.lookupSession(c)
		if !ok {
			return ErrNoSession
		}
		c.Set(sessionKey, sess)

		return next(c)
	}
}

func (s *Server) lookupSession(c echo.Context) (*directory.Session, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return s.store.Get(cookie.Value)
}

func sessionFrom(c echo.Context) *directory.Session {
	sess, _ := c.Get(sessionKey).(*directory.Session)
	return sess
}

func setSessionCookie(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
