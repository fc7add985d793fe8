package web

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	"github.com/agrosmart-advisor/server/internal/session"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

const (
	headerRequestID = "X-Request-ID"
	ctxKeySession   = "session"
)

// requestLogger tags each request with an id and a scoped zerolog logger, and
// writes one access line when the handler returns.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(headerRequestID, requestID)

		l := logx.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(logx.WithContext(c.Request.Context(), l))

		c.Next()

		status := c.Writer.Status()
		ev := l.Info()
		if status >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recoverPanic logs a recovered panic through the request logger and shows
// the error page.
func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	logx.Ctx(c.Request.Context()).Error().
		Interface("panic", recovered).
		Str("stack", string(debug.Stack())).
		Msg("panic recovered")
	h.renderHTTPError(c, fmt.Errorf("panic: %v", recovered), http.StatusInternalServerError)
	c.Abort()
}

// loadSession attaches the visitor's session. Visitors without a stored
// session get an unsaved one; it is persisted by saveSession on the first
// change. A failing store degrades to defaults.
func (h *Handler) loadSession(c *gin.Context) {
	ctx := c.Request.Context()

	sess := &session.Session{}
	if id, ok := session.ReadCookie(c.Request, h.signer); ok {
		s, err := h.sessions.Get(ctx, id)
		switch {
		case err != nil:
			logx.Ctx(ctx).Warn().Err(err).Msg("session store unavailable, serving defaults")
		case s != nil:
			if err := h.sessions.Touch(ctx, id); err != nil {
				logx.Ctx(ctx).Warn().Err(err).Msg("failed to extend session")
			}
			// Reissue so the browser-side expiry slides with the server-side one.
			session.SetCookie(c.Writer, h.signer, s.ID, h.cookie)
			sess = s
		}
	}

	c.Set(ctxKeySession, sess)
	c.Next()
}

// requireOnboarding sends visitors back to the first unfinished setup screen.
func (h *Handler) requireOnboarding(c *gin.Context) {
	if next := currentSession(c).Profile.NextOnboardingStep(); next != "" {
		c.Redirect(http.StatusFound, next)
		c.Abort()
		return
	}
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return &session.Session{}
}

func currentVisitor(c *gin.Context) model.Visitor {
	return currentSession(c).Visitor()
}

// saveSession persists s, giving it an id and a cookie on its first write.
func (h *Handler) saveSession(c *gin.Context, s *session.Session) error {
	created := s.ID == ""
	if created {
		id, err := session.GenerateID()
		if err != nil {
			return err
		}
		s.ID = id
	}

	s.UpdatedAt = h.now()
	if err := h.sessions.Save(c.Request.Context(), *s); err != nil {
		if created {
			s.ID = ""
		}
		return fmt.Errorf("save session: %w", err)
	}
	if created {
		session.SetCookie(c.Writer, h.signer, s.ID, h.cookie)
	}
	return nil
}

// clearSession deletes the stored session and expires the cookie.
func (h *Handler) clearSession(c *gin.Context, s *session.Session) error {
	if s.ID != "" {
		if err := h.sessions.Delete(c.Request.Context(), s.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	// Drop the refreshed cookie set by loadSession before expiring it.
	c.Writer.Header().Del("Set-Cookie")
	session.ClearCookie(c.Writer, h.cookie)
	*s = session.Session{}
	return nil
}
