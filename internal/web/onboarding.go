package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

func (h *Handler) languagePage(c *gin.Context) {
	h.render(c, http.StatusOK, "language", gin.H{
		"languages": model.Languages,
	})
}

func (h *Handler) setLanguage(c *gin.Context) {
	sess := currentSession(c)
	sess.Profile.Language = model.NormalizeLanguage(c.DefaultPostForm("language", "en"))
	if err := h.saveSession(c, sess); err != nil {
		h.renderHTTPError(c, err, http.StatusInternalServerError)
		return
	}
	logx.Ctx(c.Request.Context()).Debug().Str("language", sess.Profile.Language).Msg("language selected")
	c.Redirect(http.StatusFound, "/register")
}

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register", nil)
}

func (h *Handler) register(c *gin.Context) {
	sess := currentSession(c)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		name = model.DefaultVisitor.Name
	}
	sess.Profile.Name = name
	if city := strings.TrimSpace(c.PostForm("city")); city != "" {
		sess.Profile.City = city
	}
	if country := strings.TrimSpace(c.PostForm("country")); country != "" {
		sess.Profile.Country = strings.ToUpper(country)
	}

	if err := h.saveSession(c, sess); err != nil {
		h.renderHTTPError(c, err, http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/permissions")
}

func (h *Handler) permissionsPage(c *gin.Context) {
	h.render(c, http.StatusOK, "permissions", nil)
}

func (h *Handler) grantPermissions(c *gin.Context) {
	sess := currentSession(c)
	sess.Profile.PermissionsGranted = true
	if err := h.saveSession(c, sess); err != nil {
		h.renderHTTPError(c, err, http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// logout forgets the visitor and starts onboarding again.
func (h *Handler) logout(c *gin.Context) {
	if err := h.clearSession(c, currentSession(c)); err != nil {
		h.renderHTTPError(c, err, http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
