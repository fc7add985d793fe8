package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errx "github.com/agrosmart-advisor/server/internal/core/error"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

// render executes a named template with the data every page shares.
func (h *Handler) render(c *gin.Context, code int, name string, payload gin.H) {
	data := gin.H{
		"visitor":   currentVisitor(c),
		"path":      c.Request.URL.Path,
		"ai_search": h.search.AIEnabled(),
	}
	for k, v := range payload {
		data[k] = v
	}
	c.HTML(code, name, data)
}

// renderHTTPError shows the error page. code is used unless err carries its own status.
func (h *Handler) renderHTTPError(c *gin.Context, err error, code int) {
	if status := errx.StatusOf(err); status != http.StatusInternalServerError {
		code = status
	}
	logx.Ctx(c.Request.Context()).Error().Err(err).Int("status", code).Msg("request error")

	c.HTML(code, "error", gin.H{
		"visitor":     currentVisitor(c),
		"path":        c.Request.URL.Path,
		"status_code": code,
		"status":      http.StatusText(code),
		"message":     errx.MessageOf(err),
	})
}

// renderJSONError answers JSON endpoints with the errx status and safe message.
func (h *Handler) renderJSONError(c *gin.Context, err error) {
	code := errx.StatusOf(err)
	logx.Ctx(c.Request.Context()).Error().Err(err).Int("status", code).Msg("request error")
	c.JSON(code, gin.H{"status": "error", "error": errx.MessageOf(err)})
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"visitor":     currentVisitor(c),
		"path":        c.Request.URL.Path,
		"status_code": http.StatusNotFound,
		"status":      http.StatusText(http.StatusNotFound),
		"message":     "page not found",
	})
}

func (h *Handler) staticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, name, nil)
	}
}
