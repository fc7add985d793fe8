package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrosmart-advisor/server/internal/advisor/market"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
)

func (h *Handler) marketPage(c *gin.Context) {
	res := h.market.Prices(c.Request.Context())

	preview := res.Prices
	if len(preview) > 3 {
		preview = preview[:3]
	}
	logx.Ctx(c.Request.Context()).Debug().
		Str("source", string(res.Source)).
		Interface("first_records", preview).
		Msg("market prices served")

	h.render(c, http.StatusOK, "market", gin.H{
		"prices":     res.Prices,
		"fetched_at": res.FetchedAt,
		"stale":      res.Source == market.SourceStale,
		"fallback":   res.Source == market.SourceFallback,
	})
}

func (h *Handler) marketPricesJSON(c *gin.Context) {
	res := h.market.Prices(c.Request.Context())
	c.Header("X-Prices-Source", string(res.Source))
	c.JSON(http.StatusOK, res.Prices)
}
