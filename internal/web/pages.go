package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrosmart-advisor/server/internal/advisor/soil"
)

func (h *Handler) soilIndex(c *gin.Context) {
	h.render(c, http.StatusOK, "soil", gin.H{
		"soils": soil.All(),
	})
}

func (h *Handler) soilDetail(c *gin.Context) {
	st, ok := soil.Lookup(c.Param("soil"))
	if !ok {
		h.notFound(c)
		return
	}
	h.render(c, http.StatusOK, "soil_detail", gin.H{
		"soil": st,
	})
}

func (h *Handler) searchPage(c *gin.Context) {
	res := h.search.Search(c.Request.Context(), c.Query("q"))
	h.render(c, http.StatusOK, "search", gin.H{
		"query":   res.Query,
		"results": res.Results,
		"ai":      res.AI,
	})
}
