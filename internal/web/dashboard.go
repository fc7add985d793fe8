package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agrosmart-advisor/server/internal/advisor/crops"
)

func (h *Handler) home(c *gin.Context) {
	v := currentVisitor(c)
	w := h.weather.Current(c.Request.Context(), v.City, v.Country)

	h.render(c, http.StatusOK, "home", gin.H{
		"weather": w,
		"crops":   crops.RecommendByBand(w),
	})
}

func (h *Handler) cropCatalog(c *gin.Context) {
	h.render(c, http.StatusOK, "crops", gin.H{
		"crops": h.crops.All(),
	})
}

func (h *Handler) saveCrop(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("crop"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "crop is required"})
		return
	}
	if crop, ok := h.crops.Find(name); ok {
		name = crop.Name
	}

	sess := currentSession(c)
	if sess.SaveCrop(name) {
		if err := h.saveSession(c, sess); err != nil {
			h.renderJSONError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "crop": name})
}

func (h *Handler) savedCrops(c *gin.Context) {
	v := currentVisitor(c)

	type savedView struct {
		Name    string
		Details any
	}
	saved := make([]savedView, 0, len(v.SavedCrops))
	for _, name := range v.SavedCrops {
		view := savedView{Name: name}
		if crop, ok := h.crops.Find(name); ok {
			view.Details = crop
		}
		saved = append(saved, view)
	}

	h.render(c, http.StatusOK, "saved_crops", gin.H{
		"saved": saved,
	})
}
