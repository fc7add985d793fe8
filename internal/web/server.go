package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrosmart-advisor/server/internal/advisor/crops"
	"github.com/agrosmart-advisor/server/internal/advisor/market"
	"github.com/agrosmart-advisor/server/internal/advisor/model"
	"github.com/agrosmart-advisor/server/internal/advisor/search"
	"github.com/agrosmart-advisor/server/internal/core"
	"github.com/agrosmart-advisor/server/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// WeatherSource reports current conditions; it never fails.
type WeatherSource interface {
	Current(ctx context.Context, city, country string) model.Weather
}

// PriceSource serves market prices; it never fails.
type PriceSource interface {
	Prices(ctx context.Context) market.Result
}

// Deps is everything the handlers need. All fields are required.
type Deps struct {
	Environment core.Environment
	Sessions    session.Store
	Session     model.SessionConfig
	Weather     WeatherSource
	Market      PriceSource
	Crops       *crops.Catalog
	Search      *search.Service
}

type Handler struct {
	env      core.Environment
	sessions session.Store
	signer   *session.Signer
	cookie   session.CookieOptions
	weather  WeatherSource
	market   PriceSource
	crops    *crops.Catalog
	search   *search.Service
	now      func() time.Time
}

func NewHandler(d Deps) (*Handler, error) {
	switch {
	case d.Sessions == nil:
		return nil, fmt.Errorf("session store is nil")
	case d.Weather == nil:
		return nil, fmt.Errorf("weather source is nil")
	case d.Market == nil:
		return nil, fmt.Errorf("price source is nil")
	case d.Crops == nil:
		return nil, fmt.Errorf("crop catalog is nil")
	case d.Search == nil:
		return nil, fmt.Errorf("search service is nil")
	}

	return &Handler{
		env:      d.Environment,
		sessions: d.Sessions,
		signer:   session.NewSigner(d.Session.Secret),
		cookie:   session.CookieOptions{Secure: d.Session.CookieSecure, MaxAge: d.Session.TTL},
		weather:  d.Weather,
		market:   d.Market,
		crops:    d.Crops,
		search:   d.Search,
		now:      time.Now,
	}, nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	h, err := NewHandler(d)
	if err != nil {
		return nil, err
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	gin.SetMode(d.Environment.GinMode())
	router := gin.New()
	router.Use(requestLogger(), gin.CustomRecoveryWithWriter(io.Discard, h.recoverPanic))
	router.SetHTMLTemplate(tmpl)

	h.RegisterRoutes(router)
	return router, nil
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(h.loadSession, h.notFound)

	web := r.Group("/")
	web.Use(h.loadSession)

	// onboarding
	web.GET("/", h.languagePage)
	web.POST("/set-language", h.setLanguage)
	web.GET("/register", h.registerPage)
	web.POST("/register", h.register)
	web.GET("/login", h.staticPage("login"))
	web.POST("/logout", h.logout)
	web.GET("/permissions", h.permissionsPage)
	web.POST("/permissions", h.grantPermissions)

	// dashboard
	web.GET("/home", h.requireOnboarding, h.home)
	web.POST("/home", h.requireOnboarding, h.home)
	web.GET("/crops", h.cropCatalog)
	web.POST("/save-crop", h.saveCrop)
	web.GET("/saved_crops", h.savedCrops)

	// market
	web.GET("/market", h.marketPage)
	web.GET("/api/market-prices", h.marketPricesJSON)

	// static information
	web.GET("/Sell", h.staticPage("sell"))
	web.GET("/buyhere", h.staticPage("buyhere"))
	web.GET("/help", h.staticPage("help"))
	web.GET("/soil", h.soilIndex)
	web.GET("/soil-detail/:soil", h.soilDetail)

	web.GET("/search", h.searchPage)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
		"clock": func(t time.Time) string {
			if t.IsZero() {
				return "unknown"
			}
			return t.Local().Format("02 Jan 2006 15:04")
		},
		"round": func(f float64) string {
			return fmt.Sprintf("%.0f", f)
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
