package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/config"
	"github.com/cristianadrielbraun/qrcanvas.link/internal/handlers"
	"github.com/cristianadrielbraun/qrcanvas.link/web/pages"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// Static assets and uploaded logos
	r.Static("/web/static", "web/static")
	r.Static("/uploads", cfg.UploadDir)

	// API routes
	h := handlers.New(cfg, log)
	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/logo", h.UploadLogo)
		api.POST("/htmx/toast", h.GenericToast)
	}

	r.GET("/sitemap.xml", h.SitemapXML)

	// Pages
	r.GET("/", func(c *gin.Context) {
		if err := pages.HomePage().Render(c.Request.Context(), c.Writer); err != nil {
			c.String(500, err.Error())
		}
	})

	log.Info("qrcanvas.link listening", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
