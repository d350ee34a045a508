package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/northlightstudio/studio-booking/internal/config"
	dbpkg "github.com/northlightstudio/studio-booking/internal/db"
	"github.com/northlightstudio/studio-booking/internal/middleware"
	"github.com/northlightstudio/studio-booking/internal/routes"
	"github.com/northlightstudio/studio-booking/pkg/logging"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
