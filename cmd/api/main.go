package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sharebnb-gmm/pool-party-api/internal/config"
	dbpkg "github.com/sharebnb-gmm/pool-party-api/internal/db"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/routes"
	"github.com/sharebnb-gmm/pool-party-api/internal/storage"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	uploader := storage.NewS3Uploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, uploader)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
