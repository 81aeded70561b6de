package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/audit"
	"github.com/sharebnb-gmm/pool-party-api/internal/config"
	"github.com/sharebnb-gmm/pool-party-api/internal/handlers"
	infraRepo "github.com/sharebnb-gmm/pool-party-api/internal/infra/repository"
	"github.com/sharebnb-gmm/pool-party-api/internal/middleware"
	"github.com/sharebnb-gmm/pool-party-api/internal/storage"
	ucReservation "github.com/sharebnb-gmm/pool-party-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, uploader storage.Uploader) {

	// ======================================================
	// INFRA
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)

	listForPoolUC := ucReservation.NewListReservationsForPool(reservationRepo)

	listForUserUC := ucReservation.NewListReservationsForUser(reservationRepo)

	deleteReservationUC := ucReservation.NewDeleteReservation(
		reservationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, uploader)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	poolHandler := handlers.NewPoolHandler(db, uploader, auditDispatcher)
	messageHandler := handlers.NewMessageHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		getReservationUC,
		listForPoolUC,
		listForUserUC,
		deleteReservationUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/users", userHandler.List)
		api.GET("/users/:username", userHandler.Get)
		api.GET("/users/:username/pools", userHandler.ListPools)

		api.GET("/pools", poolHandler.List)
		api.GET("/pools/:id", poolHandler.Get)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/logs", meHandler.Logs)

			secured.PATCH("/users/:username", userHandler.Update)
			secured.DELETE("/users/:username", userHandler.Delete)

			secured.POST("/pools", poolHandler.Create)
			secured.PATCH("/pools/:id", poolHandler.Update)
			secured.DELETE("/pools/:id", poolHandler.Delete)
			secured.POST("/pools/:id/images", poolHandler.AddImage)
			secured.GET("/pools/:id/reservations", reservationHandler.ListForPool)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.GET("/reservations", reservationHandler.ListOwn)
			secured.POST("/reservations/:id", reservationHandler.Create)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			// ------------------------------
			// MESSAGES
			// ------------------------------
			secured.GET("/messages", messageHandler.List)
			secured.POST("/messages", messageHandler.Create)
			secured.GET("/messages/:id", messageHandler.Get)
		}
	}
}
