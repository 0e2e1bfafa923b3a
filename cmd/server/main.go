package main

import (
	"log/slog"
	"os"

	"github.com/eldon922/ekklesia-be/internal/config"
	"github.com/eldon922/ekklesia-be/internal/database"
	"github.com/eldon922/ekklesia-be/internal/handlers"
	"github.com/eldon922/ekklesia-be/internal/middleware"
	"github.com/eldon922/ekklesia-be/internal/services"
	"github.com/eldon922/ekklesia-be/internal/ws"
	"github.com/eldon922/ekklesia-be/pkg/logging"

	_ "github.com/eldon922/ekklesia-be/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Ekklesia Check-in API
// @version         1.0
// @description     Event attendance backend with bulk import, duplicate detection and live check-in updates
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}" obtained from the event unlock endpoint

func main() {
	logging.Setup()
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	eventService := services.NewEventService(db)
	attendeeService := services.NewAttendeeService(db)
	importService := services.NewImportService(db)

	eventHandler := handlers.NewEventHandler(eventService, authService)
	attendeeHandler := handlers.NewAttendeeHandler(attendeeService, hub)
	importHandler := handlers.NewImportHandler(importService, attendeeService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/event/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/:id/unlock", eventHandler.UnlockEvent)
			events.GET("/:id/attendees", attendeeHandler.ListAttendees)
			events.GET("/:id/stats", attendeeHandler.GetStats)

			guarded := events.Group("")
			guarded.Use(middleware.EventAuth(authService, eventService))
			{
				guarded.PUT("/:id", eventHandler.UpdateEvent)
				guarded.DELETE("/:id", eventHandler.DeleteEvent)
				guarded.POST("/:id/finish", eventHandler.FinishEvent)
				guarded.POST("/:id/restart", eventHandler.RestartEvent)
				guarded.POST("/:id/attendees", attendeeHandler.AddAttendee)
				guarded.DELETE("/:id/attendees", attendeeHandler.ClearAttendees)
				guarded.POST("/:id/attendees/import", importHandler.ImportAttendees)
				guarded.POST("/:id/attendees/import/confirm", importHandler.ConfirmImport)
				guarded.POST("/:id/attendees/:attendeeId/checkin", attendeeHandler.CheckIn)
				guarded.DELETE("/:id/attendees/:attendeeId/checkin", attendeeHandler.UndoCheckIn)
				guarded.DELETE("/:id/attendees/:attendeeId", attendeeHandler.DeleteAttendee)
			}
		}
	}

	slog.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		slog.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
