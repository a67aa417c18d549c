package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"carrental/internal/config"
	"carrental/internal/database"
	"carrental/internal/middleware"
	"carrental/internal/modules/admin"
	"carrental/internal/modules/auth"
	"carrental/internal/modules/booking"
	"carrental/internal/modules/contact"
	"carrental/internal/modules/inventory"
	"carrental/internal/modules/notification"
	jwtsvc "carrental/internal/pkg/jwt"
	"carrental/internal/pkg/mailer"
	"carrental/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	feed := notification.NewBookingFeed(hub)
	notificationHandler := notification.NewHandler(hub)

	authService := auth.NewService(profileRepo, j, cfg.AdminUsername, cfg.AdminPassword)
	authHandler := auth.NewHandler(authService)

	inventoryService := inventory.NewService(carRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	bookingService := booking.NewService(bookingRepo, carRepo, feed)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(bookingService, carRepo)
	adminHandler := admin.NewHandler(adminService)

	var sender mailer.Sender
	if cfg.MailServiceID != "" && cfg.MailTemplateID != "" {
		sender = mailer.New(cfg.MailServiceID, cfg.MailTemplateID, cfg.MailPublicKey)
	}
	contactHandler := contact.NewHandler(sender)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		inventoryHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterRoutes(v1)

		// signed-in customers and the admin
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			authHandler.RegisterProfileRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}

		// admin only
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			inventoryHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		log.Println("Listening on", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
