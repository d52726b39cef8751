package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus_portal/internal/api"
	"campus_portal/internal/app/service"
	"campus_portal/internal/app/session"
	"campus_portal/internal/common/security"
	"campus_portal/internal/domain/repository"
	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"
	"campus_portal/internal/platform/config"
	"campus_portal/internal/platform/logging"
	"campus_portal/internal/platform/redisconn"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.Load()

	// 2. Initialize Logging
	logging.Init()
	defer logging.Sync()
	logging.L.Info("Configuration loaded")

	// 3. Initialize Session JWT
	security.InitJWT()

	// 4. Initialize Redis (session persistence)
	redisconn.Connect()
	defer redisconn.Close()

	// 5. Initialize Campus API Client & Cache
	client := campus.NewClient(
		config.AppConfig.CampusAPIBaseURL,
		config.AppConfig.CampusAPITimeout,
		config.AppConfig.QueryRetryMax,
	)
	queryCache := cache.New(config.AppConfig.CacheTTL)
	uploader := campus.NewUploader(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryUploadPreset,
	)

	// 6. Initialize Session Manager
	sessionRepo := repository.NewRedisSessionRepository(
		redisconn.RDB,
		config.AppConfig.SessionKeyPrefix,
		config.AppConfig.SessionTTL,
	)
	sessions := session.NewManager(sessionRepo, client.Auth)

	// 7. Initialize Resource Services
	svcs := api.Services{
		Sessions: sessions,
		AuthAPI:  client.Auth,
		Users:    service.NewUsersService(client.Users, queryCache),
		Events:   service.NewEventsService(client.Events, queryCache),
		Notices:  service.NewNoticesService(client.Notices, queryCache),
		Programs: service.NewProgramsService(client.Programs, queryCache),
		Blogs:    service.NewBlogsService(client.Blogs, queryCache),
		Uploader: uploader,
	}

	// 8. Start Cache Janitor (as a goroutine)
	janitorCtx, janitorCancel := context.WithCancel(context.Background())
	defer janitorCancel()
	go queryCache.StartJanitor(janitorCtx, config.AppConfig.CacheTTL)

	// 9. Initialize Router & HTTP Server
	router := api.NewRouter(svcs)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 10. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.L.Info("Server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L.Fatal("Could not start server", zap.Error(err))
		}
	}()

	<-stop

	logging.L.Info("Shutting down server...")
	janitorCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.L.Fatal("Server shutdown failed", zap.Error(err))
	}

	logging.L.Info("Server stopped gracefully")
}
