package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/delivery/http/routers"
	"timetable-service/internal/app/drivers/database"
	"timetable-service/internal/app/drivers/logger"
	"timetable-service/internal/app/drivers/messaging"
	"timetable-service/internal/app/services/classes"
	"timetable-service/internal/app/services/settings"
	"timetable-service/internal/app/services/shared/notifications"
	redisrepo "timetable-service/internal/app/services/shared/redis"
	"timetable-service/internal/app/services/timetable"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	accessLog := logger.NewAccessLogger(driverConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		accessLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLog,
		AccessLog:      accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			accessLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		accessLog.Fatalf("Server forced to shutdown: %v", err)
	}

	accessLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	eventPublisher, err := notifications.NewTimetableEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQTimetableQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.AccessLog.Fatalf("Failed to initialize timetable event publisher: %v", err)
	}

	// Middlewares
	m := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.Logger)

	// Classes
	classMongoRepository := classes.NewClassMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	classRepository := classes.NewCachedClassRepository(
		classMongoRepository,
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.ClassCacheTTLSeconds)*time.Second,
		bootstrap.Logger,
	)

	// School settings
	schoolSettingsRepository := settings.NewSchoolSettingsMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Timetable
	timetableRepository := timetable.NewTimetableMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	timetableUsecase := timetable.NewTimetableUsecase(
		timetableRepository,
		classRepository,
		schoolSettingsRepository,
		eventPublisher,
		bootstrap.Logger,
	)
	timetableController := controllers.NewTimetableController(timetableUsecase, bootstrap.Logger)

	bootstrap.Router.Use(m.RequestLogger(bootstrap.AccessLog))
	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, m, timetableController)
}
