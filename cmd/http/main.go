package main

import (
	"context"
	"errors"
	"freeslot-service/internal/app/config"
	"freeslot-service/internal/app/delivery/http/controllers"
	"freeslot-service/internal/app/delivery/http/middlewares"
	"freeslot-service/internal/app/delivery/http/routers"
	"freeslot-service/internal/app/drivers/logger"
	"freeslot-service/internal/app/services/core/confirmations"
	"freeslot-service/internal/app/services/core/schedule"
	"freeslot-service/internal/app/services/core/webhook"
	"freeslot-service/internal/app/services/shared/jwtmanager"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		AccessLogger:   accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server running", zap.String("port", internalConfig.App.Port), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
	bootstrap.Shutdown(shutdownCtx)
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Schedule
	scheduleUsecase, err := schedule.NewScheduleUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Email confirmation
	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if errors.Is(err, jwtmanager.ErrSigningDisabled) {
		bootstrap.Logger.Info("Webhook token signing disabled")
		jwtManager = nil
	} else if err != nil {
		return err
	}
	emailConfirmationSender := webhook.NewEmailConfirmationSender(bootstrap.InternalConfig, jwtManager, bootstrap.Logger)
	confirmationUsecase := confirmations.NewConfirmationUsecase(emailConfirmationSender, bootstrap.Logger)
	emailConfirmationController := controllers.NewEmailConfirmationController(bootstrap.Logger, confirmationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.AccessLogger,
		middlewareInstance,
		scheduleController,
		emailConfirmationController,
	)
	return nil
}
