package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/octobees/portfolio-contact/api/internal/config"
	"github.com/octobees/portfolio-contact/api/internal/database"
	"github.com/octobees/portfolio-contact/api/internal/handler"
	"github.com/octobees/portfolio-contact/api/internal/logging"
	middlewarepkg "github.com/octobees/portfolio-contact/api/internal/middleware"
	"github.com/octobees/portfolio-contact/api/internal/notify"
	"github.com/octobees/portfolio-contact/api/internal/repository"
	"github.com/octobees/portfolio-contact/api/internal/router"
	"github.com/octobees/portfolio-contact/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()

	store := repository.NewDeferred()
	storeClosers := make(chan database.CloseFunc, 1)
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		superviseStore(runCtx, cfg, store, storeClosers, log)
	}()

	var dispatcher *notify.Dispatcher
	if cfg.Mail.Enabled() {
		notifier, err := notify.NewSMTPNotifier(cfg.Mail)
		if err != nil {
			log.WithError(err).Warn("mail notifications disabled")
		} else {
			dispatcher = notify.NewDispatcher(notifier, cfg.Mail.Timeout, log)
		}
	} else {
		log.Info("mail credentials not set, notifications disabled")
	}

	contactService := service.NewContactService(store, dispatcher, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))

	router.Register(e, cfg, router.Handlers{
		Contact: handler.NewContactHandler(contactService, log),
		Status:  handler.NewStatusHandler(store),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	printBanner(os.Stdout, cfg, e.Routes())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.WithError(err).Warn("pending notifications abandoned")
	}

	stopRun()
	<-supervisorDone
	select {
	case closeStore := <-storeClosers:
		if err := closeStore(shutdownCtx); err != nil {
			log.WithError(err).Warn("close store")
		}
	default:
	}
}

// superviseStore connects the record store in the background and installs it
// into the deferred repository once reachable.
func superviseStore(ctx context.Context, cfg *config.Config, store *repository.Deferred, closers chan<- database.CloseFunc, log logrus.FieldLogger) {
	log = log.WithField("store", cfg.StoreDriver)

	if cfg.StartStoreProcess && cfg.StoreDriver == config.StoreDriverMongo {
		launcher := database.NewMongodLauncher(cfg.MongodPaths, log)
		if err := launcher.Ensure(ctx); err != nil {
			log.WithError(err).Warn("could not start local mongod")
		}
	}

	supervisor := database.NewSupervisor(cfg.StoreRetryInterval, cfg.StoreConnectTimeout, log)
	err := supervisor.Run(ctx, func(ctx context.Context) error {
		repo, closeFn, err := database.Open(ctx, cfg.StoreDriver, cfg.StoreURL)
		if err != nil {
			return err
		}
		store.Set(repo)
		closers <- closeFn
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("store supervisor stopped")
	}
}
