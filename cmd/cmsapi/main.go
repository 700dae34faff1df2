package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cms_backend/internal/config"
	"cms_backend/internal/httpapi"
	"cms_backend/internal/logging"
	"cms_backend/internal/publisher"
	"cms_backend/internal/scheduler"
	"cms_backend/internal/service"
	"cms_backend/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := logging.New("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = logging.New(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	publications := postgres.NewPublicationStore(db)
	categories := postgres.NewCategoryStore(db)
	magazines := postgres.NewMagazineStore(db)
	articles := postgres.NewArticleStore(db)
	runs := postgres.NewRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	var assignmentPublisher service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		assignmentPublisher = rabbitMQ
	}

	reconciler := service.NewReconciler(magazines, articles, runs, txManager, assignmentPublisher, logger)
	articleService := service.NewArticleService(publications, categories, articles)
	trendingMixer := service.NewTrendingMixer(publications, categories, articles, logger, cfg.Trending)
	magazineService := service.NewMagazineService(publications, magazines, articles, runs, txManager, logger)

	handler := httpapi.NewHandler(articleService, trendingMixer, reconciler, magazineService, db, logger)
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schedDone := make(chan struct{})
	if cfg.Reconciliation.Enabled {
		sched, err := scheduler.NewScheduler(reconciler, cfg.Reconciliation, logger)
		if err != nil {
			logger.Error("failed to create scheduler", "error", err)
			os.Exit(1)
		}
		go func() {
			defer close(schedDone)
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	} else {
		close(schedDone)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server error", "error", err)
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	<-schedDone
	logger.Info("shutdown complete")
}
