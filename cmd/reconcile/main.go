package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cms_backend/internal/config"
	"cms_backend/internal/domain"
	"cms_backend/internal/logging"
	"cms_backend/internal/publisher"
	"cms_backend/internal/service"
	"cms_backend/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	year := flag.Int("year", 0, "target issue year (default: year of the previous month)")
	month := flag.String("month", "", "target issue month name, e.g. March (default: previous month)")
	dryRun := flag.Bool("dry-run", false, "report matches without assigning")
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

	reconciler := service.NewReconciler(
		postgres.NewMagazineStore(db),
		postgres.NewArticleStore(db),
		postgres.NewRunStore(db),
		postgres.NewTransactionManager(db),
		assignmentPublisher,
		logger,
	)

	req := domain.ReconcileRequest{DryRun: *dryRun}
	if *year != 0 {
		req.Year = year
	}
	if *month != "" {
		req.Month = month
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Reconciliation.Timeout)
	defer cancel()

	report, err := reconciler.Reconcile(ctx, req)
	if report != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			logger.Error("failed to write report", "error", encErr)
		}
	}
	if err != nil {
		logger.Error("reconciliation failed", "error", err)
		os.Exit(exitFailure(assignmentPublisher, db))
	}
}

// exitFailure releases connections that os.Exit would skip.
func exitFailure(p service.Publisher, db *sqlx.DB) int {
	if p != nil {
		_ = p.Close()
	}
	_ = db.Close()
	return 1
}
