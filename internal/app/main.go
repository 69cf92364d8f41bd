package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Egor213/LogiDash/internal/broker"
	kafkabroker "github.com/Egor213/LogiDash/internal/broker/kafka"
	"github.com/Egor213/LogiDash/internal/config"
	grpcv1 "github.com/Egor213/LogiDash/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogiDash/internal/controller/http/v1"
	"github.com/Egor213/LogiDash/internal/metrics"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/service"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/grpcserver"
	"github.com/Egor213/LogiDash/pkg/httpserver"
	"github.com/Egor213/LogiDash/pkg/logger"
	"github.com/Egor213/LogiDash/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

const healthCheckInterval = 15 * time.Second

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	// Migrations
	if err := Migrate(cfg.PG.URL, cfg.PG.MigrationsPath); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Producer
	var brokerProducer broker.Producer = broker.NoopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		brokerProducer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
	} else {
		log.Info("Kafka brokers are not set, publishing disabled")
	}
	defer func() {
		if err := brokerProducer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}()

	location, err := time.LoadLocation(cfg.Stats.Timezone)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:               repositories,
		Counters:            metricsCnt,
		BrokerProducer:      brokerProducer,
		TxManager:           pg.TrManager,
		StatsLocation:       location,
		DisableRegistration: cfg.Auth.DisableRegistration,
	}
	services := service.NewServices(deps)

	// HTTP server
	log.Infof("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	httpv1.NewRouter(handler, services, metricsCnt, httpv1.RouterConfig{
		IngestRateLimit:  cfg.Ingest.RateLimit,
		IngestRateWindow: cfg.Ingest.RateWindow,
		Metrics:          true,
	})
	httpServer := httpserver.New(handler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	healthReporter := grpcv1.NewHealthReporter(pg.Pool)
	go healthReporter.Run(ctx, healthCheckInterval)
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(healthReporter), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	cancel()
	healthReporter.Shutdown()
	shutdownApp(httpServer, grpcServer, metricsServer)
}

func shutdownApp(httpServer *httpserver.Server, grpcServer *grpcserver.Server, metricsServer *httpserver.Server) {
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}
