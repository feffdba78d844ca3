package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/rabbitmq"
	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers"
	"github.com/fredymanu76/lms-platform-sub001/internal/handlers/middleware"
	"github.com/fredymanu76/lms-platform-sub001/internal/mailer"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository/cache"
	"github.com/fredymanu76/lms-platform-sub001/internal/repository/database"
	"github.com/fredymanu76/lms-platform-sub001/internal/server"
	"github.com/fredymanu76/lms-platform-sub001/internal/service"
	"go.uber.org/zap"
)

type ClassroomApplication struct {
	config configs.Config
	logger *zap.Logger
	server *server.Server
}

func NewClassroomApplication(config configs.Config, logger *zap.Logger) *ClassroomApplication {
	return &ClassroomApplication{config: config, logger: logger}
}

// Start wires every dependency, serves HTTP and blocks until SIGINT/SIGTERM or a
// server failure. Deferred closes run in reverse order of construction.
func (a *ClassroomApplication) Start() error {
	defer func() {
		a.logger.Debug("Count of active goroutines", zap.Int("count", runtime.NumGoroutine()))
	}()
	db, err := database.NewPostgresConnection(a.config.Database, a.logger)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.RunMigrations(); err != nil {
		return err
	}
	redis, err := cache.NewRedisConnection(a.config.Redis, a.logger)
	if err != nil {
		return err
	}
	defer redis.Close()
	metrics.Start()
	defer metrics.Stop(a.logger)
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka, a.logger)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	rabbitproducer, err := rabbitmq.NewRabbitProducer(a.config.RabbitMQ, kafkaProducer, a.logger)
	if err != nil {
		return err
	}
	defer rabbitproducer.Close()
	smtpmailer, err := mailer.NewSMTPMailer(a.config.SMTP, a.logger)
	if err != nil {
		return err
	}
	rabbitconsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, smtpmailer, kafkaProducer, a.logger)
	if err != nil {
		return err
	}
	defer rabbitconsumer.Close()
	booking := a.config.Booking
	sessiondb := database.NewSessionDatabase(db)
	membershipdb := database.NewMembershipDatabase(db)
	membershipcache := cache.NewMembershipCache(redis, booking.MembershipCacheTTL)
	bookinglock := cache.NewBookingLock(redis, booking.LockTTL, booking.LockRetries, booking.LockRetryDelay)
	service := service.NewSessionService(sessiondb, membershipdb, membershipcache, bookinglock, rabbitproducer, kafkaProducer,
		booking.NotificationWorkers, booking.NotificationQueue, a.logger)
	defer service.StopWorkers()
	middleware := middleware.NewMiddleware(a.config.Server, kafkaProducer, a.logger)
	defer middleware.Stop()
	handlers := handlers.NewHandler(service, middleware, kafkaProducer)
	a.server = server.NewServer(a.config.Server, handlers.InitRoutes(), a.logger)
	kafkaProducer.LogStart()
	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- fmt.Errorf("server run failed: %w", err)
			return
		}
		close(serverError)
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)
	select {
	case sig := <-quit:
		a.logger.Debug("Server shutting down with signal", zap.String("signal", sig.String()))
	case err := <-serverError:
		a.logger.Error("Server startup failed", zap.Error(err))
		return err
	}
	return a.Stop()
}

func (a *ClassroomApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	a.logger.Debug("Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	a.logger.Debug("Server has shutted down successfully")
	return nil
}

// Migrate applies pending schema migrations and exits.
func Migrate(config configs.Config, logger *zap.Logger) error {
	db, err := database.NewPostgresConnection(config.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.RunMigrations()
}
