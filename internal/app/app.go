// Package app собирает сервис: пул соединений, unit-of-work, сервисный
// слой, HTTP-сервер, планировщик джоб и диспетчер outbox.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/rentaro/lease-engine/internal/config"
	"github.com/rentaro/lease-engine/internal/event"
	"github.com/rentaro/lease-engine/internal/reconciler"
	"github.com/rentaro/lease-engine/internal/repository/pgrepo"
	"github.com/rentaro/lease-engine/internal/repository/repoargs"
	"github.com/rentaro/lease-engine/internal/service"
	"github.com/rentaro/lease-engine/internal/transport/api"
	"github.com/rentaro/lease-engine/internal/transport/listing"
	"github.com/rentaro/lease-engine/internal/transport/notify"
	"github.com/rentaro/lease-engine/pkg/uow"
)

const (
	shutdownTimeout = 10 * time.Second

	rolloverJobTimeout  = 5 * time.Minute
	expireJobTimeout    = time.Minute
	reconcileJobTimeout = 2 * time.Minute
)

func Run(cfg *config.Config, l *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, poolErr := pgrepo.Connect(ctx, cfg.MigrationsDir, cfg.DatabaseURI, l)
	if poolErr != nil {
		return fmt.Errorf("connecting to database: %w", poolErr)
	}
	defer pool.Close()

	u := uow.NewUnitOfWork(pool)
	factories := map[uow.RepositoryName]uow.RepositoryFactory{
		uow.RepositoryName(repoargs.OrderRepoName): func(db uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(db)
		},
		uow.RepositoryName(repoargs.TerminateRequestRepoName): func(db uow.DBTX) uow.Repository {
			return pgrepo.NewTerminateRequestRepository(db)
		},
		uow.RepositoryName(repoargs.OutboxRepoName): func(db uow.DBTX) uow.Repository {
			return pgrepo.NewOutboxRepository(db)
		},
	}
	for name, factory := range factories {
		if registerErr := u.Register(name, factory); registerErr != nil {
			return fmt.Errorf("registering repository %s: %w", name, registerErr)
		}
	}

	listingClient := listing.NewClient(cfg.ListingAddress)
	notifyClient := notify.NewClient(cfg.NotifyAddress)

	services, servicesErr := service.NewServices(u, listingClient, notifyClient, l)
	if servicesErr != nil {
		return servicesErr //nolint:wrapcheck
	}

	if dispatchErr := startDispatcher(ctx, cfg, u, l); dispatchErr != nil {
		return dispatchErr
	}

	cronSched, cronErr := startJobs(cfg, services, listingClient, l)
	if cronErr != nil {
		return cronErr
	}
	defer cronSched.Stop()

	router := api.NewRouter(api.NewOrdersHandler(services.Order), cfg.JWTSecret, l)
	srv := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	serveErrCh := make(chan error, 1)
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			serveErrCh <- serveErr
		}
	}()
	l.WithField("address", cfg.RunAddress).Info("server started")

	select {
	case <-ctx.Done():
	case serveErr := <-serveErrCh:
		return fmt.Errorf("http server: %w", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("shutting down http server: %w", shutdownErr)
	}
	l.Info("server stopped")
	return nil
}

// startDispatcher запускает доставку outbox-событий в RabbitMQ. Без
// брокера сервис работает, события копятся в outbox.
func startDispatcher(ctx context.Context, cfg *config.Config, u uow.UOW, l *logrus.Logger) error {
	if cfg.AMQPURL == "" {
		l.Warn("AMQP_URL is not set, outbox dispatcher is disabled")
		return nil
	}

	outboxRepo, repoErr := uow.GetRepositoryAs[service.OutboxRepository](
		u, uow.RepositoryName(repoargs.OutboxRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	publisher, pubErr := event.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if pubErr != nil {
		return fmt.Errorf("starting event publisher: %w", pubErr)
	}

	dispatcher := event.NewDispatcher(outboxRepo, publisher, cfg.OutboxFlushInterval, l)
	go func() {
		dispatcher.Run(ctx)
		if closeErr := publisher.Close(); closeErr != nil {
			l.WithError(closeErr).Warn("closing event publisher")
		}
	}()
	return nil
}

func startJobs(
	cfg *config.Config,
	services *service.Services,
	listingClient *listing.Client,
	l *logrus.Logger,
) (*cron.Cron, error) {
	var rs *redsync.Redsync
	if cfg.RedisAddress != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		rs = redsync.New(goredis.NewPool(redisClient))
	}
	runner := reconciler.NewRunner(rs, l)
	rec := reconciler.New(services.Order, listingClient, l)

	jobs := []struct {
		spec    string
		name    string
		timeout time.Duration
		fn      func(ctx context.Context) error
	}{
		{
			spec:    cfg.RolloverCron,
			name:    "lease_rollover",
			timeout: rolloverJobTimeout,
			fn: func(ctx context.Context) error {
				activated, completed, err := services.Order.RolloverLeases(ctx)
				if err != nil {
					return err
				}
				if activated > 0 || completed > 0 {
					l.WithFields(logrus.Fields{
						"activated": activated,
						"completed": completed,
					}).Info("lease rollover finished")
				}
				return nil
			},
		},
		{
			spec:    cfg.ExpireCron,
			name:    "unpaid_expiry",
			timeout: expireJobTimeout,
			fn: func(ctx context.Context) error {
				expired, err := services.Order.ExpireStaleUnpaid(ctx, cfg.UnpaidOrderTTL)
				if err != nil {
					return err
				}
				if expired > 0 {
					l.WithField("expired", expired).Info("stale unpaid orders expired")
				}
				return nil
			},
		},
		{
			spec:    cfg.ReconcileCron,
			name:    "listing_drift",
			timeout: reconcileJobTimeout,
			fn: func(ctx context.Context) error {
				_, err := rec.RepairListingDrift(ctx)
				return err
			},
		},
	}

	cronSched := cron.New()
	for _, job := range jobs {
		if _, addErr := cronSched.AddFunc(job.spec, runner.Wrap(job.name, job.timeout, job.fn)); addErr != nil {
			return nil, fmt.Errorf("scheduling job %s: %w", job.name, addErr)
		}
	}
	cronSched.Start()
	return cronSched, nil
}
