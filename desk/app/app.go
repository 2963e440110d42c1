package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/handler"
	"github.com/Astemirdum/library-desk/desk/internal/repository"
	"github.com/Astemirdum/library-desk/desk/internal/server"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/desk/internal/session"
	"github.com/Astemirdum/library-desk/desk/internal/store"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/logger"
	"github.com/Astemirdum/library-desk/pkg/retry"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "desk")

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var enqueuer kafka.Enqueuer
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error("producer.Close", zap.Error(err))
			}
		}()
		enqueuer = kafka.NewEnqueuer(producer)
	} else {
		log.Info("kafka is not configured, failed snapshots are only logged")
	}

	remote := store.NewRemote(cfg.StateHTTPServer, log)
	cb := circuit_breaker.New(
		cfg.Persist.RecordLength,
		cfg.Persist.OpenTimeout,
		cfg.Persist.FailureRatio,
		cfg.Persist.RecoveryRequests,
	)
	persister := store.NewPersister(remote, cb, enqueuer, log,
		retry.WithMaxAttempts(cfg.Persist.MaxAttempts),
		retry.WithBaseDelay(cfg.Persist.BaseDelay),
	)

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return persister.Run(gCtx)
	})

	st := store.New(remote, persister, log)
	loadCtx, cancelLoad := context.WithTimeout(sigCtx, cfg.StateHTTPServer.Timeout)
	st.Load(loadCtx)
	cancelLoad()

	repo := repository.NewRepository(st, log)
	sessions := session.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	svc := service.NewService(repo, sessions, log,
		service.WithLoanDays(cfg.Circulation.LoanDays),
	)

	h := handler.New(svc, svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)

	select {
	case <-sigCtx.Done():
		log.Debug("Graceful shutdown", zap.Error(sigCtx.Err()))
	case <-gCtx.Done():
		log.Error("component stopped", zap.Error(gCtx.Err()))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := persister.Flush(closeCtx); err != nil {
		log.Error("unsaved changes left on shutdown", zap.Error(err))
	}
	cancelRun()
	if err := g.Wait(); err != nil {
		log.Error("errgroup", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
