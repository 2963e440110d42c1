package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/logger"
	"github.com/Astemirdum/library-desk/pkg/postgres"
	"github.com/Astemirdum/library-desk/state/config"
	"github.com/Astemirdum/library-desk/state/internal/handler"
	"github.com/Astemirdum/library-desk/state/internal/repository"
	"github.com/Astemirdum/library-desk/state/internal/server"
	"github.com/Astemirdum/library-desk/state/internal/service"
	"github.com/Astemirdum/library-desk/state/migrations"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "state")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StateConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.SaveState, log), kafka.StateTopic); err != nil {
				log.Error("kafka.Consume", zap.Error(err))
			}
		}()
	} else {
		log.Info("kafka is not configured, fallback snapshots are not consumed")
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if err := db.Close(); err != nil {
		log.Error("db.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
