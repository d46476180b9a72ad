package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jagannath-p-s/malabareco-sub001/api"
	"github.com/jagannath-p-s/malabareco-sub001/internal/config"
	"github.com/jagannath-p-s/malabareco-sub001/internal/logging"
	"github.com/jagannath-p-s/malabareco-sub001/internal/operator"
	"github.com/jagannath-p-s/malabareco-sub001/internal/service"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, envConfig, logger)
	go svc.Sessions.RunEviction(ctx, time.Minute)

	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.HTTPPort,
		AllowedOrigins: envConfig.CORSAllowedOrigins,
		Service:        svc,
		Storage:        dbStorage,
	}
	httpRest.Serve(ctx)
}
