package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gestor-oficina/ledger-server/api"
	"github.com/gestor-oficina/ledger-server/internal/config"
	"github.com/gestor-oficina/ledger-server/internal/logging"
	"github.com/gestor-oficina/ledger-server/internal/operator"
	"github.com/gestor-oficina/ledger-server/internal/service"
	"github.com/gestor-oficina/ledger-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	writeOperator := operator.NewOperatorDelegator(dbStorage)
	writeOperator.Start()

	svc := service.NewService(dbStorage, writeOperator, envConfig)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
