package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/jagannath-p-s/malabareco-sub001/internal/config"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	preMigrationVersion, postMigrationVersion, err := storage.Migrate(dbStorage.SQL, "file://migrations")
	if err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
