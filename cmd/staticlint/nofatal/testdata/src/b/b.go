package b

import (
	"errors"

	"github.com/sirupsen/logrus"
)

func serve(logger *logrus.Logger) {
	err := errors.New("bind failed")

	logger.Fatal(err)                           // want `call to logrus.Fatal outside package main`
	logger.WithError(err).Fatal("stop")         // want `call to logrus.Fatal outside package main`
	logger.WithError(err).Panicf("state %d", 1) // want `call to logrus.Panicf outside package main`
	logrus.Fatalf("stop: %v", err)              // want `call to logrus.Fatalf outside package main`
	logger.Exit(1)                              // want `call to logrus.Exit outside package main`

	logger.WithError(err).Error("poll failed")
	logger.Info("ok")
}
