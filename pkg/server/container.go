package server

import (
	"github.com/sirupsen/logrus"

	"hello-samples/internal/config"
	"hello-samples/internal/handlers"
	"hello-samples/internal/probe"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         logrus.FieldLogger
	Prober         probe.Prober
	CheckIPHandler *handlers.CheckIPHandler
	HelloHandler   *handlers.HelloHandler
}

// NewContainer wires the handlers with an explicitly configured prober and logger
func NewContainer(cfg *config.Config, log logrus.FieldLogger) *Container {
	checkIPLog := log.WithFields(logrus.Fields{
		"handler":     "checkip",
		"checkip_url": cfg.CheckIP.URL,
	})
	prober := probe.NewHTTPProber(cfg.CheckIP, checkIPLog)

	return &Container{
		Config:         cfg,
		Logger:         log,
		Prober:         prober,
		CheckIPHandler: handlers.NewCheckIPHandler(prober, checkIPLog),
		HelloHandler:   handlers.NewHelloHandler(log.WithField("handler", "hello")),
	}
}
