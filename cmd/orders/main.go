package main

import (
	"context"
	"errors"
	"os"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/app"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/config"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/logger"
)

func main() {
	conf := config.MustLoadConfig(config.ServiceOrders)
	l := logger.ForService(logger.New(os.Stdout), string(conf.Service))

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("service stopped")
	}
}
