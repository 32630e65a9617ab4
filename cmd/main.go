package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lakesidedc/club-server/cmd/app"
	"github.com/lakesidedc/club-server/internal/adapters/config"
	"github.com/lakesidedc/club-server/pkg/logger"

	_ "time/tzdata"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		// Committed schema stays intact; nothing to roll back here.
		logger.Log.Fatalf("initialization failed: %+v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Log.Info("shutting down")
		a.Close()
	}()

	if err = a.Run(); err != nil {
		logger.Log.Fatalf("server stopped: %v", err)
	}
}
