package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/PrayerWall/initializers"
	"github.com/PrayerWall/middlewares"
	"github.com/PrayerWall/routes"
)

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()
	initializers.InitLogger(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := initializers.InitStorage(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.SetupRouter(store, middlewares.NewMetrics()),
	}

	go func() {
		log.Printf("Serving on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown failed: %v", err)
	}
}
