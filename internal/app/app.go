package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/smarttoystore/dashboard/internal/config"
	"github.com/smarttoystore/dashboard/internal/notify"
	"github.com/smarttoystore/dashboard/internal/repository/mq"
	"github.com/smarttoystore/dashboard/internal/repository/pg"
	"github.com/smarttoystore/dashboard/internal/service"
	"github.com/smarttoystore/dashboard/internal/view"
	"github.com/smarttoystore/dashboard/pgk/logger"

	httpController "github.com/smarttoystore/dashboard/internal/controller/http"
)

// feedOpener adapts the broker client to the narrower interface a view
// consumes.
type feedOpener struct {
	client *mq.Client
}

func (o feedOpener) Subscribe(name, category string) (view.Feed, error) {
	return o.client.Subscribe(name, category)
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	broker, err := mq.Dial(cfg.BrokerURI, lg)
	if err != nil {
		return err
	}

	if err := broker.DeclareExchange(); err != nil {
		return err
	}

	player := notify.NewLogPlayer(lg)
	opener := feedOpener{client: broker}

	views := make([]service.LiveView, 0)
	running := make([]*view.View, 0)

	for _, screen := range view.Dashboards(cfg.MaxOrders) {
		trigger := notify.NewTrigger(cfg.SoundsDir, screen.Category, player, lg)

		v := view.New(screen, storage, opener, trigger, lg)
		v.Start()

		views = append(views, v)
		running = append(running, v)
	}

	router := chi.NewRouter()

	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	s := service.New(views, storage, broker, lg)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	for _, v := range running {
		v.Stop()
	}

	broker.Close()

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
