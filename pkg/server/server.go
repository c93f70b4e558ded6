package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/fin-tools/expense-atlas/pkg/handlers/report"

	expenseatlasmiddleware "github.com/fin-tools/expense-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Engine handlers.Engine
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	DefaultTopN     int
	Dependencies    Dependencies
}

// ConfigureRouter builds the report API router with its middleware chain.
func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	reportHandler := handlers.NewHandler(config.Dependencies.Engine, config.DefaultTopN)

	router := chi.NewRouter()

	router.Use(expenseatlasmiddleware.RequestID)
	router.Use(expenseatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1/reports", func(r chi.Router) {
		r.Post("/summary", reportHandler.GetSummary)
		r.Post("/categories", reportHandler.GetCategories)
		r.Post("/trends", reportHandler.GetTrends)
		r.Post("/recurring", reportHandler.GetRecurring)
		r.Post("/subscriptions", reportHandler.GetSubscriptions)
		r.Post("/colors", reportHandler.GetColors)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
