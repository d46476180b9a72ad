package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/jagannath-p-s/malabareco-sub001/internal/handlers/v1/location"
	"github.com/jagannath-p-s/malabareco-sub001/internal/handlers/v1/material"
	"github.com/jagannath-p-s/malabareco-sub001/internal/handlers/v1/session"
	"github.com/jagannath-p-s/malabareco-sub001/internal/handlers/v1/status"
	"github.com/jagannath-p-s/malabareco-sub001/internal/logging"
	"github.com/jagannath-p-s/malabareco-sub001/internal/service"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	AllowedOrigins []string
	Service        *service.Service
	Storage        *storage.Storage
}

// Router builds the HTTP router with every endpoint registered.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	api := humachi.New(router, huma.DefaultConfig("Ledger API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler(r.Storage).Register(api)
	session.NewHandler(r.Service.Sessions).Register(api)
	location.NewHandler(r.Service.Location).Register(api)
	material.NewHandler(r.Service.Material).Register(api)

	return router
}

// Serve listens until ctx is done, then shuts the server down.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
