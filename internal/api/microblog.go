package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/npezzotti/go-microblog/internal/config"
	"github.com/npezzotti/go-microblog/internal/database"
	"github.com/npezzotti/go-microblog/internal/service"
	"github.com/npezzotti/go-microblog/internal/stats"
)

type MicroblogApp struct {
	log      *log.Logger
	db       database.MicroblogRepository
	accounts *service.AccountService
	messages *service.MessageService
	mux      *http.Server
	stats    stats.StatsProvider
}

func NewMicroblogApp(mux *http.ServeMux, logger *log.Logger, accounts *service.AccountService,
	messages *service.MessageService, db database.MicroblogRepository,
	statsProvider stats.StatsProvider, cfg *config.Config) *MicroblogApp {
	s := &MicroblogApp{
		log:      logger,
		db:       db,
		accounts: accounts,
		messages: messages,
		stats:    statsProvider,
	}

	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /messages", s.submitMessage)
	mux.HandleFunc("GET /messages", s.listMessages)
	mux.HandleFunc("GET /messages/{id}", s.getMessage)
	mux.HandleFunc("DELETE /messages/{id}", s.deleteMessage)
	mux.HandleFunc("PATCH /messages/{id}", s.updateMessage)
	mux.HandleFunc("GET /accounts/{id}/messages", s.listAccountMessages)
	mux.HandleFunc("GET /healthz", s.healthCheck)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept"}),
	)(mux)

	h = handlers.LoggingHandler(logger.Writer(), h)
	h = s.requestIdHandler(h)
	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *MicroblogApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *MicroblogApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
