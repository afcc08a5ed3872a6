package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"luxe-jewelry-api/internal/db"
	contactsvc "luxe-jewelry-api/internal/service/contact"
	productsvc "luxe-jewelry-api/internal/service/product"
	"luxe-jewelry-api/internal/seed"
)

// Deps carries the wired services the router needs.
type Deps struct {
	ProductSvc  *productsvc.Service
	ContactSvc  *contactsvc.Service
	Provisioner *seed.Provisioner
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the API routes.
func New(addr string, logger *log.Logger, store *db.Store, deps Deps) *Server {
	router := buildRouter(logger, store, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
