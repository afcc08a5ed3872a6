package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"luxe-jewelry-api/internal/config"
	"luxe-jewelry-api/internal/db"
	"luxe-jewelry-api/internal/httpserver"
	contactrepo "luxe-jewelry-api/internal/repository/contact"
	productrepo "luxe-jewelry-api/internal/repository/product"
	"luxe-jewelry-api/internal/seed"
	contactsvc "luxe-jewelry-api/internal/service/contact"
	productsvc "luxe-jewelry-api/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	// A failed connect degrades the process instead of killing it: the
	// server still comes up and answers 503 until the next restart.
	store := db.Connect(ctx, cfg.MongoURL, cfg.DBName, logger)

	productRepo := productrepo.NewMongo(store, logger)
	productService := productsvc.New(productRepo)
	contactRepo := contactrepo.NewMongo(store, logger)
	contactService := contactsvc.New(contactRepo)
	provisioner := seed.New(productRepo, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, store, httpserver.Deps{
		ProductSvc:  productService,
		ContactSvc:  contactService,
		Provisioner: provisioner,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	if err := store.Close(shutdownCtx); err != nil {
		logger.Printf("store close failed: %v", err)
	}
}
