package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"list-authors/cmd/api/router"
	"list-authors/config"
	_ "list-authors/docs"
	"list-authors/internal/logger"
	"list-authors/metrics"
	"list-authors/repositories"
	"list-authors/services"
)

// @title           List Authors API
// @version         1.0
// @description     Renders the list-authors block and serves its editor data layer
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.InitFromEnv("LOG_LEVEL", cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repositories.Open(ctx, cfg.Storage)
	if err != nil {
		logger.Log.Errorf("open storage: %v", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	rec := metrics.New()
	authorList := services.NewAuthorListService(store, cfg.Site, rec)
	editorSvc, err := services.NewEditorService(authorList, cfg.Editor.MaxSessions, rec)
	if err != nil {
		logger.Log.Errorf("init editor sessions: %v", err)
		os.Exit(1)
	}

	engine := router.New(router.Dependencies{
		AuthorList: authorList,
		Editor:     editorSvc,
		Metrics:    rec,
		Ping:       store.Ping,
	})
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.WithCORS(engine, cfg.Server.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.InfoWithFields("api server listening", logger.Fields{"addr": cfg.Server.Addr, "storage": cfg.Storage.Driver})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorf("serve: %v", err)
		os.Exit(1)
	}
}
