package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"azoul/azoul/chat"
	"azoul/azoul/config"
	"azoul/azoul/controllers"
	"azoul/azoul/routes"
	"azoul/azoul/sources/psql"
	"azoul/azoul/sources/psql/dao"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/sources/storage"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	pb, err := chat.LoadPhrasebook(cfg.PhrasebookPath)
	if err != nil {
		logging.ErrorLogger.Error("phrasebook error", zap.String("path", cfg.PhrasebookPath), zap.Error(err))
		os.Exit(1)
	}
	engine, err := chat.NewEngineFromPhrasebook(pb, nil)
	if err != nil {
		logging.ErrorLogger.Error("chat engine error", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deps := routes.Deps{Chat: controllers.NewChatController(engine, cfg.ReplyDelay)}
	checks := map[string]controllers.Pinger{"database": nil, "storage": nil}

	if cfg.DatabaseEnabled() {
		db, err := psql.NewDatabase(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()
		deps.Content = controllers.NewContent(db.DB)
		checks["database"] = db

		if cfg.MinIOEnabled() {
			minioClient, err := storage.NewMinIOClient(ctx, cfg)
			if err != nil {
				logging.ErrorLogger.Error("minio connection error", zap.Error(err))
				os.Exit(1)
			}
			deps.Media = controllers.NewMediaController(minioClient, dao.NewCRUD[models.Media](db.DB))
			checks["storage"] = minioClient
		}
	}
	deps.Health = controllers.NewHealthController(checks)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           routes.NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return
	}
	logging.AppLogger.Info("server shutdown complete")
}
