package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"prepcheck/internal/config"
	"prepcheck/internal/core"
	"prepcheck/internal/db"
	"prepcheck/internal/http/handler"
	"prepcheck/internal/http/handler/middleware"
	"prepcheck/internal/http/payload"
	"prepcheck/internal/http/server"
	"prepcheck/internal/repository"
	"prepcheck/pkg/jwt"
	"prepcheck/pkg/log"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	bootLogger := log.NewZapLogger("prepcheck", zapcore.InfoLevel)

	// a .env file is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		bootLogger.Errorw("failed to load .env file", "error", err)
		return err
	}

	config, err := config.NewApp()
	if err != nil {
		bootLogger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("prepcheck", config.LogLevel)
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewRecordRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// prepcheck
	prepCheck := core.NewPrepCheck(
		logger,
		repo,
		jwtService,
		config.TokenTTL)

	// handler
	prepHlr := handler.NewPrepCheckHandler(
		logger,
		payload.Decoder{},
		prepCheck)

	// register routes
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, prepHlr, middleware.NewAuthMiddleware(logger, prepCheck))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
