package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danielhkuo/gift-draw/cliparse"
	"github.com/danielhkuo/gift-draw/db"
	"github.com/danielhkuo/gift-draw/metrics"
	"github.com/danielhkuo/gift-draw/roster"
	"github.com/danielhkuo/gift-draw/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("Error parsing flags", zap.Error(err))
	}

	logger, err := initLogger(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("storage initialization failed", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	// Constraints must exist before the first selection is accepted
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("schema creation failed", zap.Error(err))
	}
	logger.Info("Database schema ready", zap.String("type", cfg.DatabaseType))

	m := metrics.New(logger)
	if count, err := store.Count(ctx); err == nil {
		m.SetRosterSize(count)
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(store, cfg, logger, m),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	logger.Info("Listening", zap.Int("port", cfg.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server closed", zap.Error(err))
	} else {
		logger.Info("Server closed")
	}
}

// openStore opens the configured backend. The store owns the connection
// from here on.
func openStore(ctx context.Context, cfg cliparse.Config) (roster.Store, error) {
	if cfg.DatabaseType == db.TypeMongo {
		client, err := db.OpenMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return roster.NewMongoStore(client, cfg.MongoDatabase), nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return roster.NewSQLStore(conn), nil
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string, dev bool) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoding := "json"
	if dev {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      dev,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
