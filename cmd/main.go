package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aqualog/internal/handlers"
	"aqualog/internal/logger"
	"aqualog/internal/repository"
	"aqualog/internal/server"
	"aqualog/internal/service"
	"aqualog/internal/waterquality"

	"github.com/spf13/viper"

	_ "aqualog/docs"
)

// @title           AquaLog API
// @version         1.0
// @description     Water quality evaluation and remediation for aquariums.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, serviceConfig(log))
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// serviceConfig assembles service-level settings from configuration.
// The CO₂ window falls back to the stock daylight hours when unset.
func serviceConfig(log *logger.Logger) service.Config {
	schedule := waterquality.DefaultCo2Schedule
	if viper.IsSet("co2.on_hour") && viper.IsSet("co2.off_hour") {
		schedule = waterquality.Co2Schedule{
			OnHour:  viper.GetInt("co2.on_hour"),
			OffHour: viper.GetInt("co2.off_hour"),
		}
		if err := schedule.Validate(); err != nil {
			log.Fatalw("invalid co2 schedule in config", "err", err)
		}
	}
	signingKey := viper.GetString("auth.signing_key")
	if signingKey == "" {
		log.Fatalw("auth.signing_key not set in config")
	}
	return service.Config{
		DefaultCo2Schedule: schedule,
		JWTSigningKey:      signingKey,
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "aqualog.db")
		dbPath = "aqualog.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
