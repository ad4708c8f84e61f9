package app

import (
	"errors"
	"farmconnect-api/internal/controller"
	"farmconnect-api/internal/repo"
	"farmconnect-api/internal/service"
	"farmconnect-api/pkg/http_server"
	"farmconnect-api/pkg/postgres"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddress    string `envconfig:"SERVER_ADDRESS"`
	PostgresConn     string `envconfig:"POSTGRES_CONN"`
	PostgresDatabase string `envconfig:"POSTGRES_DATABASE"`
	MigrationsUrl    string `envconfig:"MIGRATIONS_URL"`
	LogLevel         string `envconfig:"LOG_LEVEL"`
}

func loadConfig() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}

	if c.PostgresConn == "" {
		return nil, errors.New("set POSTGRES_CONN")
	}

	if c.ServerAddress == "" {
		c.ServerAddress = ":8080"
	}

	if c.MigrationsUrl == "" {
		c.MigrationsUrl = "file://migrations"
	}

	return c, nil
}

func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func runMigrations(postgresDB *postgres.Postgres, config *Config) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: config.PostgresDatabase})
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare migration driver")
	}

	migrations, err := migrate.NewWithDatabaseInstance(config.MigrationsUrl, config.PostgresDatabase, driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to prepare migrations")
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("no change made by migration scripts")
		} else {
			logrus.WithError(err).Fatal("failed to run migrations")
		}
	}
}

func Run() {
	config, err := loadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	setupLogger(config.LogLevel)

	logrus.Info("connecting database...")
	postgresDB, err := postgres.NewDB(config.PostgresConn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer postgresDB.Close()

	if err := postgresDB.Database.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	logrus.Info("running migrations...")
	runMigrations(postgresDB, config)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories)
	handler := echo.New()

	logrus.Info("setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	logrus.WithField("address", config.ServerAddress).Info("starting server...")
	httpServer := http_server.New(handler, config.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logrus.WithField("signal", s.String()).Info("got signal")
	case err = <-httpServer.Notify():
		logrus.WithError(err).Fatal("server stopped unexpectedly")
	}

	logrus.Info("shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		logrus.WithError(err).Error("shutdown error")
	} else {
		logrus.Info("successful shutdown")
	}
}
