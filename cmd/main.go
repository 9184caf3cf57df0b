package main

import (
	"database/sql"
	"log"
	"os"

	"employee-demos/config"
	"employee-demos/internal/app/service"
	"employee-demos/internal/delivery/console"
	"employee-demos/internal/domain"
	"employee-demos/internal/logging"
	"employee-demos/internal/repository/sqlite"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	employees := service.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(db), logger.Named("employees"))
	if cfg.ResetRoster {
		err = employees.ResetRoster(domain.SampleEmployees())
	} else {
		_, err = employees.SeedIfEmpty(domain.SampleEmployees())
	}
	if err != nil {
		logger.Fatal("prepare roster", zap.Error(err))
	}

	handler := &console.Handler{
		Out:          os.Stdout,
		Employees:    employees,
		RaisePercent: cfg.RaisePercent,
		Log:          logger.Named("console"),
	}
	handler.Register()

	if err := handler.Run(cfg.Sections); err != nil {
		logger.Error("demo aborted", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
