package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adpulse/internal/adapter/csvio"
	"adpulse/internal/adapter/excel"
	httpadapter "adpulse/internal/adapter/http"
	"adpulse/internal/adapter/postgres"
	"adpulse/internal/adapter/rediscache"
	"adpulse/internal/adapter/usecase"
	"adpulse/internal/config"
	"adpulse/internal/core/port"
	"adpulse/internal/db"
)

// main is the entry point of the adpulse service. It loads configuration,
// optionally runs database migrations, initializes the database pool,
// repositories and the optional Redis cache, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server. With -file it instead analyzes a single CSV dataset and writes
// the results file and dashboard workbook next to it, without touching
// any backing store.
func main() {
	file := flag.String("file", "", "analyze a campaign CSV once and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if *file != "" {
		if err = analyzeFile(*file, logger); err != nil {
			logger.Error("analysis failed", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo report seeded")
		}
	}

	var cache port.ReportCache
	if cfg.Redis.Enabled() {
		rdb, err := rediscache.NewClient(cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer rdb.Close()
		cache = rediscache.NewReportCache(rdb)
	}

	repo := postgres.NewReportRepository(pool)
	svc := usecase.NewAnalyzerService(repo, cache, cfg.Redis.TTL, logger)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// analyzeFile runs the pure pipeline over one CSV dataset and writes
// <name>_results.csv and <name>_dashboard.xlsx next to the input.
func analyzeFile(path string, logger *slog.Logger) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	records, err := csvio.ReadCampaigns(in)
	if err != nil {
		return err
	}
	report, err := usecase.BuildReport(records)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))

	resultsPath := base + "_results.csv"
	out, err := os.Create(resultsPath)
	if err != nil {
		return err
	}
	if err = csvio.WriteResults(out, report.Campaigns); err != nil {
		out.Close()
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}

	dashboardPath := base + "_dashboard.xlsx"
	wb, err := os.Create(dashboardPath)
	if err != nil {
		return err
	}
	if err = excel.WriteDashboard(wb, report); err != nil {
		wb.Close()
		return err
	}
	if err = wb.Close(); err != nil {
		return err
	}

	logger.Info("analysis complete",
		slog.Int("campaigns", len(report.Campaigns)),
		slog.Int("quick_wins", len(report.Recommendations.QuickWins)),
		slog.String("results", resultsPath),
		slog.String("dashboard", dashboardPath))
	return nil
}
