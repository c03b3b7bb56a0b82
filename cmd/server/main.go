package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartsales/backend/internal/application/analytics"
	reportapp "github.com/smartsales/backend/internal/application/report"
	"github.com/smartsales/backend/internal/infrastructure/config"
	"github.com/smartsales/backend/internal/infrastructure/logger"
	"github.com/smartsales/backend/internal/infrastructure/persistence"
	"github.com/smartsales/backend/internal/infrastructure/render"
	"github.com/smartsales/backend/internal/interfaces/http/handler"
	"github.com/smartsales/backend/internal/interfaces/http/middleware"
	"github.com/smartsales/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SmartSales backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	salesLedger := persistence.NewGormSalesLedger(db.DB)
	forecastRepo := persistence.NewGormForecastRepository(db.DB)

	// Rendering pipeline
	pdfEngine, err := newPDFEngine(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize PDF engine", zap.Error(err))
	}
	defer func() {
		_ = pdfEngine.Close()
	}()

	templates, err := render.NewTemplateEngine(cfg.Render.TemplateGlob)
	if err != nil {
		log.Fatal("Failed to load report templates", zap.Error(err))
	}

	pdfRenderer := render.NewPDFRenderer(pdfEngine, templates, log)
	excelRenderer := render.NewExcelRenderer(log)

	// Application services
	reportService := reportapp.NewReportService(salesLedger, pdfRenderer, excelRenderer, log)
	forecastService := analytics.NewForecastService(forecastRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Handlers and routes
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	router.NewRouter(engine).
		Register(handler.NewReportHandler(reportService)).
		Register(handler.NewForecastHandler(forecastService)).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newPDFEngine builds the configured PDF engine.
func newPDFEngine(cfg *config.Config, log *zap.Logger) (render.PDFEngine, error) {
	switch cfg.Render.PDFEngine {
	case "wkhtmltopdf":
		return render.NewWkhtmltopdfEngine(&render.WkhtmltopdfConfig{
			BinaryPath: cfg.Render.BinaryPath,
			Timeout:    cfg.Render.Timeout,
			Logger:     log,
		})
	default:
		return render.NewChromedpEngine(&render.ChromedpConfig{
			Timeout:   cfg.Render.Timeout,
			RemoteURL: cfg.Render.ChromeURL,
			NoSandbox: cfg.Render.NoSandbox,
			Logger:    log,
		}), nil
	}
}
