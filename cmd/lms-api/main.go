package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/iftu-lms-api/api/swagger"
	"github.com/noah-isme/iftu-lms-api/internal/handler"
	internalmiddleware "github.com/noah-isme/iftu-lms-api/internal/middleware"
	"github.com/noah-isme/iftu-lms-api/internal/repository"
	"github.com/noah-isme/iftu-lms-api/internal/seed"
	"github.com/noah-isme/iftu-lms-api/internal/service"
	"github.com/noah-isme/iftu-lms-api/pkg/config"
	"github.com/noah-isme/iftu-lms-api/pkg/database"
	"github.com/noah-isme/iftu-lms-api/pkg/export"
	"github.com/noah-isme/iftu-lms-api/pkg/kvstore"
	"github.com/noah-isme/iftu-lms-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/iftu-lms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/iftu-lms-api/pkg/middleware/requestid"
	"github.com/noah-isme/iftu-lms-api/pkg/storage"
)

// @title IFTU LMS API
// @version 1.0.0
// @description Institutional data store for the IFTU learning management system
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closer, err := openBackend(ctx, cfg)
	if err != nil {
		logr.Fatal("failed to open document backend", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	if closer != nil {
		defer closer.Close()
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	store := repository.NewDocumentStore(backend, seed.Document, logr.Named("store"), metricsSvc)

	usersRepo := repository.NewUserRepository(store)
	coursesRepo := repository.NewCourseRepository(store)
	schoolsRepo := repository.NewSchoolRepository(store)
	examsRepo := repository.NewExamRepository(store)
	materialsRepo := repository.NewMaterialRepository(store)
	newsRepo := repository.NewNewsRepository(store)
	announcementsRepo := repository.NewAnnouncementRepository(store)
	paymentsRepo := repository.NewPaymentRepository(store)
	recordsRepo := repository.NewAcademicRecordRepository(store)
	brandingRepo := repository.NewBrandingRepository(store)

	validate := validator.New()

	authSvc, err := service.NewAuthService(usersRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
		DemoAccounts:      cfg.Auth.DemoAccounts,
	})
	if err != nil {
		logr.Fatal("invalid demo accounts", zap.Error(err))
	}

	userSvc := service.NewUserService(usersRepo, paymentsRepo, validate, logr, service.TuitionConfig{
		Amount:      cfg.Payments.TuitionAmount,
		Description: cfg.Payments.TuitionDescription,
	})
	exportSvc := service.NewExportService(brandingRepo, service.ExportConfig{FilePrefix: cfg.Export.FilePrefix}, metricsSvc, logr,
		export.NewCSVExporter(), export.NewPDFExporter())

	handlers := handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Users:         handler.NewUserHandler(userSvc, exportSvc),
		Courses:       handler.NewCourseHandler(service.NewCourseService(coursesRepo, validate, logr)),
		Schools:       handler.NewSchoolHandler(service.NewSchoolService(schoolsRepo, validate, logr)),
		Exams:         handler.NewExamHandler(service.NewExamService(examsRepo, validate, logr)),
		Materials:     handler.NewMaterialHandler(service.NewMaterialService(materialsRepo, validate, logr)),
		News:          handler.NewNewsHandler(service.NewNewsService(newsRepo, validate, logr)),
		Announcements: handler.NewAnnouncementHandler(service.NewAnnouncementService(announcementsRepo, validate, logr)),
		Payments:      handler.NewPaymentHandler(service.NewPaymentService(paymentsRepo, validate, logr), exportSvc),
		Academics:     handler.NewAcademicHandler(service.NewAcademicService(usersRepo, recordsRepo, validate, logr), userSvc, exportSvc),
		Reports:       handler.NewReportHandler(service.NewReportService(usersRepo, schoolsRepo, brandingRepo, logr)),
		Branding:      handler.NewBrandingHandler(service.NewBrandingService(brandingRepo, validate)),
		Admin:         handler.NewAdminHandler(service.NewAdminService(store, logr)),
		Metrics:       handler.NewMetricsHandler(metricsSvc, store),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.RegisterProbes(r, handlers.Metrics, cfg.Metrics.Enabled)
	handler.RegisterRoutes(r.Group(cfg.APIPrefix), handlers, authSvc)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openBackend selects where the document lives. The returned closer, when
// non-nil, releases the underlying client.
func openBackend(ctx context.Context, cfg *config.Config) (repository.Backend, io.Closer, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return repository.NewMemoryBackend(), nil, nil
	case config.BackendFile, "":
		local, err := storage.NewLocalStorage(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFileBackend(local, cfg.Store.Key), nil, nil
	case config.BackendRedis:
		client, err := kvstore.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisBackend(client, cfg.Store.Key), client, nil
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repository.NewPostgresBackend(db, cfg.Store.Key), db, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
}
