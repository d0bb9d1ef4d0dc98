package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/s2s-school/s2s-api/api/swagger"
	"github.com/s2s-school/s2s-api/internal/catalog"
	"github.com/s2s-school/s2s-api/internal/handler"
	"github.com/s2s-school/s2s-api/internal/middleware"
	"github.com/s2s-school/s2s-api/internal/notifier"
	"github.com/s2s-school/s2s-api/internal/service"
	"github.com/s2s-school/s2s-api/internal/store"
	"github.com/s2s-school/s2s-api/pkg/config"
	"github.com/s2s-school/s2s-api/pkg/database"
	"github.com/s2s-school/s2s-api/pkg/logger"
	reqidmiddleware "github.com/s2s-school/s2s-api/pkg/middleware/requestid"
)

// @title S2S Online School API
// @version 1.0.0
// @description Backend for the S2S online-school marketing site
// @BasePath /api
// @schemes http

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	validate := validator.New()

	cat, err := catalog.Load(cfg.Catalog.CoursesPath, cfg.Catalog.TeachersPath, validate)
	if err != nil {
		logr.Sugar().Fatalw("failed to load catalog", "error", err)
	}
	logr.Sugar().Infow("catalog loaded",
		"courses", len(cat.Courses()), "teachers", len(cat.Teachers()))

	memory := store.NewMemory(cat)

	var contactStore store.ContactFormStore = memory
	if cfg.Contact.Store == config.ContactStorePostgres {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to database", "error", err)
		}
		defer db.Close() //nolint:errcheck

		repo := store.NewContactFormRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logr.Sugar().Fatalw("failed to ensure contact_forms schema", "error", err)
		}
		contactStore = repo
	}

	metricsSvc := service.NewMetricsService()

	var mailer notifier.Mailer
	if cfg.Mail.Enabled {
		mailer = notifier.NewSMTPMailer(cfg.Mail)
	} else {
		mailer = notifier.NewLogMailer(logr)
	}
	notif := notifier.New(mailer, cfg.Mail, logr, metricsSvc)
	notif.Start(ctx)
	defer notif.Stop()

	userSvc := service.NewUserService(memory, validate, logr)
	courseSvc := service.NewCourseService(memory)
	teacherSvc := service.NewTeacherService(memory)
	applicationSvc := service.NewApplicationService(memory, validate, logr)
	contactSvc := service.NewContactService(contactStore, notif, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Users:        handler.NewUserHandler(userSvc),
		Courses:      handler.NewCourseHandler(courseSvc),
		Teachers:     handler.NewTeacherHandler(teacherSvc),
		Applications: handler.NewApplicationHandler(applicationSvc),
		ContactForms: handler.NewContactFormHandler(contactSvc),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
	}
}
