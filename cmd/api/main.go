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

	"github.com/fhuszti/memorials-ms-go/internal/cache"
	"github.com/fhuszti/memorials-ms-go/internal/config"
	"github.com/fhuszti/memorials-ms-go/internal/db"
	"github.com/fhuszti/memorials-ms-go/internal/handler/api"
	"github.com/fhuszti/memorials-ms-go/internal/imaging"
	"github.com/fhuszti/memorials-ms-go/internal/logger"
	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/renderer"
	"github.com/fhuszti/memorials-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/memorials-ms-go/internal/storage"
	"github.com/fhuszti/memorials-ms-go/internal/task"
	authSvc "github.com/fhuszti/memorials-ms-go/internal/usecase/auth"
	commentSvc "github.com/fhuszti/memorials-ms-go/internal/usecase/comment"
	mediaSvc "github.com/fhuszti/memorials-ms-go/internal/usecase/media"
	memorialSvc "github.com/fhuszti/memorials-ms-go/internal/usecase/memorial"
	msuuid "github.com/fhuszti/memorials-ms-go/internal/uuid"
	"github.com/fhuszti/memorials-ms-go/internal/video"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	memorialRepo := mariadb.NewMemorialRepository(database.DB)
	commentRepo := mariadb.NewCommentRepository(database.DB)
	userRepo := mariadb.NewUserRepository(database.DB)

	seeder := authSvc.NewAdminSeeder(userRepo, msuuid.NewUUID, cfg.AdminEmail, cfg.AdminPassword)
	if err := seeder.EnsureAdmin(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to seed admin user: %v", err)
		os.Exit(1)
	}

	normaliser := imaging.NewNormaliser(imaging.NewWebPEncoder())
	transcoder := video.NewTranscoder(video.NewFFmpegRunner(cfg.FFmpegBin), video.DefaultTimeout)
	processor := mediaSvc.NewProcessor(strg, normaliser, transcoder, msuuid.NewUUID)
	purger := mediaSvc.NewPrefixPurger(strg)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewInlineDispatcher(purger)
		logger.Warn(ctx, "⚠️  Redis not configured, caching disabled and purges run inline")
	}

	r.Get("/health", api.HealthcheckHandler(database.DB))

	loginSvc := authSvc.NewAuthenticator(userRepo, cfg.JWTSecret)
	r.Post("/auth/login", api.LoginHandler(loginSvc))

	listSvc := memorialSvc.NewMemorialLister(memorialRepo)
	r.Get("/memorials", api.ListMemorialsHandler(listSvc))

	getSvc := memorialSvc.NewMemorialGetter(memorialRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(api.WithSlug()).
		Get("/memorials/{slug}", api.GetMemorialHandler(rendererSvc, getSvc))

	createSvc := memorialSvc.NewMemorialCreator(memorialRepo, processor, msuuid.NewUUID)
	r.With(api.WithJWTAuth(cfg.JWTSecret)).
		Post("/memorials", api.CreateMemorialHandler(createSvc))

	updateSvc := memorialSvc.NewMemorialUpdater(memorialRepo, processor, ca)
	r.With(api.WithJWTAuth(cfg.JWTSecret), api.WithSlug()).
		Patch("/memorials/{slug}", api.UpdateMemorialHandler(updateSvc))

	deleteSvc := memorialSvc.NewMemorialDeleter(memorialRepo, dispatcher, ca)
	r.With(api.WithJWTAuth(cfg.JWTSecret), api.WithSlug()).
		Delete("/memorials/{slug}", api.DeleteMemorialHandler(deleteSvc))

	listCommentsSvc := commentSvc.NewCommentLister(memorialRepo, commentRepo)
	r.With(api.WithSlug()).
		Get("/memorials/{slug}/comments", api.ListCommentsHandler(listCommentsSvc))

	createCommentSvc := commentSvc.NewCommentCreator(memorialRepo, commentRepo, msuuid.NewUUID)
	r.With(api.WithSlug()).
		Post("/memorials/{slug}/comments", api.CreateCommentHandler(createCommentSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
		cfg.PublicBaseURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
