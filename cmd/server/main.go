// @title         screening API
// @version       1.0
// @description   Отбор кандидатов: загрузка резюме, точный отбор по навыкам и ранжирование по близости к тексту вакансии.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/api/http"
	"github.com/artem13815/hr/screening/api/http/handlers"
	_ "github.com/artem13815/hr/screening/docs"
	"github.com/artem13815/hr/screening/pkg/blob"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/config"
	"github.com/artem13815/hr/screening/pkg/health"
	"github.com/artem13815/hr/screening/pkg/health/checkers"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/repository/badgerdb"
	pgrepo "github.com/artem13815/hr/screening/pkg/repository/postgres"
	"github.com/artem13815/hr/screening/pkg/screening"
	"github.com/artem13815/hr/screening/pkg/security/jwt"
	"github.com/artem13815/hr/screening/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, storeCheck, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	blobs, err := openBlobs(ctx, cfg)
	if err != nil {
		return err
	}

	svc, err := screening.Assemble(repo, blobs, screening.Settings{
		PresetsFile:      cfg.SkillPresetsFile,
		ResumePreset:     cfg.ResumeSkillPreset,
		QueryPreset:      cfg.QuerySkillPreset,
		Strategy:         cfg.SkillStrategy,
		Workers:          cfg.RankWorkers,
		MaxDocumentChars: cfg.MaxDocumentChars,
		MaxCorpus:        cfg.RankMaxCorpus,
	}, log.Named("screening"))
	if err != nil {
		return err
	}

	// Health service: compose checkers
	readiness := health.NewService(storeCheck, checkers.NewBlobChecker(blobs))

	httpLog := log.Named("http")
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.MaxUploadBytes + 1<<20,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, API is not protected")
	}
	http.Register(app, http.Handlers{
		Health:     handlers.NewHealthHandler(readiness),
		Candidates: handlers.NewCandidatesHandler(svc, int64(cfg.MaxUploadBytes), httpLog),
		Screening:  handlers.NewScreeningHandler(svc, cfg.RankDefaultThreshold, httpLog),
	}, jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Port))
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (candidate.Repository, health.Checker, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreBadger:
		backend, err := badgerdb.Open(cfg.BadgerDir, log)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.BadgerDir == "" {
			log.Warn("badger runs in memory, candidates are lost on restart")
		}
		closeFn := func() {
			if err := backend.Close(); err != nil {
				log.Error("close badger", zap.Error(err))
			}
		}
		return badgerdb.NewCandidateRepository(backend), checkers.NewBadgerChecker(backend), closeFn, nil
	default:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pgrepo.Migrate(ctx, pool, log.Named("migrate")); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return pgrepo.NewCandidateRepository(pool), checkers.NewPostgresChecker(pool), pool.Close, nil
	}
}

func openBlobs(ctx context.Context, cfg config.Config) (blob.Store, error) {
	if cfg.BlobDriver == config.BlobS3 {
		return blob.NewS3(ctx, blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return blob.NewDisk(cfg.UploadDir)
}
