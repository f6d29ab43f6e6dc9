package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/analytics"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/auth"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/mail"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/metrics"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/postgres"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/signer"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/infrastructure/storage"
	httpRouter "github.com/pedronetodeveloper/back-end-lambdas-aws/internal/interfaces/http"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/config"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if cfg.DB.RunMigrations {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migrações")
		}
		log.Info().Msg("migrações aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	observabilityRepo := postgres.NewObservabilityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Métricas: registro propio con las de proceso y runtime
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	objectStore, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente do object store")
	}
	if err := objectStore.EnsureBucket(ctx); err != nil {
		// sin bucket la API arranca igual; las subidas devolverán 502
		log.Warn().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("bucket indisponível")
	}

	// Firmador remoto opcional; sin SIGNER_URL se firma localmente con minio-go.
	var (
		urlSigner   ports.Signer
		transferrer ports.Transferrer
	)
	if cfg.Storage.SignerURL != "" {
		signerClient := signer.NewClient(cfg.Storage.SignerURL, &http.Client{Timeout: 30 * time.Second}).
			WithUploadClient(signer.NewSafeHTTPClient(30 * time.Second))
		urlSigner, transferrer = signerClient, signerClient
		log.Info().Str("signer", cfg.Storage.SignerURL).Msg("upload via URL assinada")
	}

	mailer := mail.NewSMTPMailer(cfg.Mail)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	candidateUC := usecase.NewCandidateUseCase(candidateRepo, txRunner, mailer, collector, log)
	documentUC := usecase.NewDocumentUseCase(documentRepo, collector, log)
	userUC := usecase.NewUserUseCase(userRepo, txRunner, mailer, collector, usecase.AccountConfig{
		PasswordLinkBaseURL: cfg.Account.PasswordLinkBaseURL,
		ResetTokenTTL:       cfg.Account.ResetTokenTTL(),
	}, log)
	storageUC := usecase.NewStorageUseCase(objectStore, urlSigner, transferrer, usecase.StorageConfig{
		Prefix:            cfg.Storage.Prefix,
		DefaultExpiration: cfg.Storage.PresignExpiration,
	}, collector, log)
	observabilityUC := analytics.NewObservabilityUseCase(observabilityRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, filename, email, document-type, X-Is-Base64-Encoded",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "DocFlow API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:       companyUC,
		CandidateUC:     candidateUC,
		DocumentUC:      documentUC,
		UserUC:          userUC,
		StorageUC:       storageUC,
		ObservabilityUC: observabilityUC,
		AuthUC:          authUC,
		Log:             log,
		Metrics:         collector,
		JWTSecret:       cfg.JWT.Secret,
		LoginRateLimit:  cfg.HTTP.LoginRatePerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
