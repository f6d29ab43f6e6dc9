package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/analytics"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/auth"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC       *usecase.CompanyUseCase
	CandidateUC     *usecase.CandidateUseCase
	DocumentUC      *usecase.DocumentUseCase
	UserUC          *usecase.UserUseCase
	StorageUC       *usecase.StorageUseCase
	ObservabilityUC *analytics.ObservabilityUseCase
	AuthUC          *auth.AuthUseCase
	Log             *logger.Logger
	Metrics         HTTPRecorder
	JWTSecret       string
	LoginRateLimit  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/", RequestLogger(log.Component("http"), deps.Metrics), SessionMiddleware(deps.JWTSecret))

	// Login (con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/login", NewLoginRateLimiter(deps.LoginRateLimit).Middleware(), authHandler.Login)

	// Documentos: antes de /candidatos/:id
	documentHandler := NewDocumentHandler(deps.DocumentUC, log)
	docs := api.Group("/candidatos/documentos")
	docs.Get("/todos", documentHandler.ListAll)
	docs.Put("/aprovar", documentHandler.Approve)
	docs.Put("/reprovar", documentHandler.Reject)
	docs.Get("/", documentHandler.ListByEmail)
	docs.Post("/", documentHandler.Create)

	// Candidatos
	candidateHandler := NewCandidateHandler(deps.CandidateUC, log)
	candidatos := api.Group("/candidatos")
	candidatos.Post("/", candidateHandler.Create)
	candidatos.Get("/", candidateHandler.List)
	candidatos.Put("/", candidateHandler.Update)
	candidatos.Put("/:id", candidateHandler.Update)
	candidatos.Delete("/", candidateHandler.Delete)
	candidatos.Delete("/:id", candidateHandler.Delete)

	// Empresas
	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	empresas := api.Group("/empresas")
	empresas.Post("/", companyHandler.Create)
	empresas.Get("/", companyHandler.List)
	empresas.Put("/", companyHandler.Update)
	empresas.Put("/:id", companyHandler.Update)
	empresas.Delete("/", companyHandler.Delete)
	empresas.Delete("/:id", companyHandler.Delete)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC, log)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/", userHandler.Create)
	usuarios.Get("/", userHandler.List)
	usuarios.Put("/", userHandler.Update)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/", userHandler.Delete)
	usuarios.Delete("/:id", userHandler.Delete)
	usuarios.Post("/:id/senha", userHandler.SetPassword)

	// Observabilidad
	obsHandler := NewObservabilityHandler(deps.ObservabilityUC, log)
	obs := api.Group("/observability")
	obs.Get("/taxa-aprovacao", obsHandler.ApprovalRate)
	obs.Get("/contratacoes", obsHandler.Hires)
	obs.Get("/documentos-por-tipo", obsHandler.DocumentsByType)

	// Archivos
	storageHandler := NewStorageHandler(deps.StorageUC, log)
	api.Post("/upload-doc-plataforma", storageHandler.Upload)
	api.Get("/download-doc-plataforma", storageHandler.Download)
	api.Post("/url-assinada", storageHandler.SignedURL)
}
