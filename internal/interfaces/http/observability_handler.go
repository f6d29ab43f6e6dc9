package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/analytics"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// ObservabilityHandler expone los agregados de aprobación y contratación.
type ObservabilityHandler struct {
	uc *analytics.ObservabilityUseCase
	errorResponder
}

// NewObservabilityHandler construye el handler.
func NewObservabilityHandler(uc *analytics.ObservabilityUseCase, log *logger.Logger) *ObservabilityHandler {
	return &ObservabilityHandler{uc: uc, errorResponder: errorResponder{log: log}}
}

// ApprovalRate godoc
// @Summary      Taxa de aprovação de documentos
// @Description  Percentual de documentos aprovados, com uma casa decimal.
// @Tags         observability
// @Produce      json
// @Param        empresa  query  string  false  "Empresa do candidato"
// @Success      200  {object}  dto.ApprovalRateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /observability/taxa-aprovacao [get]
func (h *ObservabilityHandler) ApprovalRate(c *fiber.Ctx) error {
	out, err := h.uc.ApprovalRate(c.Context(), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Hires godoc
// @Summary      Contratações
// @Description  Candidatos com situação "Processo Finalizado".
// @Tags         observability
// @Produce      json
// @Param        empresa  query  string  false  "Empresa do candidato"
// @Success      200  {object}  dto.HiresResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /observability/contratacoes [get]
func (h *ObservabilityHandler) Hires(c *fiber.Ctx) error {
	out, err := h.uc.Hires(c.Context(), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// DocumentsByType godoc
// @Summary      Documentos por tipo
// @Tags         observability
// @Produce      json
// @Param        empresa  query  string  false  "Empresa do candidato"
// @Success      200  {object}  dto.DocumentsByTypeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /observability/documentos-por-tipo [get]
func (h *ObservabilityHandler) DocumentsByType(c *fiber.Ctx) error {
	out, err := h.uc.DocumentsByType(c.Context(), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
