package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// DocumentHandler maneja /candidatos/documentos.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
	errorResponder
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *usecase.DocumentUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, errorResponder: errorResponder{log: log}}
}

// Create godoc
// @Summary      Registrar documento
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Documento enviado pelo candidato"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /candidatos/documentos [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByEmail godoc
// @Summary      Documentos de um candidato
// @Tags         documentos
// @Produce      json
// @Param        email  query  string  true  "E-mail do candidato"
// @Success      200  {object}  dto.CandidateDocumentsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /candidatos/documentos [get]
func (h *DocumentHandler) ListByEmail(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmail(c.Context(), c.Query("email"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprovar documento
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApproveDocumentRequest  true  "nome_documento e email"
// @Success      200   {object}  dto.ApproveDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /candidatos/documentos/aprovar [put]
func (h *DocumentHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Approve(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Reprovar documento
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RejectDocumentRequest  true  "nome_documento, email e motivo opcional"
// @Success      200   {object}  dto.RejectDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /candidatos/documentos/reprovar [put]
func (h *DocumentHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Reject(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Todos os documentos
// @Tags         documentos
// @Produce      json
// @Param        status   query  string  false  "PENDENTE, APROVADO ou REPROVADO"
// @Param        empresa  query  string  false  "Empresa do candidato"
// @Success      200  {object}  dto.AllDocumentsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /candidatos/documentos/todos [get]
func (h *DocumentHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context(), c.Query("status"), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
