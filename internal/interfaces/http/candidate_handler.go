package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// CandidateHandler maneja /candidatos.
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
	errorResponder
}

// NewCandidateHandler construye el handler de candidatos.
func NewCandidateHandler(uc *usecase.CandidateUseCase, log *logger.Logger) *CandidateHandler {
	return &CandidateHandler{uc: uc, errorResponder: errorResponder{log: log}}
}

// Create godoc
// @Summary      Cadastrar candidato
// @Description  Cria o candidato e a conta de acesso na mesma transação e envia a senha provisória por e-mail.
// @Tags         candidatos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCandidateRequest  true  "Dados do candidato"
// @Success      201   {object}  dto.CreateCandidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /candidatos [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar candidatos
// @Tags         candidatos
// @Produce      json
// @Param        empresa  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.CandidateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /candidatos [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar candidato
// @Tags         candidatos
// @Accept       json
// @Produce      json
// @Param        id    path  string                      false  "ID do candidato"
// @Param        body  body  dto.UpdateCandidateRequest  true   "nome, email, situacao"
// @Success      200   {object}  dto.UpdateCandidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /candidatos/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = pathOr(c, in.ID)
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir candidato
// @Description  Remove apenas o candidato; a conta de acesso é mantida.
// @Tags         candidatos
// @Produce      json
// @Param        id   path   string  false  "ID do candidato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /candidatos/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := deleteID(c)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
