package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// UserHandler maneja /usuarios y la creación de contraseña.
type UserHandler struct {
	uc *usecase.UserUseCase
	errorResponder
}

// NewUserHandler construye el handler de cuentas.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, errorResponder: errorResponder{log: log}}
}

// Create godoc
// @Summary      Cadastrar usuário
// @Description  Cria a conta sem senha e envia por e-mail o link para definir a senha.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nome, email, role, empresa"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Listar usuários
// @Tags         usuarios
// @Produce      json
// @Param        empresa  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.UserResponse
// @Router       /usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("empresa"))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string                 false  "ID do usuário"
// @Param        body  body  dto.UpdateUserRequest  true   "nome e email"
// @Success      200   {object}  dto.UpdateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
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
// @Summary      Excluir usuário
// @Description  Remove os tokens de senha e a conta na mesma transação.
// @Tags         usuarios
// @Produce      json
// @Param        id   path   string  false  "ID do usuário"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
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

// SetPassword godoc
// @Summary      Criar senha
// @Description  Consome o token enviado por e-mail e grava a senha da conta.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do usuário"
// @Param        body  body  dto.SetPasswordRequest  true  "token e senha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /usuarios/{id}/senha [post]
func (h *UserHandler) SetPassword(c *fiber.Ctx) error {
	var in dto.SetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetPassword(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
