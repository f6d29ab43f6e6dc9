package http

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/usecase"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// HeaderBase64Body marca un cuerpo crudo codificado en base64.
const HeaderBase64Body = "X-Is-Base64-Encoded"

// StorageHandler maneja subida, descarga y emisión de URLs firmadas.
type StorageHandler struct {
	uc *usecase.StorageUseCase
	errorResponder
}

// NewStorageHandler construye el handler de archivos.
func NewStorageHandler(uc *usecase.StorageUseCase, log *logger.Logger) *StorageHandler {
	return &StorageHandler{uc: uc, errorResponder: errorResponder{log: log}}
}

// Upload godoc
// @Summary      Enviar documento
// @Description  Aceita JSON {arquivo|file em base64, filename, email, content_type, document_type}
// @Description  ou corpo bruto com os metadados nos headers filename, email, content-type e document-type.
// @Tags         arquivos
// @Accept       json
// @Accept       octet-stream
// @Produce      json
// @Param        body  body  dto.UploadRequest  false  "Arquivo em base64"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /upload-doc-plataforma [post]
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	file, err := uploadFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(CodeInvalidBody, "Arquivo em base64 inválido"))
	}
	out, err := h.uc.Upload(c.Context(), file)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// uploadFile normaliza las dos formas de subida a dto.UploadFile.
func uploadFile(c *fiber.Ctx) (dto.UploadFile, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var in dto.UploadRequest
		if err := c.BodyParser(&in); err != nil {
			return dto.UploadFile{}, err
		}
		encoded := in.Arquivo
		if encoded == "" {
			encoded = in.File
		}
		body, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return dto.UploadFile{}, err
		}
		return dto.UploadFile{
			Filename:     in.Filename,
			Body:         body,
			Email:        in.Email,
			ContentType:  in.ContentType,
			DocumentType: in.DocumentType,
		}, nil
	}

	body := append([]byte(nil), c.Body()...)
	if strings.EqualFold(c.Get(HeaderBase64Body), "true") {
		decoded, err := base64.StdEncoding.DecodeString(string(body))
		if err != nil {
			return dto.UploadFile{}, err
		}
		body = decoded
	}
	return dto.UploadFile{
		Filename:     c.Get("filename"),
		Body:         body,
		Email:        c.Get("email"),
		ContentType:  c.Get(fiber.HeaderContentType),
		DocumentType: c.Get("document-type"),
	}, nil
}

// Download godoc
// @Summary      URL de download
// @Description  Emite uma URL pré-assinada de leitura. filename recebe o prefixo configurado; key é usada como está.
// @Tags         arquivos
// @Produce      json
// @Param        key         query  string  false  "Chave do objeto"
// @Param        filename    query  string  false  "Nome do arquivo"
// @Param        expiration  query  int     false  "Validade em segundos"  default(3600)
// @Success      200  {object}  dto.DownloadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /download-doc-plataforma [get]
func (h *StorageHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Download(c.Context(), c.Query("key"), c.Query("filename"), c.QueryInt("expiration", 0))
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}

// SignedURL godoc
// @Summary      Emitir URL assinada
// @Tags         arquivos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignedURLRequest  true  "operation (upload|download) e key"
// @Success      200   {object}  dto.SignedURLResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /url-assinada [post]
func (h *StorageHandler) SignedURL(c *fiber.Ctx) error {
	var in dto.SignedURLRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Sign(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(out)
}
