package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
)

// parseOptionalBody parsea el cuerpo solo cuando viene algo.
func parseOptionalBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

// pathOr prioriza el parámetro :id sobre el id recibido en el cuerpo.
func pathOr(c *fiber.Ctx, bodyID string) string {
	if id := strings.TrimSpace(c.Params("id")); id != "" {
		return id
	}
	return bodyID
}

// deleteID resuelve el id de un DELETE: /:id, ?id= o cuerpo {"id"}.
func deleteID(c *fiber.Ctx) (string, error) {
	if id := strings.TrimSpace(c.Params("id")); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(c.Query("id")); id != "" {
		return id, nil
	}
	var in dto.IDRequest
	if err := parseOptionalBody(c, &in); err != nil {
		return "", err
	}
	return in.ID, nil
}
