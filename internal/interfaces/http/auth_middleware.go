package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID  = "user_id"
	LocalEmpresa = "empresa"
	LocalRole    = "role"
)

// SessionMiddleware lee el Bearer Token cuando existe y carga user_id, empresa y role en c.Locals.
// Sin secreto configurado o sin header la petición sigue sin sesión; un token presente pero
// inválido se rechaza con 401.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if jwtSecret == "" || authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody(CodeUnauthorized, "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody(CodeUnauthorized, "token vazio"))
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody(CodeUnauthorized, "token inválido ou expirado"))
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmpresa, claims.Empresa)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el id de la cuenta de la sesión, vacío si no hay sesión.
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmpresa devuelve la empresa de la sesión.
func GetEmpresa(c *fiber.Ctx) string { return localString(c, LocalEmpresa) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }
