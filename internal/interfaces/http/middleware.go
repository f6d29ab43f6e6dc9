package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// HTTPRecorder registra métricas por petición.
type HTTPRecorder interface {
	RecordHTTP(method, route string, status int, elapsed time.Duration)
}

// RequestLogger escribe una línea estructurada por petición y, si hay recorder, la métrica.
// La ruta registrada es el patrón (/usuarios/:id), no el path concreto.
func RequestLogger(log *logger.Logger, rec HTTPRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler de fiber fije el status antes de registrar
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if rec != nil {
			rec.RecordHTTP(c.Method(), route, status, elapsed)
		}
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.IP()).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}

// ipLimiter limitador por IP con la última vez que se usó.
type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginRateLimiter limita intentos de login por IP de origen.
type LoginRateLimiter struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu       sync.Mutex
	limiters map[string]*ipLimiter
	now      func() time.Time
}

// NewLoginRateLimiter crea un limitador de perMinute intentos por minuto y por IP.
func NewLoginRateLimiter(perMinute int) *LoginRateLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	return &LoginRateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
		ttl:      10 * time.Minute,
		limiters: make(map[string]*ipLimiter),
		now:      time.Now,
	}
}

// Middleware devuelve el handler de fiber; al exceder el límite responde 429 con Retry-After.
func (rl *LoginRateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.allow(c.IP()) {
			retry := int(math.Ceil(1.0 / float64(rl.limit)))
			if retry < 1 {
				retry = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
			return c.Status(fiber.StatusTooManyRequests).
				JSON(errorBody(CodeRateLimited, "Muitas tentativas de login. Tente novamente mais tarde."))
		}
		return c.Next()
	}
}

func (rl *LoginRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evict(now)
	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastAccess = now
	return l.limiter.AllowN(now, 1)
}

// evict descarta IPs inactivas; se llama con mu tomado.
func (rl *LoginRateLimiter) evict(now time.Time) {
	for ip, l := range rl.limiters {
		if now.Sub(l.lastAccess) > rl.ttl {
			delete(rl.limiters, ip)
		}
	}
}

// Size número de IPs con limitador activo.
func (rl *LoginRateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}
