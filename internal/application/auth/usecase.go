package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/jwt"
)

// PlaceholderToken token fijo que se devuelve cuando no hay secreto JWT configurado.
const PlaceholderToken = "fake-jwt-token"

// JWTConfig configuración para generación de tokens. Secret vacío = token fijo.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/senha contra el hash bcrypt. Cuenta inexistente, sin contraseña
// definida o contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier, secret := in.Identifier(), in.Secret()
	if identifier == "" && secret == "" {
		return nil, domain.MissingField("email", "senha")
	}
	if identifier == "" {
		return nil, domain.MissingField("email")
	}
	if secret == "" {
		return nil, domain.MissingField("senha")
	}

	user, err := uc.userRepo.FindByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasPassword() {
		return nil, invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return nil, invalidCredentials()
	}

	token := PlaceholderToken
	if uc.jwtCfg.Secret != "" {
		token, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Empresa, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:      user.ID,
			Nome:    user.Nome,
			Email:   user.Email,
			Role:    user.Role,
			Empresa: user.Empresa,
		},
	}, nil
}

func invalidCredentials() error {
	return fmt.Errorf("%w: Credenciais inválidas", domain.ErrUnauthorized)
}
