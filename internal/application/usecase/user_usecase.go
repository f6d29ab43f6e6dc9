package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/notification"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// AccountConfig parámetros del flujo de creación de contraseña.
type AccountConfig struct {
	PasswordLinkBaseURL string
	ResetTokenTTL       time.Duration
}

// UserUseCase cuentas de acceso y flujo de creación de contraseña por token.
type UserUseCase struct {
	repo       repository.UserRepository
	tx         ports.TxRunner
	mailer     ports.Mailer
	metrics    ports.Metrics
	cfg        AccountConfig
	log        *logger.Logger
	now        func() time.Time
	bcryptCost int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, tx ports.TxRunner, mailer ports.Mailer, metrics ports.Metrics, cfg AccountConfig, log *logger.Logger) *UserUseCase {
	return &UserUseCase{
		repo:       repo,
		tx:         tx,
		mailer:     mailer,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.Component("usuarios"),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Create crea la cuenta sin contraseña junto con su token de creación y envía el link por email.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if missing := missingFields(field{"nome", in.Nome}, field{"email", in.Email}); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	now := uc.now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Email:     in.Email,
		Role:      role,
		Empresa:   in.Empresa,
		CreatedAt: now,
	}
	token := &entity.ResetToken{
		ID:        uuid.New().String(),
		UsuarioID: user.ID,
		Token:     uuid.New().String(),
		Expiracao: now.Add(uc.cfg.ResetTokenTTL),
	}

	err := uc.tx.RunAccount(ctx, func(users repository.UserRepository, tokens repository.ResetTokenRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return tokens.Create(ctx, token)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("email", in.Email).Msg("falha ao criar usuário")
		return nil, err
	}

	uc.sendPasswordLink(ctx, user, token.Token)
	resp := toUserResponse(user)
	return &resp, nil
}

func (uc *UserUseCase) sendPasswordLink(ctx context.Context, user *entity.User, token string) {
	link := notification.PasswordLink(uc.cfg.PasswordLinkBaseURL, token)
	msg, err := notification.CreatePassword(user.Email, user.Nome, link, uc.cfg.ResetTokenTTL, uc.now())
	if err == nil {
		err = uc.mailer.Send(ctx, msg)
	}
	if err != nil {
		uc.metrics.RecordEmailFailure()
		uc.log.Error().Err(err).Str("usuario_id", user.ID).Msg("email de criação de senha não enviado")
		return
	}
	uc.log.Info().Str("usuario_id", user.ID).Msg("email de criação de senha enviado")
}

// List cuentas, opcionalmente de una empresa.
func (uc *UserUseCase) List(ctx context.Context, empresa string) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, optional(empresa))
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return items, nil
}

// Update sobrescribe nome y email.
func (uc *UserUseCase) Update(ctx context.Context, in dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, domain.MissingField("id")
	}
	if err := uc.repo.Update(ctx, &entity.User{ID: in.ID, Nome: in.Nome, Email: in.Email}); err != nil {
		return nil, err
	}
	return &dto.UpdateUserResponse{ID: in.ID, Nome: in.Nome, Email: in.Email}, nil
}

// Delete borra los tokens de la cuenta y luego la cuenta, en una transacción.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.MissingField("id")
	}
	err := uc.tx.RunAccount(ctx, func(users repository.UserRepository, tokens repository.ResetTokenRepository) error {
		if err := tokens.DeleteByUser(ctx, id); err != nil {
			return err
		}
		return users.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Usuário com id %s deletado com sucesso.", id)}, nil
}

// SetPassword consume el token de la cuenta: token desconocido o vencido es error de validación;
// el vencido además se borra. Contraseña y borrado del token se aplican juntos.
func (uc *UserUseCase) SetPassword(ctx context.Context, usuarioID string, in dto.SetPasswordRequest) (*dto.MessageResponse, error) {
	if strings.TrimSpace(in.Token) == "" || in.Senha == "" {
		return nil, domain.Invalid("Token e senha são obrigatórios")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	expired := false
	err = uc.tx.RunAccount(ctx, func(users repository.UserRepository, tokens repository.ResetTokenRepository) error {
		tok, err := tokens.FindForUser(ctx, usuarioID, in.Token)
		if err != nil {
			return err
		}
		if tok == nil {
			return domain.Invalid("Token inválido")
		}
		if tok.Expired(uc.now()) {
			expired = true
			return tokens.Delete(ctx, tok.ID)
		}
		if err := users.UpdatePassword(ctx, usuarioID, string(hash)); err != nil {
			return err
		}
		return tokens.Delete(ctx, tok.ID)
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, domain.Invalid("Token expirado")
	}
	return &dto.MessageResponse{Message: "Senha criada com sucesso"}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      u.ID,
		Nome:    u.Nome,
		Email:   u.Email,
		Role:    u.Role,
		Empresa: u.Empresa,
	}
}
