package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/notification"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/onboarding"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// CandidateUseCase alta, listado, edición y baja de candidatos.
type CandidateUseCase struct {
	repo       repository.CandidateRepository
	tx         ports.TxRunner
	mailer     ports.Mailer
	metrics    ports.Metrics
	log        *logger.Logger
	now        func() time.Time
	bcryptCost int
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(repo repository.CandidateRepository, tx ports.TxRunner, mailer ports.Mailer, metrics ports.Metrics, log *logger.Logger) *CandidateUseCase {
	return &CandidateUseCase{
		repo:       repo,
		tx:         tx,
		mailer:     mailer,
		metrics:    metrics,
		log:        log.Component("candidatos"),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Create registra el candidato y su cuenta espejo (role candidato) en una sola transacción.
// La credencial provisoria (3 primeros + 2 últimos dígitos del CPF) se envía una vez por email
// después del commit; si el envío falla el alta se mantiene y EmailEnviado queda en false.
func (uc *CandidateUseCase) Create(ctx context.Context, in dto.CreateCandidateRequest) (*dto.CreateCandidateResponse, error) {
	if missing := missingFields(
		field{"nome", in.Nome}, field{"email", in.Email}, field{"cpf", in.CPF}, field{"empresa", in.Empresa},
	); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	senha, err := onboarding.DeriveInitialPassword(in.CPF)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	candidate := &entity.Candidate{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        in.Email,
		PasswordHash: string(hash),
		CPF:          in.CPF,
		Telefone:     in.Telefone,
		Estado:       in.Estado,
		Vaga:         in.Vaga,
		Genero:       in.Genero,
		Empresa:      in.Empresa,
		Situacao:     entity.SituacaoPendente,
		CreatedAt:    now,
	}
	account := &entity.User{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCandidato,
		Empresa:      in.Empresa,
		CreatedAt:    now,
	}

	err = uc.tx.RunCandidate(ctx, func(candidates repository.CandidateRepository, users repository.UserRepository) error {
		if err := candidates.Create(ctx, candidate); err != nil {
			return err
		}
		return users.Create(ctx, account)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("email", in.Email).Msg("falha ao cadastrar candidato")
		return nil, err
	}

	sent := true
	if err := uc.mailer.Send(ctx, notification.CandidateAccess(in.Email, in.Email, senha)); err != nil {
		sent = false
		uc.metrics.RecordEmailFailure()
		uc.log.Warn().Err(err).Str("candidato_id", candidate.ID).Msg("email de acesso não enviado")
	}

	return &dto.CreateCandidateResponse{
		ID:           candidate.ID,
		UsuarioID:    account.ID,
		Nome:         candidate.Nome,
		Email:        candidate.Email,
		Empresa:      candidate.Empresa,
		Situacao:     candidate.Situacao,
		EmailEnviado: sent,
	}, nil
}

// List candidatos, opcionalmente de una empresa.
func (uc *CandidateUseCase) List(ctx context.Context, empresa string) ([]dto.CandidateResponse, error) {
	list, err := uc.repo.List(ctx, optional(empresa))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CandidateResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CandidateResponse{
			ID:        c.ID,
			Nome:      c.Nome,
			Email:     c.Email,
			Telefone:  c.Telefone,
			Estado:    c.Estado,
			Vaga:      c.Vaga,
			Genero:    c.Genero,
			Empresa:   c.Empresa,
			Situacao:  c.Situacao,
			CreatedAt: c.CreatedAt,
		})
	}
	return items, nil
}

// Update sobrescribe nome, email y situacao; los campos ausentes se guardan vacíos.
func (uc *CandidateUseCase) Update(ctx context.Context, in dto.UpdateCandidateRequest) (*dto.UpdateCandidateResponse, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, domain.MissingField("id")
	}
	err := uc.repo.Update(ctx, &entity.Candidate{
		ID:       in.ID,
		Nome:     in.Nome,
		Email:    in.Email,
		Situacao: in.Situacao,
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpdateCandidateResponse{ID: in.ID, Nome: in.Nome, Email: in.Email, Situacao: in.Situacao}, nil
}

// Delete borra solo la fila del candidato. La cuenta en usuarios se mantiene.
func (uc *CandidateUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.MissingField("id")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Candidato deletado"}, nil
}
