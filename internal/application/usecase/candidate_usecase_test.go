package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/notification"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

type CandidateUseCaseTestSuite struct {
	suite.Suite
	repo    *MockCandidateRepository
	tx      *fakeTx
	mailer  *MockMailer
	metrics *MockMetrics
	uc      *CandidateUseCase
}

func (s *CandidateUseCaseTestSuite) SetupTest() {
	s.repo = &MockCandidateRepository{}
	s.tx = &fakeTx{candidates: &MockCandidateRepository{}, users: &MockUserRepository{}}
	s.mailer = &MockMailer{}
	s.metrics = &MockMetrics{}
	s.uc = NewCandidateUseCase(s.repo, s.tx, s.mailer, s.metrics, logger.Nop())
	s.uc.bcryptCost = bcrypt.MinCost
}

func (s *CandidateUseCaseTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.tx.candidates.AssertExpectations(s.T())
	s.tx.users.AssertExpectations(s.T())
	s.mailer.AssertExpectations(s.T())
	s.metrics.AssertExpectations(s.T())
}

func TestCandidateUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(CandidateUseCaseTestSuite))
}

func (s *CandidateUseCaseTestSuite) validRequest() dto.CreateCandidateRequest {
	return dto.CreateCandidateRequest{Nome: "Ana", Email: "ana@acme.com", CPF: "123.456.789-01", Empresa: "Acme"}
}

func (s *CandidateUseCaseTestSuite) TestCreate_CuentaEspejoYEmail() {
	var saved *entity.Candidate
	var account *entity.User
	s.tx.candidates.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.Candidate)
	}).Return(nil)
	s.tx.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		account = args.Get(1).(*entity.User)
	}).Return(nil)
	s.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m ports.Message) bool {
		return m.To == "ana@acme.com" && m.Subject == notification.CandidateAccessSubject
	})).Return(nil)

	got, err := s.uc.Create(context.Background(), s.validRequest())

	s.Require().NoError(err)
	s.True(got.EmailEnviado)
	s.Equal(entity.SituacaoPendente, got.Situacao)
	s.Equal(saved.ID, got.ID)
	s.Equal(account.ID, got.UsuarioID)
	s.Equal(entity.RoleCandidato, account.Role)
	s.Equal("Acme", account.Empresa)
	s.Equal(saved.PasswordHash, account.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("12301")))
	s.Equal(1, s.tx.calls)
}

func (s *CandidateUseCaseTestSuite) TestCreate_FallaEmailNoRevierte() {
	s.tx.candidates.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.tx.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	s.metrics.On("RecordEmailFailure").Return()

	got, err := s.uc.Create(context.Background(), s.validRequest())

	s.Require().NoError(err)
	s.False(got.EmailEnviado)
}

func (s *CandidateUseCaseTestSuite) TestCreate_FallaCuentaPropagaError() {
	s.tx.candidates.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.tx.users.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

	_, err := s.uc.Create(context.Background(), s.validRequest())

	s.Require().Error(err)
	s.mailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything)
}

func (s *CandidateUseCaseTestSuite) TestCreate_CPFInvalido() {
	in := s.validRequest()
	in.CPF = "123.456"

	_, err := s.uc.Create(context.Background(), in)

	s.ErrorIs(err, domain.ErrValidation)
	s.Equal(0, s.tx.calls)
}

func (s *CandidateUseCaseTestSuite) TestCreate_FaltanCampos() {
	_, err := s.uc.Create(context.Background(), dto.CreateCandidateRequest{Nome: "Ana", CPF: "12345678901"})

	s.Require().ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "'email' e 'empresa'")
}

func (s *CandidateUseCaseTestSuite) TestList_FiltroEmpresa() {
	s.repo.On("List", mock.Anything, strPtr("Acme")).Return([]*entity.Candidate{
		{ID: "c-1", Nome: "Ana", Situacao: entity.SituacaoFinalizado},
	}, nil)

	got, err := s.uc.List(context.Background(), "Acme")

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(entity.SituacaoFinalizado, got[0].Situacao)

	// el listado no lee el CPF, así que tampoco lo expone
	raw, err := json.Marshal(got[0])
	s.Require().NoError(err)
	s.NotContains(string(raw), `"cpf"`)
}

func (s *CandidateUseCaseTestSuite) TestUpdate_SobrescribeSinParche() {
	s.repo.On("Update", mock.Anything, &entity.Candidate{ID: "c-1", Nome: "Ana"}).Return(nil)

	got, err := s.uc.Update(context.Background(), dto.UpdateCandidateRequest{ID: "c-1", Nome: "Ana"})

	s.Require().NoError(err)
	s.Empty(got.Email)
	s.Empty(got.Situacao)
}

func (s *CandidateUseCaseTestSuite) TestDelete() {
	s.repo.On("Delete", mock.Anything, "c-1").Return(nil)

	got, err := s.uc.Delete(context.Background(), "c-1")

	s.Require().NoError(err)
	s.Equal("Candidato deletado", got.Message)
}

func TestCandidateUseCase_Delete_SinID(t *testing.T) {
	uc := NewCandidateUseCase(&MockCandidateRepository{}, &fakeTx{}, &MockMailer{}, ports.NopMetrics{}, logger.Nop())
	_, err := uc.Delete(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "'id'")
}
