package usecase

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepository struct{ mock.Mock }

func (m *MockCandidateRepository) Create(ctx context.Context, c *entity.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepository) List(ctx context.Context, empresa *string) ([]*entity.Candidate, error) {
	args := m.Called(ctx, empresa)
	return args.Get(0).([]*entity.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Update(ctx context.Context, c *entity.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, empresa *string) ([]*entity.User, error) {
	args := m.Called(ctx, empresa)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockResetTokenRepository struct{ mock.Mock }

func (m *MockResetTokenRepository) Create(ctx context.Context, t *entity.ResetToken) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockResetTokenRepository) FindForUser(ctx context.Context, usuarioID, token string) (*entity.ResetToken, error) {
	args := m.Called(ctx, usuarioID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockResetTokenRepository) DeleteByUser(ctx context.Context, usuarioID string) error {
	return m.Called(ctx, usuarioID).Error(0)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Create(ctx context.Context, d *entity.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Document, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]*entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) Find(ctx context.Context, nome, email string) (*entity.Document, error) {
	args := m.Called(ctx, nome, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) MarkApproved(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockDocumentRepository) MarkRejected(ctx context.Context, id int64, motivo string, at time.Time) error {
	return m.Called(ctx, id, motivo, at).Error(0)
}

func (m *MockDocumentRepository) ListAll(ctx context.Context, f entity.DocumentFilter) ([]*entity.DocumentWithCandidate, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]*entity.DocumentWithCandidate), args.Error(1)
}

// fakeTx ejecuta fn directamente con los mocks; beginErr simula la falla al abrir la tx.
type fakeTx struct {
	candidates *MockCandidateRepository
	users      *MockUserRepository
	tokens     *MockResetTokenRepository
	beginErr   error
	calls      int
}

func (f *fakeTx) RunCandidate(ctx context.Context, fn func(repository.CandidateRepository, repository.UserRepository) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(f.candidates, f.users)
}

func (f *fakeTx) RunAccount(ctx context.Context, fn func(repository.UserRepository, repository.ResetTokenRepository) error) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(f.users, f.tokens)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) RecordTransition(status string) { m.Called(status) }
func (m *MockMetrics) RecordUpload(mode string)       { m.Called(mode) }
func (m *MockMetrics) RecordEmailFailure()            { m.Called() }

type MockObjectStore struct{ mock.Mock }

func (m *MockObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, meta ports.ObjectMetadata) (string, error) {
	args := m.Called(ctx, key, body, size, meta)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PresignPut(ctx context.Context, key string, expiry time.Duration, meta ports.ObjectMetadata) (string, error) {
	args := m.Called(ctx, key, expiry, meta)
	return args.String(0), args.Error(1)
}

type MockSigner struct{ mock.Mock }

func (m *MockSigner) Sign(ctx context.Context, req ports.SignRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockTransferrer struct{ mock.Mock }

func (m *MockTransferrer) PutToURL(ctx context.Context, url string, body []byte, meta ports.ObjectMetadata) error {
	return m.Called(ctx, url, body, meta).Error(0)
}

func strPtr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }
