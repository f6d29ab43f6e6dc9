package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

func TestTxRunner_RunCandidate_CommitAmbasFilas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO candidatos`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO usuarios`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	runner := NewTxRunner(mock)
	err = runner.RunCandidate(context.Background(), func(c repository.CandidateRepository, u repository.UserRepository) error {
		if err := c.Create(context.Background(), &entity.Candidate{ID: "c-1", Nome: "Ana", CreatedAt: now}); err != nil {
			return err
		}
		return u.Create(context.Background(), &entity.User{ID: "u-1", Nome: "Ana", Role: entity.RoleCandidato, CreatedAt: now})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RunCandidate_FallaCuentaHaceRollback(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO candidatos`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO usuarios`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	runner := NewTxRunner(mock)
	err = runner.RunCandidate(context.Background(), func(c repository.CandidateRepository, u repository.UserRepository) error {
		if err := c.Create(context.Background(), &entity.Candidate{ID: "c-1"}); err != nil {
			return err
		}
		return u.Create(context.Background(), &entity.User{ID: "u-1"})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.NoError(t, mock.ExpectationsWereMet(), "el candidato no debe quedar sin su cuenta")
}

func TestTxRunner_RunAccount_BeginFalla(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

	called := false
	err = NewTxRunner(mock).RunAccount(context.Background(), func(repository.UserRepository, repository.ResetTokenRepository) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
