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
)

func TestResetTokenRepo_FindForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	exp := time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reset_tokens WHERE usuario_id`).
		WithArgs("u-1", "tok").
		WillReturnRows(pgxmock.NewRows([]string{"id", "usuario_id", "token", "expiracao"}).AddRow("t-1", "u-1", "tok", exp))

	got, err := NewResetTokenRepository(mock).FindForUser(context.Background(), "u-1", "tok")

	require.NoError(t, err)
	assert.Equal(t, &entity.ResetToken{ID: "t-1", UsuarioID: "u-1", Token: "tok", Expiracao: exp}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenRepo_FindForUser_SinFilaEsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM reset_tokens`).
		WithArgs("u-1", "nope").
		WillReturnRows(pgxmock.NewRows([]string{"id", "usuario_id", "token", "expiracao"}))

	got, err := NewResetTokenRepository(mock).FindForUser(context.Background(), "u-1", "nope")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResetTokenRepo_CreateYDeleteByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewResetTokenRepository(mock)
	exp := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`INSERT INTO reset_tokens`).
		WithArgs("t-1", "u-1", "tok", exp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM reset_tokens WHERE usuario_id`).
		WithArgs("u-1").
		WillReturnError(errors.New("deadlock detected"))

	require.NoError(t, repo.Create(context.Background(), &entity.ResetToken{ID: "t-1", UsuarioID: "u-1", Token: "tok", Expiracao: exp}))

	err = repo.DeleteByUser(context.Background(), "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete reset_tokens: deadlock detected")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetTokenRepo_DeleteByUser_VariasFilas(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM reset_tokens WHERE usuario_id = \$1`).
		WithArgs("u-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	assert.NoError(t, NewResetTokenRepository(mock).DeleteByUser(context.Background(), "u-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
