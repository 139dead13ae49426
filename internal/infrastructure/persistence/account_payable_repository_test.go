package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayable(t *testing.T) *finance.AccountPayable {
	t.Helper()
	issue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	payable, err := finance.NewAccountPayable(
		"NF-1020", uuid.New(), "Moinho Paulista", 1, 1,
		valueobject.NewMoneyBRL(decimal.NewFromFloat(500.00)), nil, nil, nil,
		issue, due,
	)
	require.NoError(t, err)
	return payable
}

func TestGormAccountPayableRepository_SaveWithVersion(t *testing.T) {
	t.Run("updates row when version matches", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAccountPayableRepository(gormDB)

		payable := newTestPayable(t)

		mock.ExpectExec(`UPDATE "accounts_payable" SET .* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveWithVersion(context.Background(), payable, 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns conflict when version moved on", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAccountPayableRepository(gormDB)

		payable := newTestPayable(t)

		mock.ExpectExec(`UPDATE "accounts_payable" SET .* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts_payable" WHERE id = \$1`).
			WithArgs(payable.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.SaveWithVersion(context.Background(), payable, 1)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when row vanished", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAccountPayableRepository(gormDB)

		payable := newTestPayable(t)

		mock.ExpectExec(`UPDATE "accounts_payable" SET .* WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts_payable" WHERE id = \$1`).
			WithArgs(payable.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.SaveWithVersion(context.Background(), payable, 1)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountPayableRepository_FindByID(t *testing.T) {
	t.Run("returns ErrNotFound for missing payable", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAccountPayableRepository(gormDB)

		payableID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "accounts_payable" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(payableID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		payable, err := repo.FindByID(context.Background(), payableID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, payable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormAccountPayableRepository_Summary(t *testing.T) {
	t.Run("maps aggregated columns", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormAccountPayableRepository(gormDB)

		asOf := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"pending_count", "pending_amount",
			"paid_count", "paid_amount",
			"overdue_count", "overdue_amount",
		}).AddRow(3, "1500.00", 2, "800.00", 1, "500.00")

		mock.ExpectQuery(`(?s)SELECT .*pending_count.* FROM "accounts_payable"`).
			WithArgs(asOf, asOf).
			WillReturnRows(rows)

		summary, err := repo.Summary(context.Background(), asOf)

		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.PendingCount)
		assert.True(t, summary.PendingAmount.Equal(decimal.NewFromFloat(1500.00)))
		assert.Equal(t, int64(2), summary.PaidCount)
		assert.True(t, summary.PaidAmount.Equal(decimal.NewFromFloat(800.00)))
		assert.Equal(t, int64(1), summary.OverdueCount)
		assert.True(t, summary.OverdueAmount.Equal(decimal.NewFromFloat(500.00)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
