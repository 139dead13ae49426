package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pizzaria/backend/internal/domain/fiscal"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormEntryInvoiceRepository_ExistsByKey(t *testing.T) {
	t.Run("matches the full composite key", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormEntryInvoiceRepository(gormDB)

		supplierID := uuid.New()
		key, err := fiscal.NewInvoiceKey("22232", "55", "1", supplierID)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "entry_invoices" WHERE number = \$1 AND model = \$2 AND series = \$3 AND supplier_id = \$4`).
			WithArgs("22232", "55", "1", supplierID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByKey(context.Background(), key)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEntryInvoiceRepository_FindByKey(t *testing.T) {
	t.Run("returns ErrNotFound for unknown key", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormEntryInvoiceRepository(gormDB)

		supplierID := uuid.New()
		key, err := fiscal.NewInvoiceKey("99999", "55", "1", supplierID)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "entry_invoices" WHERE number = \$1 AND model = \$2 AND series = \$3 AND supplier_id = \$4 ORDER BY .* LIMIT .*`).
			WithArgs("99999", "55", "1", supplierID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		invoice, err := repo.FindByKey(context.Background(), key)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, invoice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormEntryInvoiceRepository_DeleteByKey(t *testing.T) {
	t.Run("returns ErrNotFound when the document is absent", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormEntryInvoiceRepository(gormDB)

		supplierID := uuid.New()
		key, err := fiscal.NewInvoiceKey("404", "55", "1", supplierID)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT "id" FROM "entry_invoices" WHERE number = \$1 AND model = \$2 AND series = \$3 AND supplier_id = \$4 ORDER BY .* LIMIT .*`).
			WithArgs("404", "55", "1", supplierID, 1).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		err = repo.DeleteByKey(context.Background(), key)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
