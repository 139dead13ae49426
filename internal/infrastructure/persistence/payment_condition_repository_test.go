package persistence

import (
	"context"
	"testing"

	"github.com/pizzaria/backend/internal/domain/finance"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupPaymentConditionTestDB creates an in-memory SQLite database for testing
func setupPaymentConditionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE payment_conditions (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			active INTEGER NOT NULL DEFAULT 1
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE payment_condition_rules (
			id TEXT PRIMARY KEY,
			condition_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			days_offset INTEGER NOT NULL,
			percentage NUMERIC NOT NULL,
			payment_method_id TEXT NOT NULL,
			UNIQUE(condition_id, number)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func twoInstallmentRules(methodID uuid.UUID) []finance.InstallmentRule {
	return []finance.InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: decimal.NewFromInt(50), PaymentMethodID: methodID},
		{Number: 2, DaysOffset: 30, Percentage: decimal.NewFromInt(50), PaymentMethodID: methodID},
	}
}

func TestGormPaymentConditionRepository_SaveAndFind(t *testing.T) {
	db := setupPaymentConditionTestDB(t)
	repo := NewGormPaymentConditionRepository(db)
	ctx := context.Background()

	methodID := uuid.New()
	condition, err := finance.NewPaymentCondition("50/50 in 30 days", "Half upfront, half in 30 days", twoInstallmentRules(methodID))
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, condition))

	retrieved, err := repo.FindByID(ctx, condition.ID)
	require.NoError(t, err)
	assert.Equal(t, condition.ID, retrieved.ID)
	assert.Equal(t, "50/50 in 30 days", retrieved.Name)
	assert.True(t, retrieved.Active)
	require.Len(t, retrieved.Rules, 2)
	assert.Equal(t, 1, retrieved.Rules[0].Number)
	assert.Equal(t, 2, retrieved.Rules[1].Number)
	assert.Equal(t, 30, retrieved.Rules[1].DaysOffset)
	assert.True(t, retrieved.Rules[0].Percentage.Equal(decimal.NewFromInt(50)))

	byName, err := repo.FindByName(ctx, "50/50 in 30 days")
	require.NoError(t, err)
	assert.Equal(t, condition.ID, byName.ID)

	exists, err := repo.ExistsByName(ctx, "50/50 in 30 days")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormPaymentConditionRepository_SaveReplacesRules(t *testing.T) {
	db := setupPaymentConditionTestDB(t)
	repo := NewGormPaymentConditionRepository(db)
	ctx := context.Background()

	methodID := uuid.New()
	condition, err := finance.NewPaymentCondition("installments", "", twoInstallmentRules(methodID))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, condition))

	newRules := []finance.InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: decimal.NewFromInt(40), PaymentMethodID: methodID},
		{Number: 2, DaysOffset: 30, Percentage: decimal.NewFromInt(30), PaymentMethodID: methodID},
		{Number: 3, DaysOffset: 60, Percentage: decimal.NewFromInt(30), PaymentMethodID: methodID},
	}
	require.NoError(t, condition.Update("installments", "three installments", newRules))
	require.NoError(t, repo.Save(ctx, condition))

	retrieved, err := repo.FindByID(ctx, condition.ID)
	require.NoError(t, err)
	assert.Equal(t, "three installments", retrieved.Description)
	require.Len(t, retrieved.Rules, 3)
	assert.Equal(t, 60, retrieved.Rules[2].DaysOffset)

	// No orphaned rule rows left behind
	var ruleCount int64
	require.NoError(t, db.Table("payment_condition_rules").Count(&ruleCount).Error)
	assert.Equal(t, int64(3), ruleCount)
}

func TestGormPaymentConditionRepository_Delete(t *testing.T) {
	db := setupPaymentConditionTestDB(t)
	repo := NewGormPaymentConditionRepository(db)
	ctx := context.Background()

	condition, err := finance.NewPaymentCondition("cash", "", []finance.InstallmentRule{
		{Number: 1, DaysOffset: 0, Percentage: decimal.NewFromInt(100), PaymentMethodID: uuid.New()},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, condition))

	require.NoError(t, repo.Delete(ctx, condition.ID))

	_, err = repo.FindByID(ctx, condition.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var ruleCount int64
	require.NoError(t, db.Table("payment_condition_rules").Count(&ruleCount).Error)
	assert.Equal(t, int64(0), ruleCount)

	err = repo.Delete(ctx, condition.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
