package inventory

import (
	"testing"

	"bilheteria/internal/catalog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a postgres-dialect gorm session that renders SQL without
// executing it.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

// The stock check and the subsequent write are only atomic if the reads
// actually take row locks; the generated SQL must carry the FOR UPDATE
// clause.
func TestLockedReadsRenderForUpdate(t *testing.T) {
	db := newDryRunDB(t)

	var lots []catalog.Lot
	stmt := lockForUpdate(db).
		Where("class_id = ?", uuid.New()).
		Order("priority ASC").
		Find(&lots).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")

	var mirrors []catalog.WebStock
	stmt = lockForUpdate(db).
		Where("class_id = ? AND lot_id = ?", uuid.New(), uuid.New()).
		Find(&mirrors).Statement
	assert.Contains(t, stmt.SQL.String(), "FOR UPDATE")
}
