package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warefront/warefront-backend/pkg/db/models"
	"github.com/warefront/warefront-backend/pkg/pagination"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	items := `
CREATE TABLE IF NOT EXISTS inventory_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  warehouse TEXT NOT NULL,
  price NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(items).Error)
	require.NoError(t, db.Exec(`DELETE FROM inventory_items`).Error)
	return db
}

func seedItem(t *testing.T, repo *Repository, name string, stock int, createdAt time.Time) *models.InventoryItem {
	t.Helper()

	item := &models.InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Stock:     stock,
		Warehouse: "WH-A",
		Price:     decimal.RequireFromString("9.99"),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func TestInventoryRepoCreateAndFind(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	created := seedItem(t, repo, "bolts", 40, time.Now().UTC())

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "bolts", found.Name)
	assert.Equal(t, 40, found.Stock)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("9.99")))
}

func TestInventoryRepoFindMissing(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInventoryRepoUpdate(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	item := seedItem(t, repo, "bolts", 40, time.Now().UTC())
	item.Stock = 12
	item.Name = "hex bolts"
	require.NoError(t, repo.Update(context.Background(), item))

	found, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, found.Stock)
	assert.Equal(t, "hex bolts", found.Name)
}

func TestInventoryRepoDelete(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	item := seedItem(t, repo, "bolts", 40, time.Now().UTC())
	require.NoError(t, repo.Delete(context.Background(), item.ID))

	_, err := repo.FindByID(context.Background(), item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(context.Background(), item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInventoryRepoListCursorPagination(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedItem(t, repo, "a", 1, base)
	second := seedItem(t, repo, "b", 2, base.Add(time.Second))
	third := seedItem(t, repo, "c", 3, base.Add(2*time.Second))

	page, err := repo.List(context.Background(), pagination.Params{Limit: 2})
	require.NoError(t, err)
	// Limit 2 plus the buffer row means all three come back; the service trims.
	require.Len(t, page, 3)
	assert.Equal(t, first.ID, page[0].ID)
	assert.Equal(t, second.ID, page[1].ID)

	cursor := pagination.EncodeCursor(pagination.Cursor{
		CreatedAt: page[1].CreatedAt,
		ID:        page[1].ID,
	})
	rest, err := repo.List(context.Background(), pagination.Params{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, third.ID, rest[0].ID)
}

func TestInventoryRepoListRejectsBadCursor(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	_, err := repo.List(context.Background(), pagination.Params{Cursor: "not-base64!"})
	assert.Error(t, err)
}

func TestInventoryRepoListAllOrdersByCreation(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedItem(t, repo, "later", 1, base.Add(time.Minute))
	seedItem(t, repo, "earlier", 1, base)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "earlier", all[0].Name)
	assert.Equal(t, "later", all[1].Name)
}
