package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestBouquetCreate_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	bouquet := &models.Bouquet{
		Name:        "Утренний туман",
		Price:       4500,
		Category:    models.CategoryDate,
		Composition: models.StringList{"пионы", "эвкалипт"},
		IsActive:    true,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "bouquets"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), bouquet)
	assert.NoError(t, err)
}

func TestBouquetFindAll_ActiveOnly(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "price", "category", "composition", "images", "is_active", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Винтажная роза", 5200, "birthday", `["розы"]`, `[]`, true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bouquets"`)).
		WithArgs(true).
		WillReturnRows(rows)

	bouquets, err := repo.FindAll(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, bouquets, 1)
	assert.Equal(t, "Винтажная роза", bouquets[0].Name)
	assert.Equal(t, models.StringList{"розы"}, bouquets[0].Composition)
}

func TestBouquetFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bouquets"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	b, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, b)
}

func TestBouquetFindByIDs_EmptySkipsQuery(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	bouquets, err := repo.FindByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, bouquets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBouquetDelete_SoftDelete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	// Soft delete is an UPDATE of deleted_at, not a DELETE.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bouquets" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestBouquetDelete_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "bouquets" SET "deleted_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBouquetCount(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewGormBouquetRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "bouquets"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(8), count)
}
