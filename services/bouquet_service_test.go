package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/florett/florett-backend/models"
	"github.com/florett/florett-backend/services"
)

func TestBouquetService_Create_DefaultsActive(t *testing.T) {
	var persisted *models.Bouquet
	repo := &mockBouquetRepo{
		createFn: func(_ context.Context, b *models.Bouquet) error {
			persisted = b
			return nil
		},
	}
	svc := services.NewBouquetService(repo, zap.NewNop())

	bouquet, svcErr := svc.Create(context.Background(), &models.BouquetRequest{
		Name:        "Утренний туман",
		Price:       4500,
		Category:    models.CategoryDate,
		Composition: []string{"пионы", "эвкалипт"},
	})

	assert.Nil(t, svcErr)
	assert.True(t, bouquet.IsActive)
	assert.Equal(t, models.StringList{"пионы", "эвкалипт"}, persisted.Composition)
}

func TestBouquetService_Create_ExplicitlyInactive(t *testing.T) {
	svc := services.NewBouquetService(&mockBouquetRepo{}, zap.NewNop())

	inactive := false
	bouquet, svcErr := svc.Create(context.Background(), &models.BouquetRequest{
		Name:     "Зимний сад",
		Price:    5000,
		Category: models.CategoryWedding,
		IsActive: &inactive,
	})

	assert.Nil(t, svcErr)
	assert.False(t, bouquet.IsActive)
}

func TestBouquetService_Get_NotFound(t *testing.T) {
	repo := &mockBouquetRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.Bouquet, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := services.NewBouquetService(repo, zap.NewNop())

	_, svcErr := svc.Get(context.Background(), uuid.New())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "Букет не найден", svcErr.Message)
}

func TestBouquetService_Update_PreservesActiveWhenOmitted(t *testing.T) {
	id := uuid.New()
	repo := &mockBouquetRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.Bouquet, error) {
			return &models.Bouquet{ID: id, Name: "Старое имя", IsActive: false}, nil
		},
	}
	svc := services.NewBouquetService(repo, zap.NewNop())

	bouquet, svcErr := svc.Update(context.Background(), id, &models.BouquetRequest{
		Name:     "Новое имя",
		Price:    4800,
		Category: models.CategoryBirthday,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "Новое имя", bouquet.Name)
	assert.False(t, bouquet.IsActive)
}

func TestBouquetService_Delete_NotFound(t *testing.T) {
	repo := &mockBouquetRepo{
		deleteFn: func(_ context.Context, _ uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := services.NewBouquetService(repo, zap.NewNop())

	svcErr := svc.Delete(context.Background(), uuid.New())
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
