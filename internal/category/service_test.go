package category

import (
	"context"
	"testing"

	"crud-backend/internal/apierror"
	"crud-backend/internal/database/dbtest"
	"crud-backend/internal/models"
	"crud-backend/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	return NewService(db, validation.New(db)), db
}

func TestPrepareInsert_DerivesSlug(t *testing.T) {
	cases := map[string]string{
		"Hot Drinks":        "hot-drinks",
		"  Çay & Kahve  ":   "cay-and-kahve",
		"Already-Slugged 2": "already-slugged-2",
	}
	for name, want := range cases {
		c := models.Category{Name: name}
		prepareInsert(&c)
		assert.Equal(t, want, c.Slug, name)
	}
}

func TestCreate_SetsSlug(t *testing.T) {
	svc, _ := newService(t)

	cat, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Hot Drinks", CategoryType: "menu"})
	require.NoError(t, err)

	assert.Equal(t, "hot-drinks", cat.Slug)
	assert.Equal(t, "menu", cat.CategoryType)
}

func TestUpdate_KeepsSlug(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	cat, err := svc.Create(ctx, CreateCategoryRequest{Name: "Hot Drinks", CategoryType: "menu"})
	require.NoError(t, err)

	newName := "Cold Drinks"
	updated, err := svc.Update(ctx, cat.ID, UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Cold Drinks", updated.Name)
	assert.Equal(t, "hot-drinks", updated.Slug)
	assert.Equal(t, "menu", updated.CategoryType)
}

func TestCreate_RequiresFields(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), CreateCategoryRequest{})

	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"The name field is required."}, verr.Errors["name"])
	assert.Equal(t, []string{"The category type field is required."}, verr.Errors["category_type"])
}

func TestDelete_RemovesProducts(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	cat, err := svc.Create(ctx, CreateCategoryRequest{Name: "Food", CategoryType: "menu"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Product{CategoryID: cat.ID, Name: "Soup", Price: decimal.NewFromInt(5)}).Error)

	products, err := svc.Products(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.NoError(t, svc.Delete(ctx, cat.ID))

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)

	_, err = svc.Products(ctx, cat.ID)
	assert.True(t, apierror.IsNotFound(err))
}
