package services

import (
	"context"
	"testing"
	"time"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMeasurementService_CreateCopiesOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.New(db)
	svc := NewMeasurementService(repo, zap.NewNop())
	ctx := context.Background()

	c := testutil.CreateCustomer(t, db, "Max")
	order := testutil.CreateOrder(t, db, "MS-1", c.CustomerID)

	chest := 101.5
	rec := &models.FinalJacketMeasurement{}
	rec.Chest = &chest
	rec.MeasurementID = "caller-supplied"
	require.NoError(t, svc.Create(ctx, "MS-1", rec))

	assert.Len(t, rec.MeasurementID, 36)
	assert.NotEqual(t, "caller-supplied", rec.MeasurementID)
	require.NotNil(t, rec.CustomerID)
	assert.Equal(t, c.CustomerID, *rec.CustomerID)
	assert.True(t, rec.Date.Equal(order.Date))

	list, err := svc.ListByCustomer(ctx, models.GarmentJacket, true, c.CustomerID)
	require.NoError(t, err)
	got := *list.(*[]models.FinalJacketMeasurement)
	require.Len(t, got, 1)
	assert.Equal(t, rec.MeasurementID, got[0].MeasurementID)
	require.NotNil(t, got[0].Chest)
	assert.Equal(t, chest, *got[0].Chest)

	list, err = svc.ListByOrder(ctx, models.GarmentJacket, false, "MS-1")
	require.NoError(t, err)
	assert.Empty(t, *list.(*[]models.JacketMeasurement))
}

func TestMeasurementService_UnknownOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewMeasurementService(repository.New(db), zap.NewNop())

	err := svc.Create(context.Background(), "NOPE", &models.PantMeasurement{})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, int64(0), testutil.Count(t, db, &models.PantMeasurement{}, "1 = 1"))
}

func TestOrderService_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.New(db)
	svc := NewOrderService(repo, zap.NewNop())
	ctx := context.Background()

	c := testutil.CreateCustomer(t, db, "Noa")
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	order := &models.Order{OrderNo: " SO-1 ", CustomerID: &c.CustomerID, Date: date}
	require.NoError(t, svc.Create(ctx, order))
	assert.Equal(t, "SO-1", order.OrderNo)

	stamped, err := repo.Customers.Get(ctx, c.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, stamped.LastOrderedDate)
	assert.True(t, stamped.LastOrderedDate.Equal(date))

	missing := uint(999)
	tests := []struct {
		name  string
		order *models.Order
		err   error
	}{
		{name: "duplicate number", order: &models.Order{OrderNo: "SO-1"}, err: ErrOrderExists},
		{name: "blank number", order: &models.Order{OrderNo: "  "}, err: ErrValidation},
		{name: "unknown customer", order: &models.Order{OrderNo: "SO-2", CustomerID: &missing}, err: ErrCustomerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Create(ctx, tt.order), tt.err)
		})
	}

	walkIn := &models.Order{OrderNo: "SO-3"}
	require.NoError(t, svc.Create(ctx, walkIn))
	assert.False(t, walkIn.Date.IsZero())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFound(repository.ErrNotFound))
	assert.True(t, IsNotFound(ErrCustomerNotFound))
	assert.True(t, IsValidation(repository.ErrUnknownField))
	assert.True(t, IsValidation(ErrUnknownGarment))
	assert.True(t, IsConflict(ErrPhotoLimit))
	assert.False(t, IsConflict(ErrValidation))
}
