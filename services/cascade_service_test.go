package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CascadeServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    *repository.Repository
	store   *MockBlobStore
	service *CascadeService
	ctx     context.Context
}

func (s *CascadeServiceTestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = repository.New(s.db)
	s.store = NewMockBlobStore()
	s.service = NewCascadeService(s.repo, s.store, zap.NewNop())
	s.ctx = context.Background()
}

func TestCascadeServiceSuite(t *testing.T) {
	suite.Run(t, new(CascadeServiceTestSuite))
}

// seedOrder builds an order with one current and one final measurement per
// garment, an item per garment and the given number of photos.
func (s *CascadeServiceTestSuite) seedOrder(orderNo string, customerID uint, photos int) models.Order {
	t := s.T()
	order := testutil.CreateOrder(t, s.db, orderNo, customerID)
	for _, g := range models.GarmentTypes {
		id := testutil.CreateMeasurement(t, s.db, g, false, order)
		testutil.CreateMeasurement(t, s.db, g, true, order)
		testutil.CreateItem(t, s.db, orderNo, g, id)
	}
	for i := 0; i < photos; i++ {
		key := fmt.Sprintf("orders/%s/%d.jpg", orderNo, i)
		s.store.Seed(key, []byte("jpeg"))
		testutil.CreatePhoto(t, s.db, orderNo, key)
	}
	return order
}

func (s *CascadeServiceTestSuite) orderRowCount(orderNo string) int64 {
	var total int64
	for _, m := range orderDependents() {
		total += testutil.Count(s.T(), s.db, m, "order_no = ?", orderNo)
	}
	return total + testutil.Count(s.T(), s.db, &models.Order{}, "order_no = ?", orderNo)
}

func (s *CascadeServiceTestSuite) TestDeleteOrder_RemovesEverything() {
	c := testutil.CreateCustomer(s.T(), s.db, "Anna")
	s.seedOrder("ORD-1", c.CustomerID, 2)
	s.seedOrder("ORD-2", c.CustomerID, 1)

	res, err := s.service.DeleteOrder(s.ctx, "ORD-1")
	s.Require().NoError(err)

	s.Equal("ORD-1", res.OrderNo)
	s.Empty(res.OrphanedKeys)
	s.Equal(int64(2), res.Deleted["order_photos"])
	s.Equal(int64(3), res.Deleted["items"])
	s.Equal(int64(1), res.Deleted["final_pant_measurements"])
	s.Equal(int64(1), res.Deleted["jacket_measurements"])
	s.Equal(int64(1), res.Deleted["orders"])

	s.Equal(int64(0), s.orderRowCount("ORD-1"))
	s.False(s.store.Exists("orders/ORD-1/0.jpg"))
	s.False(s.store.Exists("orders/ORD-1/1.jpg"))

	// The other order is untouched.
	s.Equal(int64(1+3+6+1), s.orderRowCount("ORD-2"))
	s.True(s.store.Exists("orders/ORD-2/0.jpg"))
}

func (s *CascadeServiceTestSuite) TestDeleteOrder_Scenario() {
	c := testutil.CreateCustomer(s.T(), s.db, "Ben")
	order := testutil.CreateOrder(s.T(), s.db, "ORD-100", c.CustomerID)
	jacket := testutil.CreateMeasurement(s.T(), s.db, models.GarmentJacket, false, order)
	testutil.CreateItem(s.T(), s.db, order.OrderNo, models.GarmentJacket, jacket)
	testutil.CreateItem(s.T(), s.db, order.OrderNo, models.GarmentJacket, jacket)
	s.store.Seed("orders/ORD-100/front.jpg", []byte("jpeg"))
	testutil.CreatePhoto(s.T(), s.db, order.OrderNo, "orders/ORD-100/front.jpg")

	_, err := s.service.DeleteOrder(s.ctx, "ORD-100")
	s.Require().NoError(err)

	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Item{}, "order_no = ?", "ORD-100"))
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.JacketMeasurement{}, "order_no = ?", "ORD-100"))
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.OrderPhoto{}, "order_no = ?", "ORD-100"))
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Order{}, "order_no = ?", "ORD-100"))

	_, err = s.store.PresignDownload(s.ctx, "orders/ORD-100/front.jpg")
	s.Error(err, "the photo object should no longer be retrievable")
}

func (s *CascadeServiceTestSuite) TestDeleteOrder_RollsBackOnFailure() {
	c := testutil.CreateCustomer(s.T(), s.db, "Cleo")
	s.seedOrder("ORD-3", c.CustomerID, 1)
	before := s.orderRowCount("ORD-3")

	tables := []string{"items", "shirt_measurements", "final_jacket_measurements", "orders"}
	for _, table := range tables {
		s.Run(table, func() {
			testutil.FailOn(s.T(), s.db, "delete", table)

			_, err := s.service.DeleteOrder(s.ctx, "ORD-3")
			s.Require().Error(err)
			s.ErrorIs(err, testutil.ErrInjected)

			s.Equal(before, s.orderRowCount("ORD-3"))
			s.True(s.store.Exists("orders/ORD-3/0.jpg"), "no object is touched when the rows stay")
		})
	}
}

func (s *CascadeServiceTestSuite) TestDeleteOrder_NotFound() {
	_, err := s.service.DeleteOrder(s.ctx, "NOPE")
	s.ErrorIs(err, ErrOrderNotFound)

	_, err = s.service.DeleteOrder(s.ctx, "  ")
	s.ErrorIs(err, ErrValidation)
}

func (s *CascadeServiceTestSuite) TestDeleteOrder_StorageFailureIsAWarning() {
	c := testutil.CreateCustomer(s.T(), s.db, "Dora")
	s.seedOrder("ORD-4", c.CustomerID, 3)
	s.store.FailDeletes("orders/ORD-4/1.jpg")

	res, err := s.service.DeleteOrder(s.ctx, "ORD-4")
	s.Require().NoError(err)

	s.Equal([]string{"orders/ORD-4/1.jpg"}, res.OrphanedKeys)
	s.Equal(int64(0), s.orderRowCount("ORD-4"), "committed rows stay deleted")
	s.False(s.store.Exists("orders/ORD-4/0.jpg"))
	s.False(s.store.Exists("orders/ORD-4/2.jpg"))
}

func (s *CascadeServiceTestSuite) TestMergeCustomers_Scenario() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	b := testutil.CreateCustomer(s.T(), s.db, "Bea")
	c := testutil.CreateCustomer(s.T(), s.db, "Cat")
	testutil.CreateOrder(s.T(), s.db, "M-1", a.CustomerID)
	testutil.CreateOrder(s.T(), s.db, "M-2", b.CustomerID)
	testutil.CreateOrder(s.T(), s.db, "M-3", c.CustomerID)

	res, err := s.service.MergeCustomers(s.ctx, []uint{a.CustomerID, b.CustomerID, c.CustomerID})
	s.Require().NoError(err)
	s.Equal(a.CustomerID, res.TargetID)
	s.Equal([]uint{b.CustomerID, c.CustomerID}, res.MergedIDs)
	s.Equal(int64(2), res.Removed)
	s.Equal(int64(2), res.Reassigned["orders"])

	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id = ?", a.CustomerID))
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id IN ?", []uint{b.CustomerID, c.CustomerID}))
	s.Equal(int64(3), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", a.CustomerID))
}

func (s *CascadeServiceTestSuite) TestMergeCustomers_MovesMeasurements() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	b := testutil.CreateCustomer(s.T(), s.db, "Bea")
	s.seedOrder("M-10", b.CustomerID, 0)

	_, err := s.service.MergeCustomers(s.ctx, []uint{a.CustomerID, b.CustomerID})
	s.Require().NoError(err)

	for _, m := range models.MeasurementModels() {
		s.Equal(int64(1), testutil.Count(s.T(), s.db, m, "customer_id = ?", a.CustomerID), m.TableName())
		s.Equal(int64(0), testutil.Count(s.T(), s.db, m, "customer_id = ?", b.CustomerID), m.TableName())
	}

	// Items follow their order to the surviving customer.
	var n int64
	s.Require().NoError(s.db.Model(&models.Item{}).
		Joins("JOIN orders ON orders.order_no = items.order_no").
		Where("orders.customer_id = ?", a.CustomerID).
		Count(&n).Error)
	s.Equal(int64(3), n)
}

func (s *CascadeServiceTestSuite) TestMergeCustomers_FirstIDSurvives() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	b := testutil.CreateCustomer(s.T(), s.db, "Bea")

	res, err := s.service.MergeCustomers(s.ctx, []uint{b.CustomerID, a.CustomerID, b.CustomerID})
	s.Require().NoError(err)
	s.Equal(b.CustomerID, res.TargetID)
	s.Equal([]uint{a.CustomerID}, res.MergedIDs)

	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id = ?", b.CustomerID))
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id = ?", a.CustomerID))
}

func (s *CascadeServiceTestSuite) TestMergeCustomers_Rejected() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	b := testutil.CreateCustomer(s.T(), s.db, "Bea")
	testutil.CreateOrder(s.T(), s.db, "R-1", b.CustomerID)

	tests := []struct {
		name string
		ids  []uint
		err  error
	}{
		{name: "empty", ids: nil, err: ErrValidation},
		{name: "single", ids: []uint{a.CustomerID}, err: ErrValidation},
		{name: "duplicates only", ids: []uint{a.CustomerID, a.CustomerID}, err: ErrValidation},
		{name: "zero id", ids: []uint{a.CustomerID, 0}, err: ErrValidation},
		{name: "missing target", ids: []uint{9999, b.CustomerID}, err: ErrCustomerNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.MergeCustomers(s.ctx, tt.ids)
			s.ErrorIs(err, tt.err)

			s.Equal(int64(2), testutil.Count(s.T(), s.db, &models.Customer{}, "1 = 1"))
			s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", b.CustomerID))
		})
	}
}

func (s *CascadeServiceTestSuite) TestMergeCustomers_RollsBackOnFailure() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	b := testutil.CreateCustomer(s.T(), s.db, "Bea")
	s.seedOrder("RB-1", b.CustomerID, 0)

	for _, step := range []struct{ op, table string }{
		{"update", "final_shirt_measurements"},
		{"delete", "customers"},
	} {
		s.Run(step.table, func() {
			testutil.FailOn(s.T(), s.db, step.op, step.table)

			_, err := s.service.MergeCustomers(s.ctx, []uint{a.CustomerID, b.CustomerID})
			s.ErrorIs(err, testutil.ErrInjected)

			s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id = ?", b.CustomerID))
			s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", b.CustomerID))
			for _, m := range models.MeasurementModels() {
				s.Equal(int64(1), testutil.Count(s.T(), s.db, m, "customer_id = ?", b.CustomerID), m.TableName())
			}
		})
	}
}

func (s *CascadeServiceTestSuite) TestDeleteCustomer_NullsReferences() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	other := testutil.CreateCustomer(s.T(), s.db, "Other")
	s.seedOrder("D-1", a.CustomerID, 0)
	s.seedOrder("D-2", other.CustomerID, 0)

	res, err := s.service.DeleteCustomer(s.ctx, a.CustomerID)
	s.Require().NoError(err)
	s.Equal(int64(1), res.Detached["orders"])

	for _, m := range models.CustomerOwnedModels() {
		s.Equal(int64(0), testutil.Count(s.T(), s.db, m, "customer_id = ?", a.CustomerID))
	}
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Customer{}, "customer_id = ?", a.CustomerID))

	// Rows survive without a customer.
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "order_no = ? AND customer_id IS NULL", "D-1"))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.PantMeasurement{}, "order_no = ? AND customer_id IS NULL", "D-1"))
	s.Equal(int64(3), testutil.Count(s.T(), s.db, &models.Item{}, "order_no = ?", "D-1"))

	// The other customer keeps everything.
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", other.CustomerID))
}

func (s *CascadeServiceTestSuite) TestDeleteCustomer_NotFound() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	s.seedOrder("NF-1", a.CustomerID, 0)

	_, err := s.service.DeleteCustomer(s.ctx, 4242)
	s.ErrorIs(err, ErrCustomerNotFound)
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", a.CustomerID))
}

func (s *CascadeServiceTestSuite) TestDeleteCustomer_RollsBackOnFailure() {
	a := testutil.CreateCustomer(s.T(), s.db, "Ann")
	s.seedOrder("F-1", a.CustomerID, 0)

	testutil.FailOn(s.T(), s.db, "delete", "customers")

	_, err := s.service.DeleteCustomer(s.ctx, a.CustomerID)
	s.ErrorIs(err, testutil.ErrInjected)
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Order{}, "customer_id = ?", a.CustomerID))
	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.JacketMeasurement{}, "customer_id = ?", a.CustomerID))
}

func (s *CascadeServiceTestSuite) TestEnsureFabric_Idempotent() {
	first, created, err := s.service.EnsureFabric(s.ctx, "HB-204")
	s.Require().NoError(err)
	s.True(created)
	s.Equal("HB-204", first.Code)
	s.Equal(models.PlaceholderValue, first.Description)
	s.Equal(models.PlaceholderValue, first.FabricSupplier)
	s.Equal(models.PlaceholderValue, first.Barcode)
	s.Zero(first.AvailableLength)
	s.Nil(first.ImageKey)

	second, created, err := s.service.EnsureFabric(s.ctx, " hb-204 ")
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.FabricID, second.FabricID)

	s.Equal(int64(1), testutil.Count(s.T(), s.db, &models.Fabric{}, "1 = 1"))
}

func (s *CascadeServiceTestSuite) TestEnsureFabric_Identifiers() {
	registered := models.Fabric{Code: "WOOL-9", Description: "Navy wool"}
	s.Require().NoError(s.repo.Fabrics.Create(s.ctx, &registered))

	byID, created, err := s.service.EnsureFabric(s.ctx, fmt.Sprint(registered.FabricID))
	s.Require().NoError(err)
	s.False(created)
	s.Equal(registered.FabricID, byID.FabricID)
	s.Equal("Navy wool", byID.Description)

	none, created, err := s.service.EnsureFabric(s.ctx, "   ")
	s.Require().NoError(err)
	s.False(created)
	s.Nil(none)

	numeric, created, err := s.service.EnsureFabric(s.ctx, "777")
	s.Require().NoError(err)
	s.True(created)
	s.Equal("777", numeric.Code)
}

func (s *CascadeServiceTestSuite) TestCreateItems() {
	c := testutil.CreateCustomer(s.T(), s.db, "Ivy")
	order := testutil.CreateOrder(s.T(), s.db, "I-1", c.CustomerID)
	jacket := testutil.CreateMeasurement(s.T(), s.db, models.GarmentJacket, false, order)
	shirt := testutil.CreateMeasurement(s.T(), s.db, models.GarmentShirt, true, order)
	pant := testutil.CreateMeasurement(s.T(), s.db, models.GarmentPant, false, order)

	items, err := s.service.CreateItems(s.ctx, "I-1", []ItemDescriptor{
		{ItemName: "Wedding jacket", ItemType: "Jacket", MeasurementID: jacket, Fabric: "SILK-1", LiningFabric: "LIN-7"},
		{ItemType: "shirt", MeasurementID: shirt, Fabric: "silk-1"},
		{ItemType: "pant", MeasurementID: pant},
	})
	s.Require().NoError(err)
	s.Require().Len(items, 3)

	s.Equal(models.GarmentJacket, items[0].ItemType)
	s.Equal("Wedding jacket", items[0].ItemName)
	s.Require().NotNil(items[0].JacketMeasurementID)
	s.Equal(jacket, *items[0].JacketMeasurementID)
	s.Nil(items[0].ShirtMeasurementID)
	s.Nil(items[0].PantMeasurementID)
	s.Require().NotNil(items[0].FabricID)
	s.Require().NotNil(items[0].LiningFabricID)

	s.Equal("shirt", items[1].ItemName)
	s.Require().NotNil(items[1].ShirtMeasurementID)
	s.Equal(shirt, *items[1].ShirtMeasurementID)
	s.Equal(*items[0].FabricID, *items[1].FabricID, "fabric codes match regardless of case")

	s.Require().NotNil(items[2].PantMeasurementID)
	s.Nil(items[2].FabricID)
	s.Nil(items[2].LiningFabricID)

	s.Equal(int64(2), testutil.Count(s.T(), s.db, &models.Fabric{}, "1 = 1"))
	s.Equal(int64(3), testutil.Count(s.T(), s.db, &models.Item{}, "order_no = ?", "I-1"))
}

func (s *CascadeServiceTestSuite) TestCreateItems_AllOrNothing() {
	c := testutil.CreateCustomer(s.T(), s.db, "Jon")
	order := testutil.CreateOrder(s.T(), s.db, "I-2", c.CustomerID)
	jacket := testutil.CreateMeasurement(s.T(), s.db, models.GarmentJacket, false, order)
	shirt := testutil.CreateMeasurement(s.T(), s.db, models.GarmentShirt, false, order)
	other := testutil.CreateOrder(s.T(), s.db, "I-2B", c.CustomerID)
	otherPant := testutil.CreateMeasurement(s.T(), s.db, models.GarmentPant, false, other)

	tests := []struct {
		name  string
		third ItemDescriptor
		err   error
	}{
		{
			name:  "measurement of another order",
			third: ItemDescriptor{ItemType: "pant", MeasurementID: otherPant},
			err:   ErrMeasurementMissing,
		},
		{
			name:  "invalid garment type",
			third: ItemDescriptor{ItemType: "cape", MeasurementID: shirt},
			err:   ErrUnknownGarment,
		},
		{
			name:  "measurement of another garment",
			third: ItemDescriptor{ItemType: "pant", MeasurementID: shirt},
			err:   ErrMeasurementMissing,
		},
		{
			name:  "missing measurement id",
			third: ItemDescriptor{ItemType: "shirt"},
			err:   ErrValidation,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateItems(s.ctx, "I-2", []ItemDescriptor{
				{ItemType: "jacket", MeasurementID: jacket, Fabric: "NEW-1"},
				{ItemType: "shirt", MeasurementID: shirt, LiningFabric: "NEW-2"},
				tt.third,
			})
			s.ErrorIs(err, tt.err)
			s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Item{}, "order_no = ?", "I-2"))
			s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Fabric{}, "1 = 1"), "placeholder fabrics are rolled back too")
		})
	}
}

func (s *CascadeServiceTestSuite) TestCreateItems_InsertFailureRollsBack() {
	c := testutil.CreateCustomer(s.T(), s.db, "Kim")
	order := testutil.CreateOrder(s.T(), s.db, "I-3", c.CustomerID)
	jacket := testutil.CreateMeasurement(s.T(), s.db, models.GarmentJacket, false, order)

	inserts := 0
	require.NoError(s.T(), s.db.Callback().Create().Before("gorm:create").Register("test:fail_third_item", func(tx *gorm.DB) {
		if tx.Statement.Table != "items" {
			return
		}
		inserts++
		if inserts == 3 {
			_ = tx.AddError(testutil.ErrInjected)
		}
	}))
	s.T().Cleanup(func() { _ = s.db.Callback().Create().Remove("test:fail_third_item") })

	desc := ItemDescriptor{ItemType: "jacket", MeasurementID: jacket}
	_, err := s.service.CreateItems(s.ctx, "I-3", []ItemDescriptor{desc, desc, desc})
	s.ErrorIs(err, testutil.ErrInjected)
	s.Equal(3, inserts)
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Item{}, "order_no = ?", "I-3"))
}

func (s *CascadeServiceTestSuite) TestCreateItems_Rejected() {
	_, err := s.service.CreateItems(s.ctx, "MISSING", []ItemDescriptor{{ItemType: "shirt", MeasurementID: "x"}})
	s.ErrorIs(err, ErrOrderNotFound)

	_, err = s.service.CreateItems(s.ctx, "MISSING", nil)
	s.ErrorIs(err, ErrValidation)
}

func (s *CascadeServiceTestSuite) TestCreateItem_Single() {
	c := testutil.CreateCustomer(s.T(), s.db, "Lea")
	order := testutil.CreateOrder(s.T(), s.db, "I-4", c.CustomerID)
	pant := testutil.CreateMeasurement(s.T(), s.db, models.GarmentPant, true, order)

	item, err := s.service.CreateItem(s.ctx, "I-4", ItemDescriptor{ItemType: "pant", MeasurementID: pant, Fabric: "CORD-3"})
	s.Require().NoError(err)
	s.NotZero(item.ItemID)
	s.Require().NotNil(item.PantMeasurementID)
	s.Equal(pant, *item.PantMeasurementID)

	fabric, err := s.repo.Fabrics.GetByCode(s.ctx, "cord-3")
	s.Require().NoError(err)
	s.Equal(fabric.FabricID, *item.FabricID)
}

func TestDistinctIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, distinctIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, distinctIDs(nil))
}

func (s *CascadeServiceTestSuite) TestUpdateItem_Fabrics() {
	c := testutil.CreateCustomer(s.T(), s.db, "Max")
	order := testutil.CreateOrder(s.T(), s.db, "U-1", c.CustomerID)
	jacket := testutil.CreateMeasurement(s.T(), s.db, models.GarmentJacket, false, order)
	item := testutil.CreateItem(s.T(), s.db, "U-1", models.GarmentJacket, jacket)
	wool := models.Fabric{Code: "WOOL-1", CodeKey: "wool-1"}
	s.Require().NoError(s.db.Create(&wool).Error)

	load := func() models.Item {
		var got models.Item
		s.Require().NoError(s.db.First(&got, item.ItemID).Error)
		return got
	}

	err := s.service.UpdateItem(s.ctx, item.ItemID, map[string]any{"lining_fabric_id": float64(9999)})
	s.ErrorIs(err, ErrFabricNotFound)

	err = s.service.UpdateItem(s.ctx, item.ItemID, map[string]any{"fabric_id": "wool"})
	s.ErrorIs(err, ErrValidation)

	s.Require().NoError(s.service.UpdateItem(s.ctx, item.ItemID, map[string]any{"fabric_id": float64(wool.FabricID)}))
	s.Equal(wool.FabricID, *load().FabricID)

	s.Require().NoError(s.service.UpdateItem(s.ctx, item.ItemID, map[string]any{"lining_fabric": "Bemberg-3"}))
	lining, err := s.repo.Fabrics.GetByCode(s.ctx, "bemberg-3")
	s.Require().NoError(err)
	s.Equal(models.PlaceholderValue, lining.Description)
	s.Equal(lining.FabricID, *load().LiningFabricID)

	err = s.service.UpdateItem(s.ctx, 9999, map[string]any{"fabric": "NEW-9"})
	s.ErrorIs(err, repository.ErrNotFound)
	s.Equal(int64(0), testutil.Count(s.T(), s.db, &models.Fabric{}, "code_key = ?", "new-9"), "placeholder is rolled back with the update")
}
