package testutil

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrInjected is returned by statements failed on purpose with FailOn.
var ErrInjected = errors.New("injected failure")

// RequireTestEnvironmentOrSkip skips the test unless GO_ENV is "test".
// Use it for tests that talk to a real database.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}

// NewTestDB opens a migrated in-memory SQLite database with foreign keys
// enforced. The pool holds a single connection so every statement, including
// those inside transactions, sees the same in-memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// FailOn makes every create, update or delete statement against table fail
// with ErrInjected until the test ends.
func FailOn(t *testing.T, db *gorm.DB, op, table string) {
	t.Helper()

	name := "testutil:fail_" + op + "_" + table
	hook := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(ErrInjected)
		}
	}

	var err error
	switch op {
	case "create":
		err = db.Callback().Create().Before("gorm:create").Register(name, hook)
		t.Cleanup(func() { _ = db.Callback().Create().Remove(name) })
	case "update":
		err = db.Callback().Update().Before("gorm:update").Register(name, hook)
		t.Cleanup(func() { _ = db.Callback().Update().Remove(name) })
	case "delete":
		err = db.Callback().Delete().Before("gorm:delete").Register(name, hook)
		t.Cleanup(func() { _ = db.Callback().Delete().Remove(name) })
	default:
		t.Fatalf("unsupported operation %q", op)
	}
	require.NoError(t, err)
}

// CreateCustomer inserts a customer with the given first name.
func CreateCustomer(t *testing.T, db *gorm.DB, firstName string) models.Customer {
	t.Helper()

	c := models.Customer{
		FirstName: firstName,
		LastName:  "Test",
		Add1:      "1 High Street",
		Mobile:    "0700" + uuid.NewString()[:6],
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// CreateOrder inserts an order for the customer, dated today.
func CreateOrder(t *testing.T, db *gorm.DB, orderNo string, customerID uint) models.Order {
	t.Helper()

	o := models.Order{
		OrderNo:    orderNo,
		CustomerID: &customerID,
		Date:       time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

// CreateMeasurement inserts an empty measurement record for the order and
// returns its id.
func CreateMeasurement(t *testing.T, db *gorm.DB, garment models.GarmentType, final bool, order models.Order) string {
	t.Helper()

	rec, ok := models.NewMeasurement(garment, final)
	require.True(t, ok)
	base := rec.Base()
	base.MeasurementID = uuid.NewString()
	base.CustomerID = order.CustomerID
	base.OrderNo = order.OrderNo
	base.Date = order.Date
	require.NoError(t, db.Create(rec).Error)
	return base.MeasurementID
}

// CreateItem inserts an item of the garment type pointing at measurementID.
func CreateItem(t *testing.T, db *gorm.DB, orderNo string, garment models.GarmentType, measurementID string) models.Item {
	t.Helper()

	item := models.Item{OrderNo: orderNo, ItemName: string(garment), ItemType: garment}
	switch garment {
	case models.GarmentJacket:
		item.JacketMeasurementID = &measurementID
	case models.GarmentShirt:
		item.ShirtMeasurementID = &measurementID
	case models.GarmentPant:
		item.PantMeasurementID = &measurementID
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// CreatePhoto attaches a photo row with the given object key to the order.
func CreatePhoto(t *testing.T, db *gorm.DB, orderNo, key string) models.OrderPhoto {
	t.Helper()

	p := models.OrderPhoto{OrderNo: orderNo, ObjectKey: key}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// Count returns the number of rows of model matching the condition.
func Count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
