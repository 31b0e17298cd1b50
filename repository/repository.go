package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository bundles the per-table repositories over one *gorm.DB. Inside
// WithTx every repository shares the transaction's connection.
type Repository struct {
	DB                 *gorm.DB
	Customers          *CustomerRepo
	Orders             *OrderRepo
	Photos             *PhotoRepo
	Measurements       *MeasurementRepo
	Items              *ItemRepo
	Fabrics            *FabricRepo
	Users              *UserRepo
	Suppliers          *SupplierRepo
	FabricOrders       *FabricOrderRepo
	RawMaterialsOrders *RawMaterialsOrderRepo
}

// TxRunner runs fn inside a single transaction, committing when fn returns
// nil and rolling back otherwise.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *Repository) error) error
}

func New(db *gorm.DB) *Repository {
	return build(db)
}

func build(db *gorm.DB) *Repository {
	return &Repository{
		DB:                 db,
		Customers:          NewCustomerRepo(db),
		Orders:             NewOrderRepo(db),
		Photos:             NewPhotoRepo(db),
		Measurements:       NewMeasurementRepo(db),
		Items:              NewItemRepo(db),
		Fabrics:            NewFabricRepo(db),
		Users:              NewUserRepo(db),
		Suppliers:          NewSupplierRepo(db),
		FabricOrders:       NewFabricOrderRepo(db),
		RawMaterialsOrders: NewRawMaterialsOrderRepo(db),
	}
}

// WithTx borrows one connection for the whole of fn. gorm releases it on
// commit, rollback or panic.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(build(tx))
	})
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
