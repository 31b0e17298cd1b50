package repository

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type SupplierRepo struct {
	crudRepo[models.Supplier]
}

func NewSupplierRepo(db *gorm.DB) *SupplierRepo {
	return &SupplierRepo{crudRepo: newCrudRepo[models.Supplier](db, "supplier_id", SupplierFields)}
}

type FabricOrderRepo struct {
	crudRepo[models.FabricOrder]
}

func NewFabricOrderRepo(db *gorm.DB) *FabricOrderRepo {
	return &FabricOrderRepo{crudRepo: newCrudRepo[models.FabricOrder](db, "order_id", FabricOrderFields)}
}

// ListByFabricCode matches the fabric code without regard to case.
func (r *FabricOrderRepo) ListByFabricCode(ctx context.Context, code string) ([]models.FabricOrder, error) {
	var list []models.FabricOrder
	err := r.db.WithContext(ctx).
		Where("LOWER(fabric_code) = ?", models.FabricCodeKey(code)).
		Order("order_id ASC").
		Find(&list).Error
	return list, err
}

type RawMaterialsOrderRepo struct {
	crudRepo[models.RawMaterialsOrder]
}

func NewRawMaterialsOrderRepo(db *gorm.DB) *RawMaterialsOrderRepo {
	return &RawMaterialsOrderRepo{crudRepo: newCrudRepo[models.RawMaterialsOrder](db, "order_id", RawMaterialsOrderFields)}
}
