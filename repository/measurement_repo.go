package repository

import (
	"context"
	"fmt"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type MeasurementRepo struct {
	db *gorm.DB
}

func NewMeasurementRepo(db *gorm.DB) *MeasurementRepo {
	return &MeasurementRepo{db: db}
}

func (r *MeasurementRepo) Create(ctx context.Context, rec models.MeasurementRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListByCustomer returns a pointer to a slice of the garment's record type.
func (r *MeasurementRepo) ListByCustomer(ctx context.Context, garment models.GarmentType, final bool, customerID uint) (any, error) {
	return r.list(ctx, garment, final, "customer_id = ?", customerID)
}

func (r *MeasurementRepo) ListByOrder(ctx context.Context, garment models.GarmentType, final bool, orderNo string) (any, error) {
	return r.list(ctx, garment, final, "order_no = ?", orderNo)
}

func (r *MeasurementRepo) list(ctx context.Context, garment models.GarmentType, final bool, cond string, arg any) (any, error) {
	dest, ok := models.NewMeasurementSlice(garment, final)
	if !ok {
		return nil, fmt.Errorf("unknown garment type %q", garment)
	}
	err := r.db.WithContext(ctx).Where(cond, arg).Order("date DESC").Find(dest).Error
	return dest, err
}

// Exists reports whether id is a current or final measurement of the garment
// taken for the order.
func (r *MeasurementRepo) Exists(ctx context.Context, garment models.GarmentType, id, orderNo string) (bool, error) {
	for _, final := range []bool{false, true} {
		model, ok := models.NewMeasurement(garment, final)
		if !ok {
			return false, fmt.Errorf("unknown garment type %q", garment)
		}
		var cnt int64
		if err := r.db.WithContext(ctx).Model(model).Where("measurement_id = ? AND order_no = ?", id, orderNo).Count(&cnt).Error; err != nil {
			return false, err
		}
		if cnt > 0 {
			return true, nil
		}
	}
	return false, nil
}
