package repository

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type OrderRepo struct {
	crudRepo[models.Order]
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{crudRepo: newCrudRepo[models.Order](db, "order_no", OrderFields)}
}

func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

// DeleteRows removes every row of model that belongs to orderNo. model must be a
// table with an order_no column.
func (r *OrderRepo) DeleteRows(ctx context.Context, model any, orderNo string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("order_no = ?", orderNo).Delete(model)
	return tx.RowsAffected, tx.Error
}

type PhotoRepo struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) *PhotoRepo {
	return &PhotoRepo{db: db}
}

func (r *PhotoRepo) ListByOrder(ctx context.Context, orderNo string) ([]models.OrderPhoto, error) {
	var list []models.OrderPhoto
	err := r.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		Order("photo_id ASC").
		Find(&list).Error
	return list, err
}

func (r *PhotoRepo) CountByOrder(ctx context.Context, orderNo string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.OrderPhoto{}).Where("order_no = ?", orderNo).Count(&cnt).Error
	return cnt, err
}

// KeysByOrder returns the object keys of every photo attached to the order.
func (r *PhotoRepo) KeysByOrder(ctx context.Context, orderNo string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).
		Model(&models.OrderPhoto{}).
		Where("order_no = ?", orderNo).
		Order("photo_id ASC").
		Pluck("object_key", &keys).Error
	return keys, err
}

func (r *PhotoRepo) Create(ctx context.Context, p *models.OrderPhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PhotoRepo) Get(ctx context.Context, orderNo string, photoID uint) (*models.OrderPhoto, error) {
	var p models.OrderPhoto
	tx := r.db.WithContext(ctx).Where("order_no = ? AND photo_id = ?", orderNo, photoID).Limit(1).Find(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PhotoRepo) Delete(ctx context.Context, orderNo string, photoID uint) error {
	tx := r.db.WithContext(ctx).Where("order_no = ? AND photo_id = ?", orderNo, photoID).Delete(&models.OrderPhoto{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
