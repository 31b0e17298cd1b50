package repository

import (
	"context"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type ItemRepo struct {
	crudRepo[models.Item]
}

func NewItemRepo(db *gorm.DB) *ItemRepo {
	return &ItemRepo{crudRepo: newCrudRepo[models.Item](db, "item_id", ItemFields)}
}

func (r *ItemRepo) ListByOrder(ctx context.Context, orderNo string) ([]models.Item, error) {
	var list []models.Item
	err := r.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		Order("item_id ASC").
		Find(&list).Error
	return list, err
}

func (r *ItemRepo) CountByOrder(ctx context.Context, orderNo string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Where("order_no = ?", orderNo).Count(&cnt).Error
	return cnt, err
}
