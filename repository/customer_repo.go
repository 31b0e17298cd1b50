package repository

import (
	"context"
	"strings"
	"time"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type CustomerRepo struct {
	crudRepo[models.Customer]
}

func NewCustomerRepo(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{crudRepo: newCrudRepo[models.Customer](db, "customer_id", CustomerFields)}
}

// Search matches a partial full name or order number, or an exact phone number.
func (r *CustomerRepo) Search(ctx context.Context, term string) ([]models.Customer, error) {
	term = strings.TrimSpace(term)
	pattern := "%" + strings.ToLower(term) + "%"

	var list []models.Customer
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Distinct("customers.*").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.customer_id").
		Where(`LOWER(customers.first_name || ' ' || COALESCE(customers.middle_name, '') || ' ' || customers.last_name) LIKE ?
			OR customers.mobile = ?
			OR customers.office_phone = ?
			OR customers.residential_phone = ?
			OR LOWER(orders.order_no) LIKE ?`,
			pattern, term, term, term, pattern).
		Order("customers.customer_id ASC").
		Find(&list).Error
	return list, err
}

// TouchLastOrdered moves last_ordered_date forward, never backwards.
func (r *CustomerRepo) TouchLastOrdered(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ? AND (last_ordered_date IS NULL OR last_ordered_date < ?)", id, at).
		Update("last_ordered_date", at).Error
}

// GetByOrderNo returns the customer that owns an order.
func (r *CustomerRepo) GetByOrderNo(ctx context.Context, orderNo string) (*models.Customer, error) {
	var c models.Customer
	tx := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.customer_id = customers.customer_id").
		Where("orders.order_no = ?", orderNo).
		Limit(1).
		Find(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &c, nil
}

// ReassignReferences points every row of model owned by one of from at to.
func (r *CustomerRepo) ReassignReferences(ctx context.Context, model any, from []uint, to uint) (int64, error) {
	tx := r.db.WithContext(ctx).Model(model).Where("customer_id IN ?", from).Update("customer_id", to)
	return tx.RowsAffected, tx.Error
}

// ClearReferences sets customer_id to NULL on every row of model owned by id.
func (r *CustomerRepo) ClearReferences(ctx context.Context, model any, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Model(model).Where("customer_id = ?", id).Update("customer_id", nil)
	return tx.RowsAffected, tx.Error
}

// DeleteMany removes the given customers and returns how many rows went.
func (r *CustomerRepo) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	tx := r.db.WithContext(ctx).Where("customer_id IN ?", ids).Delete(&models.Customer{})
	return tx.RowsAffected, tx.Error
}
