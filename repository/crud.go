package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// crudRepo covers the single-table create/read/update/delete every entity needs.
// pk is a column name fixed at construction, never request input.
type crudRepo[T any] struct {
	db     *gorm.DB
	pk     string
	fields FieldMap
}

func newCrudRepo[T any](db *gorm.DB, pk string, fields FieldMap) crudRepo[T] {
	return crudRepo[T]{db: db, pk: pk, fields: fields}
}

func (r crudRepo[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	err := r.db.WithContext(ctx).Order(r.pk + " ASC").Find(&list).Error
	return list, err
}

func (r crudRepo[T]) Get(ctx context.Context, id any) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Where(r.pk+" = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r crudRepo[T]) Exists(ctx context.Context, id any) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(r.pk+" = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r crudRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Update applies an allow-listed partial update and reports ErrNotFound when no row matched.
func (r crudRepo[T]) Update(ctx context.Context, id any, fields map[string]any) error {
	cols, err := r.fields.Columns(fields)
	if err != nil {
		return err
	}
	return r.updateColumns(ctx, id, cols)
}

func (r crudRepo[T]) updateColumns(ctx context.Context, id any, cols map[string]any) error {
	tx := r.db.WithContext(ctx).Model(new(T)).Where(r.pk+" = ?", id).Updates(cols)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r crudRepo[T]) Delete(ctx context.Context, id any) error {
	tx := r.db.WithContext(ctx).Where(r.pk+" = ?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
