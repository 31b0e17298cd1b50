package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FabricRepo struct {
	crudRepo[models.Fabric]
}

func NewFabricRepo(db *gorm.DB) *FabricRepo {
	return &FabricRepo{crudRepo: newCrudRepo[models.Fabric](db, "fabric_id", FabricFields)}
}

// GetByCode looks a fabric up by code, ignoring case and surrounding blanks.
func (r *FabricRepo) GetByCode(ctx context.Context, code string) (*models.Fabric, error) {
	var f models.Fabric
	tx := r.db.WithContext(ctx).Where("code_key = ?", models.FabricCodeKey(code)).Limit(1).Find(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &f, nil
}

// InsertIfAbsent inserts f unless a fabric with the same code key exists.
// It reports whether a row was written.
func (r *FabricRepo) InsertIfAbsent(ctx context.Context, f *models.Fabric) (bool, error) {
	f.CodeKey = models.FabricCodeKey(f.Code)
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code_key"}},
			DoNothing: true,
		}).
		Create(f)
	return tx.RowsAffected > 0, tx.Error
}

// Create stores a new fabric with its code key filled in.
func (r *FabricRepo) Create(ctx context.Context, f *models.Fabric) error {
	f.CodeKey = models.FabricCodeKey(f.Code)
	return r.db.WithContext(ctx).Create(f).Error
}

// Update keeps code_key in step with code. Renaming onto a code another
// fabric already has (in any case) is ErrDuplicate.
func (r *FabricRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	cols, err := r.fields.Columns(fields)
	if err != nil {
		return err
	}
	if code, ok := cols["code"]; ok {
		s, ok := code.(string)
		if !ok {
			return fmt.Errorf("%w: code must be a string", ErrUnknownField)
		}
		key := models.FabricCodeKey(s)
		var cnt int64
		err := r.db.WithContext(ctx).Model(&models.Fabric{}).
			Where("code_key = ? AND fabric_id <> ?", key, id).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return fmt.Errorf("%w: fabric code %q", ErrDuplicate, s)
		}
		cols["code_key"] = key
	}

	err = r.updateColumns(ctx, id, cols)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: fabric code %v", ErrDuplicate, cols["code"])
	}
	return err
}

// SetImageKey stores or clears (nil) the fabric's image object key.
func (r *FabricRepo) SetImageKey(ctx context.Context, id uint, key *string) error {
	tx := r.db.WithContext(ctx).Model(&models.Fabric{}).Where("fabric_id = ?", id).Update("image_key", key)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// InUse reports whether any item uses the fabric as shell or lining.
func (r *FabricRepo) InUse(ctx context.Context, id uint) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("fabric_id = ? OR lining_fabric_id = ?", id, id).
		Count(&cnt).Error
	return cnt > 0, err
}
