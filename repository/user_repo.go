package repository

import (
	"context"
	"errors"

	"github.com/kendall-kelly/tailorshop-api/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

// SetToken replaces the user's current token; nil logs the user out.
func (r *UserRepo) SetToken(ctx context.Context, id uint, token *string) error {
	tx := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("token", token)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasToken reports whether token is the one currently stored for the user.
func (r *UserRepo) HasToken(ctx context.Context, id uint, token string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ? AND token = ?", id, token).Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepo) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
