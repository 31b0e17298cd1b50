package models

import (
	"time"
)

// User is a staff account allowed to use the API
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Token     *string   `gorm:"type:text" json:"-"` // nullable, the only token currently accepted for this user
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Customer{},
		&Order{},
		&Fabric{},
		&JacketMeasurement{},
		&FinalJacketMeasurement{},
		&ShirtMeasurement{},
		&FinalShirtMeasurement{},
		&PantMeasurement{},
		&FinalPantMeasurement{},
		&Item{},
		&OrderPhoto{},
		&Supplier{},
		&FabricOrder{},
		&RawMaterialsOrder{},
	}
}
