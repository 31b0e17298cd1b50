package models

import "time"

// Customer represents a shop customer. Orders and measurement records point at it
// through a nullable customer_id so they survive when the customer is removed.
type Customer struct {
	CustomerID       uint       `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName        string     `gorm:"not null" json:"first_name"`
	MiddleName       *string    `json:"middle_name"`
	LastName         string     `gorm:"not null" json:"last_name"`
	Add1             string     `gorm:"column:add1;not null" json:"add1"`
	Add2             *string    `gorm:"column:add2" json:"add2"`
	Add3             *string    `gorm:"column:add3" json:"add3"`
	Add4             *string    `gorm:"column:add4" json:"add4"`
	Email            *string    `json:"email"`
	Mobile           string     `gorm:"not null;index" json:"mobile"`
	OfficePhone      *string    `json:"office_phone"`
	ResidentialPhone *string    `json:"residential_phone"`
	LastOrderedDate  *time.Time `json:"last_ordered_date"` // stamped when an order is created for the customer
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerOwnedModels lists the tables that reference a customer through a
// customer_id column. Items are not among them: they belong to an order.
func CustomerOwnedModels() []any {
	return []any{
		&Order{},
		&JacketMeasurement{},
		&FinalJacketMeasurement{},
		&ShirtMeasurement{},
		&FinalShirtMeasurement{},
		&PantMeasurement{},
		&FinalPantMeasurement{},
	}
}
