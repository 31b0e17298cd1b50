package models

import "time"

// Supplier is a cloth or trimmings supplier.
type Supplier struct {
	SupplierID          uint      `gorm:"primaryKey;column:supplier_id" json:"supplier_id"`
	SupplierName        string    `gorm:"not null" json:"supplier_name"`
	Add1                *string   `gorm:"column:add1" json:"add1"`
	Add2                *string   `gorm:"column:add2" json:"add2"`
	Add3                *string   `gorm:"column:add3" json:"add3"`
	PhoneNumber1        *string   `gorm:"column:phone_number1" json:"phone_number1"`
	PhoneNumber2        *string   `gorm:"column:phone_number2" json:"phone_number2"`
	PhoneNumber3        *string   `gorm:"column:phone_number3" json:"phone_number3"`
	Email               *string   `json:"email"`
	PrimaryContactName1 *string   `gorm:"column:primary_contact_name1" json:"primary_contact_name1"`
	PrimaryContactName2 *string   `gorm:"column:primary_contact_name2" json:"primary_contact_name2"`
	PrimaryContactName3 *string   `gorm:"column:primary_contact_name3" json:"primary_contact_name3"`
	Notes               *string   `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// FabricOrder is a line on the list of fabric ordered from suppliers.
type FabricOrder struct {
	OrderID      uint       `gorm:"primaryKey;column:order_id" json:"order_id"`
	FabricCode   string     `gorm:"not null;index" json:"fabric_code"`
	Description  *string    `json:"description"`
	SupplierName *string    `json:"supplier_name"`
	SupplierID   *uint      `gorm:"index" json:"supplier_id"`
	Meters       float64    `json:"meters"`
	OrderedDate  *time.Time `json:"ordered_date"`
	OrderedFor   *string    `json:"ordered_for"` // usually the customer order number the fabric is for
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the FabricOrder model
func (FabricOrder) TableName() string {
	return "fabric_order_list"
}

// RawMaterialsOrder is a line on the list of trimmings and other raw materials ordered.
type RawMaterialsOrder struct {
	OrderID         uint       `gorm:"primaryKey;column:order_id" json:"order_id"`
	ProductName     string     `gorm:"not null" json:"product_name"`
	Description     *string    `json:"description"`
	RawMaterialCode *string    `gorm:"index" json:"raw_material_code"`
	Color           *string    `json:"color"`
	SupplierName    *string    `json:"supplier_name"`
	SupplierID      *uint      `gorm:"index" json:"supplier_id"`
	Quantity        int        `json:"quantity"`
	OrderedDate     *time.Time `json:"ordered_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the RawMaterialsOrder model
func (RawMaterialsOrder) TableName() string {
	return "raw_materials_order_list"
}
