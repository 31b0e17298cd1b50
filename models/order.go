package models

import "time"

// Order represents a tailoring order. OrderNo is the caller-supplied natural key
// and never changes once the row exists.
type Order struct {
	OrderNo    string    `gorm:"primaryKey;column:order_no;size:64" json:"order_no"`
	CustomerID *uint     `gorm:"index" json:"customer_id"` // nullable, cleared when the customer is deleted
	Date       time.Time `gorm:"not null" json:"date"`
	Note       *string   `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Items  []Item       `gorm:"foreignKey:OrderNo" json:"-"`
	Photos []OrderPhoto `gorm:"foreignKey:OrderNo" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderPhoto is a photo attached to an order. The image itself lives in object
// storage under ObjectKey.
type OrderPhoto struct {
	PhotoID   uint      `gorm:"primaryKey;column:photo_id" json:"photo_id"`
	OrderNo   string    `gorm:"not null;index;size:64" json:"order_no"`
	ObjectKey string    `gorm:"not null" json:"object_key"`
	ImageURL  *string   `gorm:"-" json:"image_url,omitempty"` // computed field, presigned download URL
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderPhoto model
func (OrderPhoto) TableName() string {
	return "order_photos"
}

// MaxPhotosPerOrder caps how many photos an order may carry.
const MaxPhotosPerOrder = 5
