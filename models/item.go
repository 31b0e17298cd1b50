package models

import "time"

// Item is one garment made for an order. Exactly one of the three measurement
// columns is set, chosen by ItemType. The owning customer is always the order's
// customer, so items carry no customer column of their own.
type Item struct {
	ItemID              uint        `gorm:"primaryKey;column:item_id" json:"item_id"`
	OrderNo             string      `gorm:"not null;index;size:64" json:"order_no"`
	ItemName            string      `gorm:"not null" json:"item_name"`
	ItemType            GarmentType `gorm:"not null;size:16" json:"item_type"`
	JacketMeasurementID *string     `gorm:"size:36;index" json:"jacket_measurement_id"`
	ShirtMeasurementID  *string     `gorm:"size:36;index" json:"shirt_measurement_id"`
	PantMeasurementID   *string     `gorm:"size:36;index" json:"pant_measurement_id"`
	FabricID            *uint       `gorm:"index" json:"fabric_id"`
	LiningFabricID      *uint       `gorm:"index" json:"lining_fabric_id"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}
