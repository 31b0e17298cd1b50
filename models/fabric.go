package models

import (
	"strings"
	"time"
)

// Fabric is a bolt of cloth in stock (or on order). Code is what staff type;
// CodeKey is its case-folded form and carries the unique index.
type Fabric struct {
	FabricID        uint      `gorm:"primaryKey;column:fabric_id" json:"fabric_id"`
	Code            string    `gorm:"not null" json:"code"`
	CodeKey         string    `gorm:"not null;uniqueIndex" json:"-"`
	Description     string    `json:"description"`
	AvailableLength float64   `json:"available_length"`
	FabricSupplier  string    `json:"fabric_supplier"`
	FabricBrand     string    `json:"fabric_brand"`
	StockLocation   string    `json:"stock_location"`
	Barcode         string    `json:"barcode"`
	ImageKey        *string   `json:"image_key"`                // nullable, object storage key
	ImageURL        *string   `gorm:"-" json:"image_url,omitempty"` // computed field, presigned download URL
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items      []Item `gorm:"foreignKey:FabricID" json:"-"`
	LinedItems []Item `gorm:"foreignKey:LiningFabricID" json:"-"`
}

// TableName specifies the table name for the Fabric model
func (Fabric) TableName() string {
	return "fabrics"
}

// FabricCodeKey normalises a fabric code for lookups and the unique index.
func FabricCodeKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// PlaceholderValue fills descriptive fabric columns for rows created on demand.
const PlaceholderValue = "N/A"

// NewPlaceholderFabric builds the row stored when an item references a fabric
// code nobody has registered yet.
func NewPlaceholderFabric(code string) Fabric {
	code = strings.TrimSpace(code)
	return Fabric{
		Code:            code,
		CodeKey:         FabricCodeKey(code),
		Description:     PlaceholderValue,
		AvailableLength: 0,
		FabricSupplier:  PlaceholderValue,
		FabricBrand:     PlaceholderValue,
		StockLocation:   PlaceholderValue,
		Barcode:         PlaceholderValue,
	}
}
