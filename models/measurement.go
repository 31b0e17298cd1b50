package models

import (
	"strings"
	"time"
)

// GarmentType names the garment families the shop takes measurements for.
type GarmentType string

const (
	GarmentJacket GarmentType = "jacket"
	GarmentShirt  GarmentType = "shirt"
	GarmentPant   GarmentType = "pant"
)

// GarmentTypes lists every supported garment in a stable order.
var GarmentTypes = []GarmentType{GarmentJacket, GarmentShirt, GarmentPant}

// ParseGarmentType accepts a garment name in any case.
func ParseGarmentType(s string) (GarmentType, bool) {
	g := GarmentType(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GarmentJacket, GarmentShirt, GarmentPant:
		return g, true
	}
	return "", false
}

// MeasurementBase holds the columns shared by every measurement table.
// Date is copied from the owning order when the record is created.
type MeasurementBase struct {
	MeasurementID string    `gorm:"primaryKey;column:measurement_id;size:36" json:"measurement_id"`
	CustomerID    *uint     `gorm:"index" json:"customer_id"`
	OrderNo       string    `gorm:"not null;index;size:64" json:"order_no"`
	Date          time.Time `gorm:"not null" json:"date"`
	OtherNotes    *string   `gorm:"type:text" json:"other_notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// Base returns the shared columns of a measurement record.
func (b *MeasurementBase) Base() *MeasurementBase {
	return b
}

// MeasurementRecord is implemented by all six measurement models.
type MeasurementRecord interface {
	Base() *MeasurementBase
	TableName() string
}

type JacketDimensions struct {
	JacketLength  *float64 `json:"jacket_length"`
	NaturalLength *float64 `json:"natural_length"`
	BackLength    *float64 `json:"back_length"`
	XBack         *float64 `json:"x_back"`
	HalfShoulder  *float64 `json:"half_shoulder"`
	ToSleeve      *float64 `json:"to_sleeve"`
	Chest         *float64 `json:"chest"`
	Waist         *float64 `json:"waist"`
	Collar        *float64 `json:"collar"`
}

type ShirtDimensions struct {
	Length          *float64 `json:"length"`
	HalfShoulder    *float64 `json:"half_shoulder"`
	ToSleeve        *float64 `json:"to_sleeve"`
	Chest           *float64 `json:"chest"`
	Waist           *float64 `json:"waist"`
	Collar          *float64 `json:"collar"`
	WaistCoatLength *float64 `json:"waist_coat_length"`
	SherwaniLength  *float64 `json:"sherwani_length"`
}

type PantDimensions struct {
	Length *float64 `json:"length"`
	Inseam *float64 `json:"inseam"`
	Waist  *float64 `json:"waist"`
	Hips   *float64 `json:"hips"`
	Bottom *float64 `json:"bottom"`
	Knee   *float64 `json:"knee"`
}

// JacketMeasurement is the first set of jacket measurements taken for an order.
type JacketMeasurement struct {
	MeasurementBase
	JacketDimensions
}

// TableName specifies the table name for the JacketMeasurement model
func (JacketMeasurement) TableName() string {
	return "jacket_measurements"
}

// FinalJacketMeasurement is the confirmed jacket measurement after fitting.
type FinalJacketMeasurement struct {
	MeasurementBase
	JacketDimensions
	WaistCoatLength *float64 `json:"waist_coat_length"`
	SherwaniLength  *float64 `json:"sherwani_length"`
}

// TableName specifies the table name for the FinalJacketMeasurement model
func (FinalJacketMeasurement) TableName() string {
	return "final_jacket_measurements"
}

type ShirtMeasurement struct {
	MeasurementBase
	ShirtDimensions
}

// TableName specifies the table name for the ShirtMeasurement model
func (ShirtMeasurement) TableName() string {
	return "shirt_measurements"
}

type FinalShirtMeasurement struct {
	MeasurementBase
	ShirtDimensions
}

// TableName specifies the table name for the FinalShirtMeasurement model
func (FinalShirtMeasurement) TableName() string {
	return "final_shirt_measurements"
}

type PantMeasurement struct {
	MeasurementBase
	PantDimensions
}

// TableName specifies the table name for the PantMeasurement model
func (PantMeasurement) TableName() string {
	return "pant_measurements"
}

type FinalPantMeasurement struct {
	MeasurementBase
	PantDimensions
}

// TableName specifies the table name for the FinalPantMeasurement model
func (FinalPantMeasurement) TableName() string {
	return "final_pant_measurements"
}

// NewMeasurement returns an empty record for the given garment family.
func NewMeasurement(garment GarmentType, final bool) (MeasurementRecord, bool) {
	switch garment {
	case GarmentJacket:
		if final {
			return &FinalJacketMeasurement{}, true
		}
		return &JacketMeasurement{}, true
	case GarmentShirt:
		if final {
			return &FinalShirtMeasurement{}, true
		}
		return &ShirtMeasurement{}, true
	case GarmentPant:
		if final {
			return &FinalPantMeasurement{}, true
		}
		return &PantMeasurement{}, true
	}
	return nil, false
}

// NewMeasurementSlice returns a pointer to an empty slice of the garment's
// records, ready to be passed to gorm's Find.
func NewMeasurementSlice(garment GarmentType, final bool) (any, bool) {
	switch garment {
	case GarmentJacket:
		if final {
			return &[]FinalJacketMeasurement{}, true
		}
		return &[]JacketMeasurement{}, true
	case GarmentShirt:
		if final {
			return &[]FinalShirtMeasurement{}, true
		}
		return &[]ShirtMeasurement{}, true
	case GarmentPant:
		if final {
			return &[]FinalPantMeasurement{}, true
		}
		return &[]PantMeasurement{}, true
	}
	return nil, false
}

// MeasurementModels lists one value per measurement table, finals before their
// initial counterparts and pants first. Cascading deletes walk this order.
func MeasurementModels() []MeasurementRecord {
	return []MeasurementRecord{
		&FinalPantMeasurement{},
		&PantMeasurement{},
		&FinalShirtMeasurement{},
		&ShirtMeasurement{},
		&FinalJacketMeasurement{},
		&JacketMeasurement{},
	}
}
