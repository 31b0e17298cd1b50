package repository

import (
	"fmt"
	"sort"
)

// FieldMap allow-lists the JSON field names an update may touch and maps each
// one to its column. Column names never come from the request.
type FieldMap map[string]string

// Columns translates a partial update into column assignments. Nil values are
// skipped; any field missing from the map rejects the whole update.
func (m FieldMap) Columns(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, name := range sortedKeys(fields) {
		column, ok := m[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if fields[name] == nil {
			continue
		}
		out[column] = fields[name]
	}
	if len(out) == 0 {
		return nil, ErrNoFields
	}
	return out, nil
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var CustomerFields = FieldMap{
	"first_name":        "first_name",
	"middle_name":       "middle_name",
	"last_name":         "last_name",
	"add1":              "add1",
	"add2":              "add2",
	"add3":              "add3",
	"add4":              "add4",
	"email":             "email",
	"mobile":            "mobile",
	"office_phone":      "office_phone",
	"residential_phone": "residential_phone",
	"last_ordered_date": "last_ordered_date",
}

// OrderFields deliberately leaves out order_no.
var OrderFields = FieldMap{
	"date": "date",
	"note": "note",
}

var ItemFields = FieldMap{
	"item_name":        "item_name",
	"fabric_id":        "fabric_id",
	"lining_fabric_id": "lining_fabric_id",
}

var FabricFields = FieldMap{
	"code":             "code",
	"description":      "description",
	"available_length": "available_length",
	"fabric_supplier":  "fabric_supplier",
	"fabric_brand":     "fabric_brand",
	"stock_location":   "stock_location",
	"barcode":          "barcode",
}

var SupplierFields = FieldMap{
	"supplier_name":         "supplier_name",
	"add1":                  "add1",
	"add2":                  "add2",
	"add3":                  "add3",
	"phone_number1":         "phone_number1",
	"phone_number2":         "phone_number2",
	"phone_number3":         "phone_number3",
	"email":                 "email",
	"primary_contact_name1": "primary_contact_name1",
	"primary_contact_name2": "primary_contact_name2",
	"primary_contact_name3": "primary_contact_name3",
	"notes":                 "notes",
}

var FabricOrderFields = FieldMap{
	"fabric_code":   "fabric_code",
	"description":   "description",
	"supplier_name": "supplier_name",
	"supplier_id":   "supplier_id",
	"meters":        "meters",
	"ordered_date":  "ordered_date",
	"ordered_for":   "ordered_for",
}

var RawMaterialsOrderFields = FieldMap{
	"product_name":      "product_name",
	"description":       "description",
	"raw_material_code": "raw_material_code",
	"color":             "color",
	"supplier_name":     "supplier_name",
	"supplier_id":       "supplier_id",
	"quantity":          "quantity",
	"ordered_date":      "ordered_date",
}
