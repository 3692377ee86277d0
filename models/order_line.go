package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// OrderLine is one exploded purchase-order line from an uploaded spreadsheet.
// Field keys match the legacy excelData collection.
type OrderLine struct {
	ID                   string    `json:"id" bson:"_id,omitempty" db:"id"`
	UniqueCode           string    `json:"UniqueCode" bson:"UniqueCode" db:"unique_code"`
	ReferenceB           string    `json:"ReferenceB" bson:"ReferenceB" db:"reference_b"`
	ProjectCode          string    `json:"ProjectCode" bson:"ProjectCode" db:"project_code"`
	ItemCode             string    `json:"ItemCode" bson:"ItemCode" db:"item_code"`
	ItemShortDescription string    `json:"ItemShortDescription" bson:"ItemShortDescription" db:"item_short_description"`
	Category             string    `json:"Category" bson:"Category" db:"category"`
	SupplierName         string    `json:"SupplierName" bson:"SupplierName" db:"supplier_name"`
	PONumber             PONumber  `json:"PONo" bson:"PONo" db:"po_number"`
	OrderDate            string    `json:"Date" bson:"Date" db:"order_date"`
	OrderedQuantity      float64   `json:"OrderedLineQuantity" bson:"OrderedLineQuantity" db:"ordered_quantity"`
	OrderUOM             string    `json:"UOM" bson:"UOM" db:"order_uom"`
	OrderLineValue       float64   `json:"OrderLineValue" bson:"OrderLineValue" db:"order_line_value"`
	Currency             string    `json:"Currency" bson:"Currency" db:"currency"`
	PlannedReceiptDate   string    `json:"PlannedReceiptDate" bson:"PlannedReceiptDate" db:"planned_receipt_date"`
	DeliveryDate         string    `json:"Delivery" bson:"Delivery" db:"delivery_date"`
	InventoryQuantity    float64   `json:"InventoryQuantity" bson:"InventoryQuantity" db:"inventory_quantity"`
	InventoryUOM         string    `json:"InventoryUOM" bson:"InventoryUOM" db:"inventory_uom"`
	InventoryValue       Quantity  `json:"InventoryValue" bson:"InventoryValue" db:"inventory_value"`
	MaterialType         string    `json:"Type" bson:"Type" db:"material_type"`
	CustomerName         string    `json:"CustomerName" bson:"CustomerName" db:"customer_name"`
	City                 string    `json:"City" bson:"City" db:"city"`
	Country              string    `json:"Country" bson:"Country" db:"country"`
	CreatedAt            time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`

	// Extra keeps fields written by older importers, e.g. "Reference B" or REFB.
	Extra bson.M `json:"-" bson:",inline" db:"-"`

	referenceMissing bool
}

// legacyReferenceKeys are the historical spellings of ReferenceB, in lookup order.
var legacyReferenceKeys = []string{"Reference B", "REFB", "REF_B", "Reference"}

// UnmarshalBSON decodes a stored document and remembers whether it carried a
// non-null ReferenceB key at all.
func (o *OrderLine) UnmarshalBSON(data []byte) error {
	type plain OrderLine
	var p plain
	if err := bson.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = OrderLine(p)

	v, err := bson.Raw(data).LookupErr("ReferenceB")
	o.referenceMissing = err != nil || v.Type == bson.TypeNull || v.Type == bson.TypeUndefined
	return nil
}

// ResolveReference returns the first non-null of ReferenceB and its legacy
// spellings. An empty string counts as a value. It returns nil when none is set.
func (o *OrderLine) ResolveReference() *string {
	if !o.referenceMissing {
		ref := o.ReferenceB
		return &ref
	}
	for _, key := range legacyReferenceKeys {
		v, ok := o.Extra[key]
		if !ok || v == nil {
			continue
		}
		ref := legacyString(v)
		return &ref
	}
	return nil
}

// MarshalJSON writes the known fields followed by any legacy keys kept in Extra.
func (o OrderLine) MarshalJSON() ([]byte, error) {
	type plain OrderLine
	b, err := json.Marshal(plain(o))
	if err != nil || len(o.Extra) == 0 {
		return b, err
	}

	extra := make(map[string]any, len(o.Extra))
	for k, v := range o.Extra {
		if _, known := orderLineJSONKeys[k]; known {
			continue
		}
		extra[k] = v
	}
	e, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return spliceObjects(b, e), nil
}

var orderLineJSONKeys = jsonKeys(reflect.TypeOf(OrderLine{}))

func jsonKeys(t reflect.Type) map[string]struct{} {
	keys := map[string]struct{}{"_id": {}}
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys[name] = struct{}{}
		}
	}
	return keys
}

// spliceObjects joins the members of two encoded JSON objects.
func spliceObjects(a, b []byte) []byte {
	a = bytes.TrimSpace(a)
	b = bytes.TrimSpace(b)
	if len(b) <= 2 {
		return a
	}
	if len(a) <= 2 {
		return b
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a[:len(a)-1]...)
	out = append(out, ',')
	return append(out, b[1:]...)
}
