package ingest

// MinColumns is the width every data row is padded to before extraction.
const MinColumns = 52

// DeliveryLeadDays is added to the planned receipt date to get the delivery date.
const DeliveryLeadDays = 31

// Columns holds the 0-based spreadsheet column of every field read from an upload.
var Columns = struct {
	SupplierName         int
	Category             int
	PONumber             int
	ProjectCode          int
	ItemCode             int
	ItemShortDescription int
	OrderDate            int
	PlannedReceiptDate   int
	UOM                  int
	OrderedQuantity      int
	Currency             int
	OrderLineValue       int
	InventoryQuantity    int
	ReferenceB           int
	TypeCode             int
	MaterialCode         int
	CustomerName         int
	City                 int
	Country              int
}{
	SupplierName:         3,
	Category:             4,
	PONumber:             5,
	ProjectCode:          8,
	ItemCode:             9,
	ItemShortDescription: 10,
	OrderDate:            14,
	PlannedReceiptDate:   15,
	UOM:                  16,
	OrderedQuantity:      19,
	Currency:             23,
	OrderLineValue:       25,
	InventoryQuantity:    43,
	ReferenceB:           45,
	TypeCode:             46,
	MaterialCode:         47,
	CustomerName:         49,
	City:                 50,
	Country:              51,
}
