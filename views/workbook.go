package views

import (
	"fmt"

	"aerozone/models"

	"github.com/xuri/excelize/v2"
)

const rateSheet = "Rates"

var rateHeaders = []interface{}{
	"Currency", "ReferenceB", "ItemCode", "ItemShortDescription", "ProjectCode",
	"SupplierName", "PONo", "OrderLineValue", "OrderedLineQuantity", "UOM",
	"PlannedReceiptDate", "Rate",
}

// RateWorkbook lays the rate export out as a single-sheet XLSX file.
func RateWorkbook(rows []models.RateRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rateSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(rateSheet, "A1", &rateHeaders); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range rows {
		var po interface{} = r.PONumber.String()
		if r.PONumber.IsNumeric() {
			po = r.PONumber.Number()
		}
		var rate interface{} = ""
		if r.Rate != nil {
			rate = r.Rate.Decimal().InexactFloat64()
		}
		cells := []interface{}{
			r.Currency, r.ReferenceB, r.ItemCode, r.ItemShortDescription, r.ProjectCode,
			r.SupplierName, po, r.OrderLineValue, r.OrderedQuantity, r.OrderUOM,
			r.PlannedReceiptDate, rate,
		}
		if err := f.SetSheetRow(rateSheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
