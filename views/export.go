package views

import (
	"aerozone/models"

	"github.com/shopspring/decimal"
)

// UnitRate is value/quantity rounded to three decimals. It is nil only when
// the quantity is exactly zero.
func UnitRate(value, qty float64) *models.FixedRate {
	if qty == 0 {
		return nil
	}
	return models.NewFixedRate(decimal.NewFromFloat(value).Div(decimal.NewFromFloat(qty)))
}

func RateExport(orders []models.OrderLine) []models.RateRow {
	out := make([]models.RateRow, 0, len(orders))
	for _, o := range orders {
		out = append(out, models.RateRow{
			OrderLine: o,
			Rate:      UnitRate(o.OrderLineValue, o.OrderedQuantity),
		})
	}
	return out
}

func GeoExport(orders []models.OrderLine) []models.GeoRow {
	out := make([]models.GeoRow, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		out = append(out, models.GeoRow{
			Currency:             o.Currency,
			Date:                 o.OrderDate,
			ItemCode:             o.ItemCode,
			ItemShortDescription: o.ItemShortDescription,
			OrderLineValue:       o.OrderLineValue,
			OrderedLineQuantity:  o.OrderedQuantity,
			PONumber:             o.PONumber,
			PlannedReceiptDate:   o.PlannedReceiptDate,
			ProjectCode:          o.ProjectCode,
			SupplierName:         o.SupplierName,
			UOM:                  o.OrderUOM,
			Category:             o.Category,
			CustomerName:         o.CustomerName,
			Type:                 o.MaterialType,
			City:                 o.City,
			Country:              o.Country,
			ReferenceB:           o.ResolveReference(),
		})
	}
	return out
}
