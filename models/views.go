package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrNA serializes as the literal "NA" when no value was found.
type OrNA[T any] struct {
	Value T
	Valid bool
}

func Found[T any](v T) OrNA[T] { return OrNA[T]{Value: v, Valid: true} }

func (o OrNA[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte(`"NA"`), nil
	}
	return json.Marshal(o.Value)
}

// MergedOrder is an order line enriched with the first indent row sharing its item code.
type MergedOrder struct {
	OrderLine
	IndentQuantity     OrNA[float64] `json:"IndentQuantity"`
	IndentUOM          OrNA[string]  `json:"IndentUOM"`
	IndentProject      OrNA[string]  `json:"IndentProject"`
	IndentPlannedOrder OrNA[string]  `json:"IndentPlannedOrder"`
}

func (m MergedOrder) MarshalJSON() ([]byte, error) {
	base, err := m.OrderLine.MarshalJSON()
	if err != nil {
		return nil, err
	}
	indent, err := json.Marshal(struct {
		IndentQuantity     OrNA[float64] `json:"IndentQuantity"`
		IndentUOM          OrNA[string]  `json:"IndentUOM"`
		IndentProject      OrNA[string]  `json:"IndentProject"`
		IndentPlannedOrder OrNA[string]  `json:"IndentPlannedOrder"`
	}{m.IndentQuantity, m.IndentUOM, m.IndentProject, m.IndentPlannedOrder})
	if err != nil {
		return nil, err
	}
	return spliceObjects(base, indent), nil
}

// RollupRow compares required and ordered quantities for one unique code.
type RollupRow struct {
	UniqueCode   string  `json:"UNIQUE_CODE"`
	ReferenceB   string  `json:"ReferenceB"`
	ProjectNo    string  `json:"ProjectNo"`
	ItemCode     string  `json:"ItemCode"`
	Description  string  `json:"Description"`
	Category     string  `json:"Category"`
	Type         string  `json:"Type"`
	OrderedQty   float64 `json:"OrderedQty"`
	RequiredQty  float64 `json:"RequiredQty"`
	Difference   float64 `json:"Difference"`
	UOM          string  `json:"UOM"`
	PlannedOrder string  `json:"PlannedOrder"`
}

// GeoRow is the flat order export used by the geographic pages.
type GeoRow struct {
	Currency             string   `json:"Currency"`
	Date                 string   `json:"Date"`
	ItemCode             string   `json:"ItemCode"`
	ItemShortDescription string   `json:"ItemShortDescription"`
	OrderLineValue       float64  `json:"OrderLineValue"`
	OrderedLineQuantity  float64  `json:"OrderedLineQuantity"`
	PONumber             PONumber `json:"PONo"`
	PlannedReceiptDate   string   `json:"PlannedReceiptDate"`
	ProjectCode          string   `json:"ProjectCode"`
	SupplierName         string   `json:"SupplierName"`
	UOM                  string   `json:"UOM"`
	Category             string   `json:"Category"`
	CustomerName         string   `json:"CustomerName"`
	Type                 string   `json:"Type"`
	City                 string   `json:"City"`
	Country              string   `json:"Country"`
	ReferenceB           *string  `json:"ReferenceB"`
}

// RateRow is an order line with its per-unit rate. Rate is nil when the
// ordered quantity is zero.
type RateRow struct {
	OrderLine
	Rate *FixedRate `json:"Rate"`
}

func (r RateRow) MarshalJSON() ([]byte, error) {
	base, err := r.OrderLine.MarshalJSON()
	if err != nil {
		return nil, err
	}
	rate, err := json.Marshal(struct {
		Rate *FixedRate `json:"Rate"`
	}{r.Rate})
	if err != nil {
		return nil, err
	}
	return spliceObjects(base, rate), nil
}

// FixedRate serializes as a JSON number with exactly three decimals.
type FixedRate struct {
	d decimal.Decimal
}

func NewFixedRate(d decimal.Decimal) *FixedRate {
	return &FixedRate{d: d.Round(3)}
}

func (r FixedRate) Decimal() decimal.Decimal { return r.d }

func (r FixedRate) MarshalJSON() ([]byte, error) {
	return []byte(r.d.StringFixed(3)), nil
}
