package models

import "time"

// IndentLine is a required-quantity row from the Indent_Quantity collection.
// It is populated outside this service and only read here.
type IndentLine struct {
	ID               string    `json:"id" bson:"_id,omitempty" db:"id"`
	UniqueCode       string    `json:"UNIQUE_CODE" bson:"UNIQUE_CODE" db:"unique_code"`
	ItemCode         string    `json:"ITEM_CODE" bson:"ITEM_CODE" db:"item_code"`
	ItemDescription  string    `json:"ITEM_DESCRIPTION" bson:"ITEM_DESCRIPTION" db:"item_description"`
	Category         string    `json:"CATEGORY" bson:"CATEGORY" db:"category"`
	ProjectNo        string    `json:"PROJECT_NO" bson:"PROJECT_NO" db:"project_no"`
	RequiredQuantity Quantity  `json:"REQUIRED_QTY" bson:"REQUIRED_QTY" db:"required_qty"`
	UOM              string    `json:"UOM" bson:"UOM" db:"uom"`
	PlannedOrder     string    `json:"PLANNED_ORDER" bson:"PLANNED_ORDER" db:"planned_order"`
	Type             string    `json:"TYPE" bson:"TYPE" db:"type"`
	ReferenceB       string    `json:"ReferenceB" bson:"ReferenceB" db:"reference_b"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt,omitempty" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt,omitempty" db:"updated_at"`
}
