package views

import "aerozone/models"

type orderGroup struct {
	projectCode string
	itemCode    string
	orderedQty  float64
}

type indentGroup struct {
	first       models.IndentLine
	requiredQty float64
}

// Rollup compares required against ordered quantity per unique code. Indent
// groups drive the output in first-seen order; order groups with no indent
// counterpart are left out. Descriptive fields come from the first member of
// each group.
func Rollup(orders []models.OrderLine, indents []models.IndentLine) []models.RollupRow {
	ordered := make(map[string]*orderGroup)
	for _, o := range orders {
		g, ok := ordered[o.UniqueCode]
		if !ok {
			g = &orderGroup{projectCode: o.ProjectCode, itemCode: o.ItemCode}
			ordered[o.UniqueCode] = g
		}
		g.orderedQty += o.OrderedQuantity
	}

	var keys []string
	required := make(map[string]*indentGroup)
	for _, in := range indents {
		g, ok := required[in.UniqueCode]
		if !ok {
			g = &indentGroup{first: in}
			required[in.UniqueCode] = g
			keys = append(keys, in.UniqueCode)
		}
		g.requiredQty += in.RequiredQuantity.Float()
	}

	out := make([]models.RollupRow, 0, len(keys))
	for _, key := range keys {
		g := required[key]
		var orderedQty float64
		if og, ok := ordered[key]; ok {
			orderedQty = og.orderedQty
		}
		out = append(out, models.RollupRow{
			UniqueCode:   key,
			ReferenceB:   g.first.ReferenceB,
			ProjectNo:    g.first.ProjectNo,
			ItemCode:     g.first.ItemCode,
			Description:  g.first.ItemDescription,
			Category:     g.first.Category,
			Type:         g.first.Type,
			OrderedQty:   orderedQty,
			RequiredQty:  g.requiredQty,
			Difference:   g.requiredQty - orderedQty,
			UOM:          g.first.UOM,
			PlannedOrder: g.first.PlannedOrder,
		})
	}
	return out
}
