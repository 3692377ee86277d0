package views

import "aerozone/models"

// Merge left-joins every order line with the first indent row (in store order)
// whose item code matches. Unmatched orders carry "NA" in the indent fields.
func Merge(orders []models.OrderLine, indents []models.IndentLine) []models.MergedOrder {
	firstByItem := make(map[string]*models.IndentLine, len(indents))
	for i := range indents {
		if _, seen := firstByItem[indents[i].ItemCode]; !seen {
			firstByItem[indents[i].ItemCode] = &indents[i]
		}
	}

	out := make([]models.MergedOrder, 0, len(orders))
	for _, o := range orders {
		m := models.MergedOrder{OrderLine: o}
		if in, ok := firstByItem[o.ItemCode]; ok {
			m.IndentQuantity = models.Found(in.RequiredQuantity.Float())
			m.IndentUOM = models.Found(in.UOM)
			m.IndentProject = models.Found(in.ProjectNo)
			m.IndentPlannedOrder = models.Found(in.PlannedOrder)
		}
		out = append(out, m)
	}
	return out
}
