package utils

import (
	"strings"
	"testing"
	"time"

	"aerozone/models"
)

func TestRenderRollupHTML(t *testing.T) {
	rows := []models.RollupRow{
		{UniqueCode: "A1", ItemCode: "IT-1", Description: "Bolt <M8>", OrderedQty: 5, RequiredQty: 8, Difference: 3, UOM: "EA"},
		{UniqueCode: "B2", ItemCode: "IT-2", OrderedQty: 10.5, RequiredQty: 4, Difference: -6.5, UOM: "KG"},
	}
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	out, err := RenderRollupHTML(rows, at)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"01-Mar-2024 09:30 UTC",
		"2 codes",
		"1 short",
		"Bolt &lt;M8&gt;",
		`<tr class="short">`,
		"10.5",
		"-6.5",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered html missing %q", want)
		}
	}
	if strings.Count(html, `class="short"`) != 1 {
		t.Errorf("expected exactly one short row")
	}
}

func TestRenderRollupHTMLEmpty(t *testing.T) {
	out, err := RenderRollupHTML(nil, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "No indent rows.") {
		t.Errorf("empty report should say so")
	}
}
