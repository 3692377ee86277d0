package ingest

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRowPadAndAt(t *testing.T) {
	r := Row{"a", 1.0}
	if r.At(5) != nil || r.At(-1) != nil {
		t.Fatal("out-of-range access must yield nil")
	}
	p := r.Pad(MinColumns)
	if len(p) != MinColumns || p[0] != "a" || p[51] != "" {
		t.Fatalf("Pad = %v", p)
	}
	if len(r) != 2 {
		t.Fatal("Pad must not modify the receiver")
	}
}

func TestTypedCell(t *testing.T) {
	if v := typedCell(excelize.CellTypeUnset, "45292"); v != 45292.0 {
		t.Errorf("numeric cell = %#v", v)
	}
	if v := typedCell(excelize.CellTypeSharedString, "45292"); v != "45292" {
		t.Errorf("text cell holding digits = %#v", v)
	}
	if v := typedCell(excelize.CellTypeBool, "1"); v != true {
		t.Errorf("bool cell = %#v", v)
	}
	if v := typedCell(excelize.CellTypeDate, "2024-03-05T00:00:00Z"); v != "2024-03-05T00:00:00Z" {
		t.Errorf("date cell = %#v", v)
	}
}

func TestCSVCell(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", nil},
		{"  ", nil},
		{"12", 12.0},
		{"0.5", 0.5},
		{"0", 0.0},
		{"007", "007"},
		{"INR", "INR"},
		{"inf", "inf"},
	}
	for _, tt := range tests {
		if got := csvCell(tt.in); got != tt.want {
			t.Errorf("csvCell(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestReadRowsFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_ = f.SetCellValue("Sheet1", "A1", "first")
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatal(err)
	}
	_ = f.SetCellValue("Other", "A1", "second")
	_ = f.SetCellValue("Other", "A2", "more")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := ReadRows("book.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 1 || rows[0].At(0) != "first" {
		t.Fatalf("rows = %v", rows)
	}
}

func legacyFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/orders.xls")
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestReadRowsLegacyWorkbook(t *testing.T) {
	rows, err := ReadRows("orders.XLS", legacyFixture(t))
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	c := Columns
	tests := []struct {
		row, col int
		want     any
	}{
		{0, c.ReferenceB, "Reference B"},
		{1, c.SupplierName, "Acme Alloys"},
		{1, c.PONumber, 4500123.0},
		{1, c.ItemCode, "0099"},
		{1, c.OrderDate, 45292.0},
		{1, c.PlannedReceiptDate, 45323.0},
		{1, c.OrderedQuantity, 4.0},
		{1, c.OrderLineValue, 100.0},
		{1, c.InventoryQuantity, 2.0},
		{1, c.ReferenceB, "12+45"},
		{1, c.Currency + 1, nil},
		{2, c.ReferenceB, 7.0},
		{2, c.Currency, nil},
	}
	for _, tt := range tests {
		if got := rows[tt.row].At(tt.col); got != tt.want {
			t.Errorf("rows[%d][%d] = %#v, want %#v", tt.row, tt.col, got, tt.want)
		}
	}
	if len(rows[3]) != 0 {
		t.Errorf("row without records = %v, want empty", rows[3])
	}
}

func TestReadRowsLegacyWorkbookRejectsBrokenFiles(t *testing.T) {
	fixture := legacyFixture(t)

	danglingDifat := append([]byte(nil), fixture...)
	binary.LittleEndian.PutUint32(danglingDifat[68:72], 3)

	f := excelize.NewFile()
	defer f.Close()
	xlsx, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"not a compound file", []byte("definitely not a workbook")},
		{"empty", nil},
		{"xlsx renamed", xlsx.Bytes()},
		{"truncated", fixture[:1024]},
		{"unterminated master table", danglingDifat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRows("book.xls", tt.data); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
