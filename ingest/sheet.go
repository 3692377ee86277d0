package ingest

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/richardlehane/mscfb"
	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row. Cells are nil, string, float64 or bool.
type Row []any

// At returns the cell at col, or nil when the row is shorter.
func (r Row) At(col int) any {
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Pad returns r extended with empty cells to at least n columns.
func (r Row) Pad(n int) Row {
	if len(r) >= n {
		return r
	}
	out := make(Row, n)
	copy(out, r)
	for i := len(r); i < n; i++ {
		out[i] = ""
	}
	return out
}

// ReadRows parses the first sheet of an upload. Files named *.csv are read as
// CSV, *.xls as a BIFF8 workbook, and everything else must be XLSX.
func ReadRows(filename string, data []byte) ([]Row, error) {
	switch ext := filepath.Ext(filename); {
	case strings.EqualFold(ext, ".csv"):
		return readCSV(data)
	case strings.EqualFold(ext, ".xls"):
		return readLegacyWorkbook(data)
	}
	return readWorkbook(data)
}

func readWorkbook(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}

	rows := make([]Row, len(raw))
	for r, cols := range raw {
		row := make(Row, len(cols))
		for c, v := range cols {
			if v == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", axis, err)
			}
			row[c] = typedCell(typ, v)
		}
		rows[r] = row
	}
	return rows, nil
}

func typedCell(typ excelize.CellType, v string) any {
	switch typ {
	case excelize.CellTypeBool:
		return v == "1" || strings.EqualFold(v, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		return v
	default:
		return v
	}
}

// readLegacyWorkbook reads the first sheet of an Excel 97-2003 file. The
// compound file is walked with mscfb first because the BIFF parser exits the
// process on a broken sector chain.
func readLegacyWorkbook(data []byte) (rows []Row, err error) {
	if err := checkCompoundFile(data); err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("failed to read Excel file: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	// Date formats would render serials as "2006.01"; plain numbers keep
	// them intact for ParseDate.
	for _, xf := range wb.Xfs {
		switch x := xf.(type) {
		case *xls.Xf8:
			x.Format = 0
		case *xls.Xf5:
			x.Format = 0
		}
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	rows = make([]Row, int(sheet.MaxRow)+1)
	for i := range rows {
		rows[i] = legacyRow(sheet, i)
	}
	return rows, nil
}

const endOfChain = 0xFFFFFFFE

func checkCompoundFile(data []byte) error {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err := checkDifatChain(data); err != nil {
		return err
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if _, err := io.Copy(io.Discard, entry); err != nil {
			return fmt.Errorf("stream %q: %w", entry.Name, err)
		}
	}
	return nil
}

// checkDifatChain walks the master sector table chain for exactly the number
// of sectors the header declares; the BIFF parser follows it until
// end-of-chain and would spin on a cycle.
func checkDifatChain(data []byte) error {
	const sectorSize = 512
	sid := binary.LittleEndian.Uint32(data[68:72])
	count := binary.LittleEndian.Uint32(data[72:76])
	for i := uint32(0); i < count && sid != endOfChain; i++ {
		off := int64(sid)*sectorSize + sectorSize
		if off+sectorSize > int64(len(data)) {
			return errors.New("master sector table out of range")
		}
		sid = binary.LittleEndian.Uint32(data[off+sectorSize-4 : off+sectorSize])
	}
	if sid != endOfChain {
		return errors.New("master sector table chain is not terminated")
	}
	return nil
}

// legacyRow returns the cells of row i, or an empty row when the sheet has
// no record for it.
func legacyRow(sheet *xls.WorkSheet, i int) Row {
	row, ok := sheetRow(sheet, i)
	if !ok {
		return Row{}
	}
	width := row.LastCol()
	if width < MinColumns {
		width = MinColumns
	}
	out := make(Row, width)
	last := 0
	for c := range out {
		out[c] = csvCell(row.Col(c))
		if out[c] != nil {
			last = c + 1
		}
	}
	return out[:last]
}

func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = nil, false
		}
	}()
	return sheet.Row(i), true
}

func readCSV(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(rec))
		for c, v := range rec {
			row[c] = csvCell(v)
		}
		rows[i] = row
	}
	return rows, nil
}

// csvCell infers numbers the way a spreadsheet would, except that codes with
// leading zeros stay text.
func csvCell(v string) any {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return v
}
