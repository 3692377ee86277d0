package ingest

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"aerozone/apierr"
	"aerozone/logger"
	"aerozone/models"
	"aerozone/repository"
	"aerozone/utils"

	"github.com/shopspring/decimal"
)

var ErrNoFile = errors.New("no file uploaded")

var digitRun = regexp.MustCompile(`\d+`)

// Upload is one spreadsheet as received from the client.
type Upload struct {
	Filename string
	Data     []byte
}

// Result reports what an upload did. RowsProcessed counts data rows before
// explosion; Saved and Deleted count exploded candidates.
type Result struct {
	Saved         int `json:"saved"`
	Deleted       int `json:"deleted"`
	RowsProcessed int `json:"rowsProcessed"`
}

// Archiver keeps a copy of the raw upload. It is optional.
type Archiver interface {
	ArchiveUpload(ctx context.Context, filename string, data []byte) (string, error)
}

type Ingestor struct {
	Orders  repository.OrderLineRepository
	Archive Archiver
	Log     *logger.Logger
	Now     func() time.Time
}

func New(orders repository.OrderLineRepository, log *logger.Logger) *Ingestor {
	return &Ingestor{Orders: orders, Log: log, Now: time.Now}
}

// Ingest parses an upload, explodes its rows into order lines and appends them
// to the store in one write. Uploading the same file twice stores it twice.
func (in *Ingestor) Ingest(ctx context.Context, up Upload) (Result, error) {
	if len(up.Data) == 0 {
		return Result{}, apierr.Ingest(ErrNoFile)
	}

	if in.Archive != nil {
		key, err := in.Archive.ArchiveUpload(ctx, up.Filename, up.Data)
		if err != nil {
			in.log().Warn("upload archive failed", "filename", up.Filename, "error", err)
		} else {
			in.log().Debug("upload archived", "key", key)
		}
	}

	rows, err := ReadRows(up.Filename, up.Data)
	if err != nil {
		return Result{}, apierr.Ingest(fmt.Errorf("could not parse upload: %w", err))
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	batch := Transform(rows, now().UTC())

	if len(batch.Lines) > 0 {
		if err := in.Orders.InsertMany(ctx, batch.Lines); err != nil {
			return Result{}, apierr.Store(err)
		}
	}

	res := Result{Saved: batch.Saved, Deleted: batch.Deleted, RowsProcessed: len(rows)}
	in.log().Info("upload ingested",
		"filename", up.Filename,
		"saved", res.Saved,
		"deleted", res.Deleted,
		"rowsProcessed", res.RowsProcessed,
	)
	return res, nil
}

func (in *Ingestor) log() *logger.Logger {
	if in.Log == nil {
		return logger.Nop()
	}
	return in.Log
}

// Batch is the outcome of transforming a set of data rows.
type Batch struct {
	Lines   []models.OrderLine
	Saved   int
	Deleted int
}

// Transform explodes data rows (header already removed) into order lines and
// drops the ones without a currency.
func Transform(rows []Row, now time.Time) Batch {
	var b Batch
	for _, row := range rows {
		for _, line := range Explode(row, now) {
			if strings.TrimSpace(line.Currency) == "" {
				b.Deleted++
				continue
			}
			b.Lines = append(b.Lines, line)
			b.Saved++
		}
	}
	return b
}

// Explode turns one row into one order line per digit run in its reference
// field. A reference without digits yields nothing.
func Explode(row Row, now time.Time) []models.OrderLine {
	row = row.Pad(MinColumns)
	c := Columns

	ref := strings.TrimSpace(utils.StringOr(row.At(c.ReferenceB), ""))
	refNumbers := digitRun.FindAllString(ref, -1)
	if len(refNumbers) == 0 {
		return nil
	}

	project := strings.TrimSpace(utils.StringOr(row.At(c.ProjectCode), ""))
	item := strings.TrimSpace(utils.StringOr(row.At(c.ItemCode), ""))
	typeCode := strings.TrimSpace(utils.StringOr(row.At(c.TypeCode), "0"))
	material := strings.TrimSpace(utils.StringOr(row.At(c.MaterialCode), "0"))

	orderedQty := utils.ToNumber(row.At(c.OrderedQuantity))
	value := utils.ToNumber(row.At(c.OrderLineValue))
	onHand := utils.ToNumber(row.At(c.InventoryQuantity))
	uom := utils.StringOr(row.At(c.UOM), "")

	base := models.OrderLine{
		ReferenceB:           ref,
		ProjectCode:          project,
		ItemCode:             item,
		ItemShortDescription: utils.StringOr(row.At(c.ItemShortDescription), ""),
		Category:             utils.StringOr(row.At(c.Category), ""),
		SupplierName:         utils.StringOr(row.At(c.SupplierName), ""),
		PONumber:             poNumber(row.At(c.PONumber)),
		OrderDate:            utils.FormatCellDate(row.At(c.OrderDate)),
		OrderedQuantity:      orderedQty,
		OrderUOM:             uom,
		OrderLineValue:       value,
		Currency:             utils.StringOr(row.At(c.Currency), ""),
		PlannedReceiptDate:   utils.FormatCellDate(row.At(c.PlannedReceiptDate)),
		DeliveryDate:         utils.ShiftCellDate(row.At(c.PlannedReceiptDate), DeliveryLeadDays),
		InventoryQuantity:    onHand,
		InventoryUOM:         uom,
		InventoryValue:       models.Quantity(InventoryValue(value, orderedQty, onHand)),
		MaterialType:         typeCode + material,
		CustomerName:         utils.StringOr(row.At(c.CustomerName), ""),
		City:                 utils.StringOr(row.At(c.City), ""),
		Country:              utils.StringOr(row.At(c.Country), ""),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	out := make([]models.OrderLine, 0, len(refNumbers))
	for _, n := range refNumbers {
		line := base
		line.UniqueCode = n + project + item
		out = append(out, line)
	}
	return out
}

// InventoryValue prices on-hand stock at the order's unit price, rounded to
// cents. It is 0 unless the ordered quantity is positive.
func InventoryValue(orderValue, orderedQty, onHand float64) float64 {
	if orderedQty <= 0 {
		return 0
	}
	unit := decimal.NewFromFloat(orderValue).Div(decimal.NewFromFloat(orderedQty))
	return unit.Mul(decimal.NewFromFloat(onHand)).Round(2).InexactFloat64()
}

func poNumber(v any) models.PONumber {
	if utils.IsBlank(v) {
		return models.POText("")
	}
	if f, ok := v.(float64); ok {
		return models.PONum(f)
	}
	return models.POText(utils.ToString(v))
}
