package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"aerozone/models"

	"github.com/lib/pq"
)

var orderLineColumns = []string{
	"unique_code", "reference_b", "project_code", "item_code", "item_short_description",
	"category", "supplier_name", "po_number", "order_date", "ordered_quantity", "order_uom",
	"order_line_value", "currency", "planned_receipt_date", "delivery_date",
	"inventory_quantity", "inventory_uom", "inventory_value", "material_type",
	"customer_name", "city", "country", "created_at", "updated_at",
}

type PostgresOrderRepo struct {
	DB *sql.DB
}

func NewPostgresOrderRepo(db *sql.DB) *PostgresOrderRepo {
	return &PostgresOrderRepo{DB: db}
}

// InsertMany streams all lines through one COPY inside a transaction.
// IDs are not read back; COPY does not return them.
func (r *PostgresOrderRepo) InsertMany(ctx context.Context, lines []models.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("order_line", orderLineColumns...))
	if err != nil {
		return fmt.Errorf("prepare order copy: %w", err)
	}

	for _, l := range lines {
		po, err := l.PONumber.Value()
		if err != nil {
			stmt.Close()
			return err
		}
		_, err = stmt.ExecContext(ctx,
			l.UniqueCode, l.ReferenceB, l.ProjectCode, l.ItemCode, l.ItemShortDescription,
			l.Category, l.SupplierName, po, l.OrderDate, l.OrderedQuantity, l.OrderUOM,
			l.OrderLineValue, l.Currency, l.PlannedReceiptDate, l.DeliveryDate,
			l.InventoryQuantity, l.InventoryUOM, l.InventoryValue, l.MaterialType,
			l.CustomerName, l.City, l.Country, l.CreatedAt, l.UpdatedAt,
		)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("copy order line: %w", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush order copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PostgresOrderRepo) FindAll(ctx context.Context) ([]models.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, unique_code, reference_b, project_code, item_code, item_short_description,
			category, supplier_name, po_number, order_date, ordered_quantity, order_uom,
			order_line_value, currency, planned_receipt_date, delivery_date,
			inventory_quantity, inventory_uom, inventory_value, material_type,
			customer_name, city, country, created_at, updated_at
		FROM order_line
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	out := []models.OrderLine{}
	for rows.Next() {
		var (
			l  models.OrderLine
			id int64
		)
		if err := rows.Scan(&id, &l.UniqueCode, &l.ReferenceB, &l.ProjectCode, &l.ItemCode,
			&l.ItemShortDescription, &l.Category, &l.SupplierName, &l.PONumber, &l.OrderDate,
			&l.OrderedQuantity, &l.OrderUOM, &l.OrderLineValue, &l.Currency,
			&l.PlannedReceiptDate, &l.DeliveryDate, &l.InventoryQuantity, &l.InventoryUOM,
			&l.InventoryValue, &l.MaterialType, &l.CustomerName, &l.City, &l.Country,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		l.ID = strconv.FormatInt(id, 10)
		out = append(out, l)
	}
	return out, rows.Err()
}

type PostgresIndentRepo struct {
	DB *sql.DB
}

func NewPostgresIndentRepo(db *sql.DB) *PostgresIndentRepo {
	return &PostgresIndentRepo{DB: db}
}

func (r *PostgresIndentRepo) FindAll(ctx context.Context) ([]models.IndentLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, unique_code, item_code, item_description, category, project_no,
			required_qty, uom, planned_order, type, reference_b, created_at, updated_at
		FROM indent_line
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query indent lines: %w", err)
	}
	defer rows.Close()

	out := []models.IndentLine{}
	for rows.Next() {
		var (
			l  models.IndentLine
			id int64
		)
		if err := rows.Scan(&id, &l.UniqueCode, &l.ItemCode, &l.ItemDescription, &l.Category,
			&l.ProjectNo, &l.RequiredQuantity, &l.UOM, &l.PlannedOrder, &l.Type, &l.ReferenceB,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan indent line: %w", err)
		}
		l.ID = strconv.FormatInt(id, 10)
		out = append(out, l)
	}
	return out, rows.Err()
}
