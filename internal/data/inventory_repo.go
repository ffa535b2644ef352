package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stockworks/stockworks-api/internal/data/pgxutil"
	"github.com/stockworks/stockworks-api/internal/domain/model"
	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

const inventoryItemColumns = `id, material_id, location, quantity_grams, reorder_level,
	spool_serial, unit_cost_override, created_at, updated_at`

const stockMovementColumns = `id, inventory_item_id, movement_type, change_grams,
	reference, note, created_at`

// InventoryRepo provides database operations for inventory items and their
// stock movements.
type InventoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInventoryRepo creates a new InventoryRepo with real time provider.
func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInventoryRepoWithTimeProvider creates a new InventoryRepo with a custom time provider (useful for tests).
func NewInventoryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InventoryRepo {
	return &InventoryRepo{DB: db, timeProvider: tp}
}

// Create inserts a new inventory item.
func (r *InventoryRepo) Create(ctx context.Context, req *model.CreateInventoryItemRequest) (*model.InventoryItem, error) {
	if req == nil {
		return nil, errorsx.Validation("create inventory item request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.InventoryItem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO inventory_items (
				id, material_id, location, quantity_grams, reorder_level,
				spool_serial, unit_cost_override, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $8
			) RETURNING `+inventoryItemColumns,
			uuid.NewString(),
			strings.TrimSpace(req.MaterialID),
			strings.TrimSpace(req.Location),
			req.QuantityGrams,
			req.ReorderLevel,
			req.SpoolSerial,
			req.UnitCostOverride,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.InventoryItem])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an inventory item by ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	var out model.InventoryItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+inventoryItemColumns+` FROM inventory_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.InventoryItem])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all inventory items, newest first.
func (r *InventoryRepo) List(ctx context.Context) ([]*model.InventoryItem, error) {
	var rowsOut []model.InventoryItem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+inventoryItemColumns+` FROM inventory_items ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InventoryItem])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}

	res := make([]*model.InventoryItem, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an inventory item. Nil request fields are left unchanged.
func (r *InventoryRepo) Update(ctx context.Context, id string, req *model.UpdateInventoryItemRequest) (*model.InventoryItem, error) {
	if req == nil {
		return nil, errorsx.Validation("update inventory item request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.InventoryItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE inventory_items SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + inventoryItemColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.InventoryItem])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

func (r *InventoryRepo) buildUpdateClause(req *model.UpdateInventoryItemRequest) (string, []any) {
	setParts := make([]string, 0, 7)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if req.MaterialID != nil {
		setParts = append(setParts, fmt.Sprintf("material_id = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.MaterialID))
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Location))
	}
	if req.QuantityGrams != nil {
		setParts = append(setParts, fmt.Sprintf("quantity_grams = $%d", nextIdx()))
		args = append(args, *req.QuantityGrams)
	}
	if req.ReorderLevel != nil {
		setParts = append(setParts, fmt.Sprintf("reorder_level = $%d", nextIdx()))
		args = append(args, *req.ReorderLevel)
	}
	if req.SpoolSerial != nil {
		setParts = append(setParts, fmt.Sprintf("spool_serial = $%d", nextIdx()))
		args = append(args, *req.SpoolSerial)
	}
	if req.UnitCostOverride != nil {
		setParts = append(setParts, fmt.Sprintf("unit_cost_override = $%d", nextIdx()))
		args = append(args, *req.UnitCostOverride)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes an inventory item by ID.
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return errorsx.MapDBError(err)
	}
	if rows == 0 {
		return errorsx.NotFound("Inventory item not found")
	}
	return nil
}

// RecordMovement inserts a stock movement and applies its delta to the owning
// item's quantity inside one transaction. The item row is locked for the
// duration so concurrent movements serialize, and a movement that would drive
// the stock level negative is rejected without side effects.
func (r *InventoryRepo) RecordMovement(ctx context.Context, req *model.CreateStockMovementRequest) (*model.StockMovement, error) {
	if req == nil {
		return nil, errorsx.Validation("create stock movement request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.StockMovement
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var quantity float64
		if err := tx.QueryRow(ctx,
			`SELECT quantity_grams FROM inventory_items WHERE id = $1 FOR UPDATE`,
			strings.TrimSpace(req.InventoryItemID),
		).Scan(&quantity); err != nil {
			return err
		}

		newQuantity := quantity + movementDelta(req.MovementType, req.ChangeGrams)
		if newQuantity < 0 {
			return errorsx.ValidationField("change_grams",
				fmt.Sprintf("movement would drive stock negative (on hand: %.2f)", quantity))
		}

		if _, err := tx.Exec(ctx,
			`UPDATE inventory_items SET quantity_grams = $1, updated_at = $2 WHERE id = $3`,
			newQuantity, now, strings.TrimSpace(req.InventoryItemID),
		); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO stock_movements (
				id, inventory_item_id, movement_type, change_grams, reference, note, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+stockMovementColumns,
			uuid.NewString(),
			strings.TrimSpace(req.InventoryItemID),
			req.MovementType,
			req.ChangeGrams,
			req.Reference,
			req.Note,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.StockMovement])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// ListMovements retrieves the movement history for one inventory item, newest first.
func (r *InventoryRepo) ListMovements(ctx context.Context, inventoryItemID string) ([]*model.StockMovement, error) {
	var rowsOut []model.StockMovement
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+stockMovementColumns+
				` FROM stock_movements WHERE inventory_item_id = $1 ORDER BY created_at DESC`,
			inventoryItemID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.StockMovement])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}

	res := make([]*model.StockMovement, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// movementDelta converts a typed movement into a signed quantity delta.
// Incoming adds, outgoing subtracts, adjustment applies the signed change as-is.
func movementDelta(mt model.MovementType, change float64) float64 {
	switch mt {
	case model.MovementTypeIncoming:
		return abs(change)
	case model.MovementTypeOutgoing:
		return -abs(change)
	default:
		return change
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
