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

const hardwareItemColumns = `id, name, category, supplier, manufacturer_part_number,
	unit_of_measure, unit_cost, bin_location, reorder_level, quantity_on_hand, notes,
	created_at, updated_at`

const hardwareMovementColumns = `id, hardware_item_id, movement_type, change_units,
	reference, note, created_at`

// HardwareRepo provides database operations for hardware items and their movements.
type HardwareRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewHardwareRepo creates a new HardwareRepo with real time provider.
func NewHardwareRepo(db *sql.DB) *HardwareRepo {
	return &HardwareRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewHardwareRepoWithTimeProvider creates a new HardwareRepo with a custom time provider (useful for tests).
func NewHardwareRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *HardwareRepo {
	return &HardwareRepo{DB: db, timeProvider: tp}
}

// Create inserts a new hardware item.
func (r *HardwareRepo) Create(ctx context.Context, req *model.CreateHardwareItemRequest) (*model.HardwareItem, error) {
	if req == nil {
		return nil, errorsx.Validation("create hardware item request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.HardwareItem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO hardware_items (
				id, name, category, supplier, manufacturer_part_number, unit_of_measure,
				unit_cost, bin_location, reorder_level, quantity_on_hand, notes,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12
			) RETURNING `+hardwareItemColumns,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			req.Category,
			req.Supplier,
			req.ManufacturerPartNumber,
			req.UnitOfMeasure,
			req.UnitCost,
			req.BinLocation,
			req.ReorderLevel,
			req.QuantityOnHand,
			req.Notes,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HardwareItem])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a hardware item by ID.
func (r *HardwareRepo) GetByID(ctx context.Context, id string) (*model.HardwareItem, error) {
	var out model.HardwareItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+hardwareItemColumns+` FROM hardware_items WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HardwareItem])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all hardware items ordered by name.
func (r *HardwareRepo) List(ctx context.Context) ([]*model.HardwareItem, error) {
	var rowsOut []model.HardwareItem
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+hardwareItemColumns+` FROM hardware_items ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.HardwareItem])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}

	res := make([]*model.HardwareItem, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a hardware item. Nil request fields are left unchanged.
func (r *HardwareRepo) Update(ctx context.Context, id string, req *model.UpdateHardwareItemRequest) (*model.HardwareItem, error) {
	if req == nil {
		return nil, errorsx.Validation("update hardware item request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.HardwareItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE hardware_items SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + hardwareItemColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HardwareItem])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

func (r *HardwareRepo) buildUpdateClause(req *model.UpdateHardwareItemRequest) (string, []any) {
	setParts := make([]string, 0, 11)
	args := make([]any, 0, 12)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Category != nil {
		setParts = append(setParts, fmt.Sprintf("category = $%d", nextIdx()))
		args = append(args, *req.Category)
	}
	if req.Supplier != nil {
		setParts = append(setParts, fmt.Sprintf("supplier = $%d", nextIdx()))
		args = append(args, *req.Supplier)
	}
	if req.ManufacturerPartNumber != nil {
		setParts = append(setParts, fmt.Sprintf("manufacturer_part_number = $%d", nextIdx()))
		args = append(args, *req.ManufacturerPartNumber)
	}
	if req.UnitOfMeasure != nil {
		setParts = append(setParts, fmt.Sprintf("unit_of_measure = $%d", nextIdx()))
		args = append(args, *req.UnitOfMeasure)
	}
	if req.UnitCost != nil {
		setParts = append(setParts, fmt.Sprintf("unit_cost = $%d", nextIdx()))
		args = append(args, *req.UnitCost)
	}
	if req.BinLocation != nil {
		setParts = append(setParts, fmt.Sprintf("bin_location = $%d", nextIdx()))
		args = append(args, *req.BinLocation)
	}
	if req.ReorderLevel != nil {
		setParts = append(setParts, fmt.Sprintf("reorder_level = $%d", nextIdx()))
		args = append(args, *req.ReorderLevel)
	}
	if req.QuantityOnHand != nil {
		setParts = append(setParts, fmt.Sprintf("quantity_on_hand = $%d", nextIdx()))
		args = append(args, *req.QuantityOnHand)
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
		args = append(args, *req.Notes)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

// Delete deletes a hardware item by ID.
func (r *HardwareRepo) Delete(ctx context.Context, id string) error {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM hardware_items WHERE id = $1`, id)
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
		return errorsx.NotFound("Hardware item not found")
	}
	return nil
}

// RecordMovement inserts a hardware movement and applies its delta to the
// owning item's quantity inside one transaction. See InventoryRepo.RecordMovement
// for the locking and negative-stock semantics.
func (r *HardwareRepo) RecordMovement(ctx context.Context, req *model.CreateHardwareMovementRequest) (*model.HardwareMovement, error) {
	if req == nil {
		return nil, errorsx.Validation("create hardware movement request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.HardwareMovement
	err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var quantity float64
		if err := tx.QueryRow(ctx,
			`SELECT quantity_on_hand FROM hardware_items WHERE id = $1 FOR UPDATE`,
			strings.TrimSpace(req.HardwareItemID),
		).Scan(&quantity); err != nil {
			return err
		}

		newQuantity := quantity + movementDelta(req.MovementType, req.ChangeUnits)
		if newQuantity < 0 {
			return errorsx.ValidationField("change_units",
				fmt.Sprintf("movement would drive stock negative (on hand: %.2f)", quantity))
		}

		if _, err := tx.Exec(ctx,
			`UPDATE hardware_items SET quantity_on_hand = $1, updated_at = $2 WHERE id = $3`,
			newQuantity, now, strings.TrimSpace(req.HardwareItemID),
		); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO hardware_movements (
				id, hardware_item_id, movement_type, change_units, reference, note, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+hardwareMovementColumns,
			uuid.NewString(),
			strings.TrimSpace(req.HardwareItemID),
			req.MovementType,
			req.ChangeUnits,
			req.Reference,
			req.Note,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.HardwareMovement])
		return err
	})
	if err != nil {
		return nil, errorsx.MapDBError(err)
	}
	return &out, nil
}

// ListMovements retrieves the movement history for one hardware item, newest first.
func (r *HardwareRepo) ListMovements(ctx context.Context, hardwareItemID string) ([]*model.HardwareMovement, error) {
	var rowsOut []model.HardwareMovement
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+hardwareMovementColumns+
				` FROM hardware_movements WHERE hardware_item_id = $1 ORDER BY created_at DESC`,
			hardwareItemID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.HardwareMovement])
		return err
	}); err != nil {
		return nil, errorsx.MapDBError(err)
	}

	res := make([]*model.HardwareMovement, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
